package opportunity

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casaflow/casaflow/ent"
	entactivity "github.com/casaflow/casaflow/ent/activity"
	"github.com/casaflow/casaflow/ent/enttest"
	"github.com/casaflow/casaflow/ent/user"
	"github.com/casaflow/casaflow/pkg/access"
	"github.com/casaflow/casaflow/pkg/pipeline"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func setupService(t *testing.T) (*Service, *ent.Client, func()) {
	client, cleanup := setupTestDB(t)
	svc := NewService(client, pipeline.NewService(client, nil), nil)
	return svc, client, cleanup
}

func createTestUser(t *testing.T, client *ent.Client, email string, role user.Role) *ent.User {
	u, err := client.User.Create().
		SetEmail(email).
		SetPasswordHash("hashed").
		SetName("Test User").
		SetRole(role).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func createTestLead(t *testing.T, client *ent.Client, agentID int) *ent.Lead {
	l, err := client.Lead.Create().
		SetName("Ana Torres").
		SetEmail("ana@example.com").
		SetAssignedAgentID(agentID).
		SetCurrentStageID("lead").
		SetCurrentStageName("Lead").
		Save(context.Background())
	require.NoError(t, err)
	return l
}

func createTestOpportunity(t *testing.T, client *ent.Client, leadID, agentID int, stageID string) *ent.Opportunity {
	o, err := client.Opportunity.Create().
		SetLeadID(leadID).
		SetStageID(stageID).
		SetAssignedAgentID(agentID).
		SetExpectedValue(250000).
		Save(context.Background())
	require.NoError(t, err)
	return o
}

func adminPrincipal() access.Principal {
	return access.Principal{ID: 999, Role: access.RoleAdmin}
}

func TestMove_Basic(t *testing.T) {
	svc, client, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	agent := createTestUser(t, client, "agent@test.com", user.RoleAgent)
	l := createTestLead(t, client, agent.ID)
	o := createTestOpportunity(t, client, l.ID, agent.ID, "lead")

	before := o.StageEnteredAt

	result, err := svc.Move(ctx, adminPrincipal(), o.ID, "contacted", "")
	require.NoError(t, err)
	require.False(t, result.AlreadyInStage)

	moved := result.Opportunity
	assert.Equal(t, "contacted", moved.StageID)
	require.NotNil(t, moved.PreviousStageID)
	assert.Equal(t, "lead", *moved.PreviousStageID)
	assert.Equal(t, o.Version+1, moved.Version)
	assert.True(t, moved.StageEnteredAt.After(before) || moved.StageEnteredAt.Equal(before))
	assert.Nil(t, moved.Outcome)
	assert.Nil(t, moved.ClosedAt)

	// Lead mirror fields follow the move
	reloaded, err := client.Lead.Get(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "contacted", reloaded.CurrentStageID)
	assert.Equal(t, "Contacted", reloaded.CurrentStageName)

	// One audit record with transition metadata
	acts, err := client.Activity.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, acts, 1)
	assert.Equal(t, entactivity.TypeStageChange, acts[0].Type)
	assert.Equal(t, "Moved from Lead to Contacted", acts[0].Content)
	assert.Equal(t, l.ID, acts[0].LeadID)
	assert.Equal(t, o.ID, acts[0].OpportunityID)
	assert.Equal(t, "lead", acts[0].Metadata["from_stage_id"])
	assert.Equal(t, "contacted", acts[0].Metadata["to_stage_id"])
}

func TestMove_NoteBecomesActivityContent(t *testing.T) {
	svc, client, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	l := createTestLead(t, client, 0)
	o := createTestOpportunity(t, client, l.ID, 0, "lead")

	_, err := svc.Move(ctx, adminPrincipal(), o.ID, "qualified", "Spoke on the phone, ready to view")
	require.NoError(t, err)

	acts, err := client.Activity.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, acts, 1)
	assert.Equal(t, "Spoke on the phone, ready to view", acts[0].Content)
}

func TestMove_IdempotentSameStage(t *testing.T) {
	svc, client, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	l := createTestLead(t, client, 0)
	o := createTestOpportunity(t, client, l.ID, 0, "contacted")

	result, err := svc.Move(ctx, adminPrincipal(), o.ID, "contacted", "")
	require.NoError(t, err)
	assert.True(t, result.AlreadyInStage)

	// Nothing written: same version, same entry time, no audit record
	reloaded, err := client.Opportunity.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.Version, reloaded.Version)
	assert.True(t, o.StageEnteredAt.Equal(reloaded.StageEnteredAt))

	count, err := client.Activity.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMove_UnknownOpportunity(t *testing.T) {
	svc, _, cleanup := setupService(t)
	defer cleanup()

	_, err := svc.Move(context.Background(), adminPrincipal(), 12345, "contacted", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMove_UnknownStage(t *testing.T) {
	svc, client, cleanup := setupService(t)
	defer cleanup()

	l := createTestLead(t, client, 0)
	o := createTestOpportunity(t, client, l.ID, 0, "lead")

	_, err := svc.Move(context.Background(), adminPrincipal(), o.ID, "nonexistent", "")
	assert.ErrorIs(t, err, ErrInvalidStage)
}

func TestMove_AgentAccess(t *testing.T) {
	svc, client, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	owner := createTestUser(t, client, "owner@test.com", user.RoleAgent)
	other := createTestUser(t, client, "other@test.com", user.RoleAgent)
	l := createTestLead(t, client, owner.ID)
	o := createTestOpportunity(t, client, l.ID, owner.ID, "lead")

	// Owning agent may move it
	_, err := svc.Move(ctx, access.Principal{ID: owner.ID, Role: access.RoleAgent}, o.ID, "contacted", "")
	require.NoError(t, err)

	// A different agent may not
	_, err = svc.Move(ctx, access.Principal{ID: other.ID, Role: access.RoleAgent}, o.ID, "qualified", "")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestMove_StaffRoster(t *testing.T) {
	svc, client, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	agent := createTestUser(t, client, "agent@test.com", user.RoleAgent)
	linked := createTestUser(t, client, "linked@test.com", user.RoleStaff)
	unlinked := createTestUser(t, client, "unlinked@test.com", user.RoleStaff)

	err := client.User.UpdateOneID(linked.ID).AddLinkedAgentIDs(agent.ID).Exec(ctx)
	require.NoError(t, err)

	l := createTestLead(t, client, agent.ID)
	o := createTestOpportunity(t, client, l.ID, agent.ID, "lead")

	// Staff not linked to the owning agent is rejected
	_, err = svc.Move(ctx, access.Principal{ID: unlinked.ID, Role: access.RoleStaff}, o.ID, "contacted", "")
	assert.ErrorIs(t, err, ErrForbidden)

	// Staff linked to the owning agent may move it
	_, err = svc.Move(ctx, access.Principal{ID: linked.ID, Role: access.RoleStaff}, o.ID, "contacted", "")
	require.NoError(t, err)
}

func TestMove_TerminalStampsOutcome(t *testing.T) {
	svc, client, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	l := createTestLead(t, client, 0)
	o := createTestOpportunity(t, client, l.ID, 0, "negotiation")

	result, err := svc.Move(ctx, adminPrincipal(), o.ID, "sale", "")
	require.NoError(t, err)

	moved := result.Opportunity
	require.NotNil(t, moved.Outcome)
	assert.Equal(t, "won", string(*moved.Outcome))
	require.NotNil(t, moved.ClosedAt)
	assert.WithinDuration(t, time.Now(), *moved.ClosedAt, 5*time.Second)
}

func TestMove_TerminalLost(t *testing.T) {
	svc, client, cleanup := setupService(t)
	defer cleanup()

	l := createTestLead(t, client, 0)
	o := createTestOpportunity(t, client, l.ID, 0, "qualified")

	result, err := svc.Move(context.Background(), adminPrincipal(), o.ID, "lost", "")
	require.NoError(t, err)

	require.NotNil(t, result.Opportunity.Outcome)
	assert.Equal(t, "lost", string(*result.Opportunity.Outcome))
}

func TestMove_LeavingTerminalClearsOutcome(t *testing.T) {
	svc, client, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	l := createTestLead(t, client, 0)
	o := createTestOpportunity(t, client, l.ID, 0, "negotiation")

	_, err := svc.Move(ctx, adminPrincipal(), o.ID, "sale", "")
	require.NoError(t, err)

	// Reopening the deal clears the stale won label and close time
	result, err := svc.Move(ctx, adminPrincipal(), o.ID, "negotiation", "")
	require.NoError(t, err)

	moved := result.Opportunity
	assert.Nil(t, moved.Outcome)
	assert.Nil(t, moved.ClosedAt)
	assert.Equal(t, "negotiation", moved.StageID)
}

func TestApply_VersionConflict(t *testing.T) {
	svc, client, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	l := createTestLead(t, client, 0)
	o := createTestOpportunity(t, client, l.ID, 0, "lead")

	// A concurrent move committed first and bumped the version
	err := client.Opportunity.UpdateOneID(o.ID).AddVersion(1).Exec(ctx)
	require.NoError(t, err)

	cfg := pipeline.DefaultConfig()
	toStage, ok := pipeline.ResolveStage(cfg, "contacted")
	require.True(t, ok)

	// Apply with the stale snapshot must lose
	_, err = svc.apply(ctx, adminPrincipal(), o, l, toStage, "Lead", "")
	assert.ErrorIs(t, err, ErrConflict)

	// The stale writer left no partial state behind
	count, err := client.Activity.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	reloaded, err := client.Lead.Get(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "lead", reloaded.CurrentStageID)
}

func TestMove_BackwardMoveAllowed(t *testing.T) {
	svc, client, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	l := createTestLead(t, client, 0)
	o := createTestOpportunity(t, client, l.ID, 0, "negotiation")

	result, err := svc.Move(ctx, adminPrincipal(), o.ID, "lead", "")
	require.NoError(t, err)
	assert.Equal(t, "lead", result.Opportunity.StageID)
	require.NotNil(t, result.Opportunity.PreviousStageID)
	assert.Equal(t, "negotiation", *result.Opportunity.PreviousStageID)
}

func TestToResponse(t *testing.T) {
	svc, client, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	l := createTestLead(t, client, 7)
	o := createTestOpportunity(t, client, l.ID, 7, "lead")

	result, err := svc.Move(ctx, adminPrincipal(), o.ID, "sale", "")
	require.NoError(t, err)

	resp := ToResponse(result.Opportunity)
	assert.Equal(t, o.ID, resp.ID)
	assert.Equal(t, "sale", resp.StageID)
	assert.Equal(t, 7, resp.AssignedAgentID)
	require.NotNil(t, resp.Outcome)
	assert.Equal(t, "won", *resp.Outcome)
	require.NotNil(t, resp.ClosedAt)
	require.NotNil(t, resp.PreviousStageID)
	assert.Equal(t, "lead", *resp.PreviousStageID)
}
