package board

import (
	"context"
	"fmt"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casaflow/casaflow/ent"
	"github.com/casaflow/casaflow/ent/enttest"
	"github.com/casaflow/casaflow/ent/property"
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

func seedOpportunity(t *testing.T, client *ent.Client, stageID string, agentID int, value float64, exclusive bool) *ent.Opportunity {
	ctx := context.Background()

	l, err := client.Lead.Create().
		SetName(fmt.Sprintf("Lead %s %d", stageID, agentID)).
		SetAssignedAgentID(agentID).
		SetIsExclusive(exclusive).
		SetCurrentStageID(stageID).
		Save(ctx)
	require.NoError(t, err)

	o, err := client.Opportunity.Create().
		SetLeadID(l.ID).
		SetStageID(stageID).
		SetAssignedAgentID(agentID).
		SetIsExclusive(exclusive).
		SetExpectedValue(value).
		Save(ctx)
	require.NoError(t, err)
	return o
}

func admin() access.Principal {
	return access.Principal{ID: 1, Role: access.RoleAdmin}
}

func TestBuildBoard_ColumnsFollowStageOrder(t *testing.T) {
	svc, client, cleanup := setupService(t)
	defer cleanup()

	seedOpportunity(t, client, "lead", 10, 100000, false)
	seedOpportunity(t, client, "negotiation", 10, 300000, false)

	b, err := svc.BuildBoard(context.Background(), admin(), Options{})
	require.NoError(t, err)

	cfg := pipeline.DefaultConfig()
	require.Len(t, b.Columns, len(cfg.Stages))
	for i, col := range b.Columns {
		assert.Equal(t, cfg.Stages[i].ID, col.Stage.ID)
	}

	assert.Equal(t, 1, b.Columns[0].Count)
	assert.Equal(t, float64(100000), b.Columns[0].TotalValue)
	assert.Equal(t, 0, b.Columns[1].Count)
}

func TestBuildBoard_LimitClamped(t *testing.T) {
	svc, client, cleanup := setupService(t)
	defer cleanup()

	for i := 0; i < MaxLimit+5; i++ {
		seedOpportunity(t, client, "lead", 10, 1000, false)
	}

	b, err := svc.BuildBoard(context.Background(), admin(), Options{LimitPerColumn: 500})
	require.NoError(t, err)

	assert.Len(t, b.Columns[0].Opportunities, MaxLimit)
	assert.Equal(t, MaxLimit, b.Columns[0].Count)
}

func TestBuildBoard_DefaultLimit(t *testing.T) {
	svc, client, cleanup := setupService(t)
	defer cleanup()

	for i := 0; i < DefaultLimit+3; i++ {
		seedOpportunity(t, client, "contacted", 10, 1000, false)
	}

	b, err := svc.BuildBoard(context.Background(), admin(), Options{})
	require.NoError(t, err)

	assert.Len(t, b.Columns[1].Opportunities, DefaultLimit)
}

func TestBuildBoard_AgentSeesOnlyOwnCards(t *testing.T) {
	svc, client, cleanup := setupService(t)
	defer cleanup()

	seedOpportunity(t, client, "lead", 10, 100000, false)
	seedOpportunity(t, client, "lead", 20, 200000, false)

	b, err := svc.BuildBoard(context.Background(), access.Principal{ID: 10, Role: access.RoleAgent}, Options{})
	require.NoError(t, err)

	require.Equal(t, 1, b.Columns[0].Count)
	assert.Equal(t, 10, b.Columns[0].Opportunities[0].Opportunity.AssignedAgentID)
	assert.Equal(t, float64(100000), b.Columns[0].TotalValue)
}

func TestBuildBoard_ExcludeTerminal(t *testing.T) {
	svc, client, cleanup := setupService(t)
	defer cleanup()

	seedOpportunity(t, client, "sale", 10, 100000, false)

	b, err := svc.BuildBoard(context.Background(), admin(), Options{ExcludeTerminal: true})
	require.NoError(t, err)

	for _, col := range b.Columns {
		assert.False(t, col.Stage.IsTerminal)
	}
	assert.Len(t, b.Columns, 5)
}

func TestBuildBoard_ExclusiveOnly(t *testing.T) {
	svc, client, cleanup := setupService(t)
	defer cleanup()

	seedOpportunity(t, client, "lead", 10, 100000, true)
	seedOpportunity(t, client, "lead", 10, 200000, false)

	// Principal with exclusive access gets the filter applied
	withAccess := access.Principal{ID: 1, Role: access.RoleAdmin, HasExclusiveAccess: true}
	b, err := svc.BuildBoard(context.Background(), withAccess, Options{ExclusiveOnly: true})
	require.NoError(t, err)
	require.Equal(t, 1, b.Columns[0].Count)
	assert.True(t, b.Columns[0].Opportunities[0].Opportunity.IsExclusive)

	// Without exclusive access the flag is ignored
	b, err = svc.BuildBoard(context.Background(), admin(), Options{ExclusiveOnly: true})
	require.NoError(t, err)
	assert.Equal(t, 2, b.Columns[0].Count)
}

func TestBuildBoard_CardCarriesLeadAndProperty(t *testing.T) {
	svc, client, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	o := seedOpportunity(t, client, "listing", 10, 450000, false)

	_, err := client.Property.Create().
		SetTitle("Casa del Sol").
		SetCity("Valencia").
		SetPropertyType(property.PropertyTypeHouse).
		SetPrice(450000).
		SetLeadID(o.LeadID).
		Save(ctx)
	require.NoError(t, err)

	b, err := svc.BuildBoard(ctx, admin(), Options{})
	require.NoError(t, err)

	for _, col := range b.Columns {
		if col.Stage.ID != "listing" {
			continue
		}
		require.Len(t, col.Opportunities, 1)
		c := col.Opportunities[0]
		assert.Equal(t, o.LeadID, c.Lead.ID)
		require.NotNil(t, c.Property)
		assert.Equal(t, "Casa del Sol", c.Property.Title)
		assert.Equal(t, "house", c.Property.PropertyType)
	}
}

func TestStagesWithCounts_Unbounded(t *testing.T) {
	svc, client, cleanup := setupService(t)
	defer cleanup()

	for i := 0; i < MaxLimit+10; i++ {
		seedOpportunity(t, client, "lead", 10, 1000, false)
	}
	seedOpportunity(t, client, "sale", 10, 500000, false)

	summary, err := svc.StagesWithCounts(context.Background(), admin())
	require.NoError(t, err)

	cfg := pipeline.DefaultConfig()
	require.Len(t, summary.Stages, len(cfg.Stages))

	assert.Equal(t, "lead", summary.Stages[0].ID)
	assert.Equal(t, MaxLimit+10, summary.Stages[0].Count)
	assert.Equal(t, float64((MaxLimit+10)*1000), summary.Stages[0].TotalValue)

	// Empty stages are present with zero counts
	assert.Equal(t, 0, summary.Stages[1].Count)
	assert.Zero(t, summary.Stages[1].TotalValue)
}

func TestStagesWithCounts_AgentScoped(t *testing.T) {
	svc, client, cleanup := setupService(t)
	defer cleanup()

	seedOpportunity(t, client, "lead", 10, 100000, false)
	seedOpportunity(t, client, "lead", 20, 999999, false)

	summary, err := svc.StagesWithCounts(context.Background(), access.Principal{ID: 10, Role: access.RoleAgent})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Stages[0].Count)
	assert.Equal(t, float64(100000), summary.Stages[0].TotalValue)
}
