package activity

import (
	"context"
	"fmt"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casaflow/casaflow/ent"
	entactivity "github.com/casaflow/casaflow/ent/activity"
	"github.com/casaflow/casaflow/ent/enttest"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func createTestLead(t *testing.T, client *ent.Client) *ent.Lead {
	l, err := client.Lead.Create().
		SetName("Carlos Ruiz").
		Save(context.Background())
	require.NoError(t, err)
	return l
}

func TestAppendAndList(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	svc := NewService(client)
	l := createTestLead(t, client)

	_, err := svc.Append(ctx, Entry{
		LeadID:      l.ID,
		Type:        entactivity.TypeNote,
		Content:     "Called, no answer",
		CreatedByID: 5,
	})
	require.NoError(t, err)

	_, err = svc.Append(ctx, Entry{
		LeadID:        l.ID,
		OpportunityID: 0,
		Type:          entactivity.TypeStageChange,
		Content:       "Moved from Lead to Contacted",
		Metadata: map[string]interface{}{
			"from_stage_id": "lead",
			"to_stage_id":   "contacted",
		},
		CreatedByID: 5,
	})
	require.NoError(t, err)

	resp, err := svc.ListByLead(ctx, l.ID, 0)
	require.NoError(t, err)
	require.Len(t, resp.Data, 2)

	// Newest first
	assert.Equal(t, "stage_change", resp.Data[0].Type)
	assert.Equal(t, "contacted", resp.Data[0].Metadata["to_stage_id"])
	assert.Equal(t, "Called, no answer", resp.Data[1].Content)
	assert.Equal(t, 5, resp.Data[1].CreatedByID)
}

func TestListByLead_LimitClamped(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	svc := NewService(client)
	l := createTestLead(t, client)

	for i := 0; i < 60; i++ {
		_, err := svc.Append(ctx, Entry{
			LeadID:  l.ID,
			Type:    entactivity.TypeNote,
			Content: fmt.Sprintf("note %d", i),
		})
		require.NoError(t, err)
	}

	// Zero limit falls back to the default of 50
	resp, err := svc.ListByLead(ctx, l.ID, 0)
	require.NoError(t, err)
	assert.Len(t, resp.Data, 50)

	// Oversized limit is clamped the same way
	resp, err = svc.ListByLead(ctx, l.ID, 10_000)
	require.NoError(t, err)
	assert.Len(t, resp.Data, 50)

	resp, err = svc.ListByLead(ctx, l.ID, 10)
	require.NoError(t, err)
	assert.Len(t, resp.Data, 10)
}

func TestListByLead_ScopedToLead(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	svc := NewService(client)
	l1 := createTestLead(t, client)
	l2 := createTestLead(t, client)

	_, err := svc.Append(ctx, Entry{LeadID: l1.ID, Type: entactivity.TypeNote, Content: "for lead 1"})
	require.NoError(t, err)
	_, err = svc.Append(ctx, Entry{LeadID: l2.ID, Type: entactivity.TypeNote, Content: "for lead 2"})
	require.NoError(t, err)

	resp, err := svc.ListByLead(ctx, l1.ID, 0)
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "for lead 1", resp.Data[0].Content)
}
