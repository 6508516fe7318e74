package pipeline

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casaflow/casaflow/ent"
	"github.com/casaflow/casaflow/ent/enttest"
	"github.com/casaflow/casaflow/pkg/cache"
	"github.com/casaflow/casaflow/pkg/models"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func setupTestCache(t *testing.T) (*cache.Client, func()) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return &cache.Client{Redis: rdb}, func() {
		rdb.Close()
		mr.Close()
	}
}

func TestGetConfig_DefaultWhenUnset(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client, nil)

	cfg, err := svc.GetConfig(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Version)
	assert.Equal(t, "lead", cfg.DefaultStageID)
	assert.Len(t, cfg.Stages, 7)

	sale, ok := ResolveStage(cfg, "sale")
	require.True(t, ok)
	assert.True(t, sale.IsTerminal)
	assert.Equal(t, "won", sale.TerminalType)
}

func TestUpdateConfig_CreatesOnFirstWrite(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client, nil)
	ctx := context.Background()

	req := models.UpdatePipelineRequest{
		Stages: []models.Stage{
			{ID: "new", Name: "New"},
			{ID: "won", Name: "Won", IsTerminal: true, TerminalType: "won"},
		},
		DefaultStageID: "new",
		Version:        0,
	}

	cfg, err := svc.UpdateConfig(ctx, 1, req)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Version)

	got, err := svc.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Version)
	assert.Equal(t, "new", got.DefaultStageID)
	assert.Len(t, got.Stages, 2)
}

func TestUpdateConfig_StaleVersionRejected(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client, nil)
	ctx := context.Background()

	req := models.UpdatePipelineRequest{
		Stages:         []models.Stage{{ID: "a", Name: "A"}},
		DefaultStageID: "a",
		Version:        0,
	}

	_, err := svc.UpdateConfig(ctx, 1, req)
	require.NoError(t, err)

	// Write again with the stale version 0
	_, err = svc.UpdateConfig(ctx, 1, req)
	require.Error(t, err)

	var conflict *VersionConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, 1, conflict.CurrentVersion)

	// Correct version succeeds
	req.Version = 1
	cfg, err := svc.UpdateConfig(ctx, 1, req)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Version)
}

func TestUpdateConfig_ValidationFailures(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client, nil)
	ctx := context.Background()

	cases := []struct {
		name string
		req  models.UpdatePipelineRequest
	}{
		{
			name: "empty stage list",
			req:  models.UpdatePipelineRequest{DefaultStageID: "a"},
		},
		{
			name: "duplicate stage id",
			req: models.UpdatePipelineRequest{
				Stages:         []models.Stage{{ID: "a", Name: "A"}, {ID: "a", Name: "A2"}},
				DefaultStageID: "a",
			},
		},
		{
			name: "unknown default stage",
			req: models.UpdatePipelineRequest{
				Stages:         []models.Stage{{ID: "a", Name: "A"}},
				DefaultStageID: "missing",
			},
		},
		{
			name: "terminal type on non-terminal stage",
			req: models.UpdatePipelineRequest{
				Stages:         []models.Stage{{ID: "a", Name: "A", TerminalType: "won"}},
				DefaultStageID: "a",
			},
		},
		{
			name: "invalid terminal type",
			req: models.UpdatePipelineRequest{
				Stages:         []models.Stage{{ID: "a", Name: "A", IsTerminal: true, TerminalType: "maybe"}},
				DefaultStageID: "a",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.UpdateConfig(ctx, 1, tc.req)
			require.Error(t, err)

			var invalid *ValidationError
			assert.ErrorAs(t, err, &invalid)
		})
	}
}

func TestGetConfig_CacheRoundTrip(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	redisClient, cleanupCache := setupTestCache(t)
	defer cleanupCache()

	svc := NewService(client, redisClient)
	ctx := context.Background()

	req := models.UpdatePipelineRequest{
		Stages:         []models.Stage{{ID: "a", Name: "A"}},
		DefaultStageID: "a",
		Version:        0,
	}
	_, err := svc.UpdateConfig(ctx, 1, req)
	require.NoError(t, err)

	// First read populates the cache
	cfg, err := svc.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Version)

	var cached models.PipelineConfig
	found, err := redisClient.GetJSON(ctx, "pipeline:config", &cached)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, cfg, cached)

	// An update invalidates the cached copy
	req.Version = 1
	_, err = svc.UpdateConfig(ctx, 1, req)
	require.NoError(t, err)

	found, err = redisClient.GetJSON(ctx, "pipeline:config", &cached)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestResolveStage(t *testing.T) {
	cfg := DefaultConfig()

	st, ok := ResolveStage(cfg, "negotiation")
	require.True(t, ok)
	assert.Equal(t, "Negotiation", st.Name)

	_, ok = ResolveStage(cfg, "does-not-exist")
	assert.False(t, ok)
}
