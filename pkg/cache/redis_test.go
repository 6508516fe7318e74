package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a test Redis client using miniredis
func setupTestRedis(t *testing.T) (*Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	redisClient := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return &Client{Redis: redisClient}, mr
}

func TestClient_SetGet(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	err := client.Set(ctx, "board:stage_counts", "cached", 1*time.Hour)
	require.NoError(t, err)

	val, err := client.Get(ctx, "board:stage_counts")
	require.NoError(t, err)
	assert.Equal(t, "cached", val)
}

func TestClient_GetMissingKey(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	_, err := client.Get(context.Background(), "does-not-exist")
	assert.Error(t, err)
}

func TestClient_JSONRoundTrip(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	type payload struct {
		StageID string  `json:"stage_id"`
		Total   float64 `json:"total"`
	}

	err := client.SetJSON(ctx, "pipeline:config", payload{StageID: "qualified", Total: 125000}, time.Minute)
	require.NoError(t, err)

	var got payload
	found, err := client.GetJSON(ctx, "pipeline:config", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "qualified", got.StageID)
	assert.Equal(t, 125000.0, got.Total)

	// Missing key reports found=false without error.
	found, err = client.GetJSON(ctx, "pipeline:missing", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestClient_DeletePattern(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	_ = client.Set(ctx, "board:counts:all", "a", time.Hour)
	_ = client.Set(ctx, "board:counts:agent:7", "b", time.Hour)
	_ = client.Set(ctx, "pipeline:config", "c", time.Hour)

	err := client.DeletePattern(ctx, "board:counts:*")
	require.NoError(t, err)

	exists, err := client.Exists(ctx, "board:counts:all")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = client.Exists(ctx, "pipeline:config")
	require.NoError(t, err)
	assert.True(t, exists)
}
