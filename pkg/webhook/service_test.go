package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casaflow/casaflow/ent"
	"github.com/casaflow/casaflow/ent/enttest"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func TestCreate_GeneratesSecret(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client)

	wh, err := svc.Create(context.Background(), 1, "https://example.com/hook", []string{EventStageChanged}, "")
	require.NoError(t, err)

	assert.Len(t, wh.Secret, 64) // 32 random bytes, hex encoded
	assert.True(t, wh.Active)
	assert.Equal(t, []string{EventStageChanged}, wh.Events)
}

func TestDelete_ScopedToOwner(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	svc := NewService(client)

	wh, err := svc.Create(ctx, 1, "https://example.com/hook", []string{EventClosed}, "")
	require.NoError(t, err)

	// Another user cannot delete it
	err = svc.Delete(ctx, 2, wh.ID)
	require.Error(t, err)
	assert.Equal(t, "webhook not found", err.Error())

	// The owner can
	require.NoError(t, svc.Delete(ctx, 1, wh.ID))

	hooks, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, hooks)
}

func TestDispatch_SignedDelivery(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	svc := NewService(client)

	var gotBody []byte
	var gotSignature string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotSignature = r.Header.Get("X-CasaFlow-Signature")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	wh, err := svc.Create(ctx, 1, server.URL, []string{EventStageChanged}, "test hook")
	require.NoError(t, err)

	svc.Dispatch(ctx, EventStageChanged, map[string]interface{}{
		"opportunity_id": 42,
		"to_stage_id":    "contacted",
	})

	require.NotEmpty(t, gotBody)

	var payload Payload
	require.NoError(t, json.Unmarshal(gotBody, &payload))
	assert.Equal(t, EventStageChanged, payload.Event)
	assert.Equal(t, "contacted", payload.Data["to_stage_id"])
	assert.NotZero(t, payload.Timestamp)

	mac := hmac.New(sha256.New, []byte(wh.Secret))
	mac.Write(gotBody)
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), gotSignature)
}

func TestDispatch_SkipsUnsubscribedEvents(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	svc := NewService(client)

	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := svc.Create(ctx, 1, server.URL, []string{EventClosed}, "")
	require.NoError(t, err)

	svc.Dispatch(ctx, EventStageChanged, map[string]interface{}{})
	assert.Zero(t, calls)

	svc.Dispatch(ctx, EventClosed, map[string]interface{}{})
	assert.Equal(t, 1, calls)
}

func TestDispatch_FailureDoesNotPropagate(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	svc := NewService(client)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := svc.Create(ctx, 1, server.URL, []string{EventClosed}, "")
	require.NoError(t, err)

	// Must not panic or error; failures are only logged
	svc.Dispatch(ctx, EventClosed, map[string]interface{}{})
}
