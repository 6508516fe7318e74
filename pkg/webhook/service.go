// Package webhook delivers outbound, HMAC-signed event notifications
// to registered subscriber URLs.
package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/casaflow/casaflow/ent"
	"github.com/casaflow/casaflow/ent/webhook"
)

// Event types
const (
	EventStageChanged = "opportunity.stage_changed"
	EventClosed       = "opportunity.closed"
)

// Service handles webhook operations
type Service struct {
	client     *ent.Client
	httpClient *http.Client
}

// NewService creates a new webhook service
func NewService(client *ent.Client) *Service {
	return &Service{
		client: client,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Payload represents a webhook payload
type Payload struct {
	Event     string                 `json:"event"`
	Data      map[string]interface{} `json:"data"`
	Timestamp int64                  `json:"timestamp"`
}

// Create registers a new webhook subscription.
func (s *Service) Create(ctx context.Context, userID int, url string, events []string, description string) (*ent.Webhook, error) {
	secret, err := generateSecret()
	if err != nil {
		return nil, fmt.Errorf("failed to generate secret: %w", err)
	}

	wh, err := s.client.Webhook.Create().
		SetUserID(userID).
		SetURL(url).
		SetEvents(events).
		SetSecret(secret).
		SetDescription(description).
		SetActive(true).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook: %w", err)
	}

	return wh, nil
}

// List returns all webhooks registered by a user.
func (s *Service) List(ctx context.Context, userID int) ([]*ent.Webhook, error) {
	return s.client.Webhook.Query().
		Where(webhook.UserID(userID)).
		Order(ent.Desc(webhook.FieldCreatedAt)).
		All(ctx)
}

// Delete removes a webhook owned by the given user.
func (s *Service) Delete(ctx context.Context, userID, webhookID int) error {
	n, err := s.client.Webhook.Delete().
		Where(webhook.ID(webhookID), webhook.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete webhook: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("webhook not found")
	}
	return nil
}

// Dispatch delivers an event to every active subscription for it.
// Delivery failures are logged, never propagated: a dead subscriber
// must not fail the triggering operation.
func (s *Service) Dispatch(ctx context.Context, event string, data map[string]interface{}) {
	hooks, err := s.client.Webhook.Query().
		Where(webhook.Active(true)).
		All(ctx)
	if err != nil {
		log.Printf("[WEBHOOK] failed to load subscriptions: %v", err)
		return
	}

	payload := Payload{
		Event:     event,
		Data:      data,
		Timestamp: time.Now().Unix(),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[WEBHOOK] failed to marshal payload: %v", err)
		return
	}

	for _, h := range hooks {
		if !subscribed(h.Events, event) {
			continue
		}
		if err := s.deliver(ctx, h, body); err != nil {
			log.Printf("[WEBHOOK] delivery to %s failed: %v", h.URL, err)
		}
	}
}

// DispatchAsync fires Dispatch on its own goroutine with a detached
// deadline, so callers on a request path are not blocked by slow
// subscribers.
func (s *Service) DispatchAsync(event string, data map[string]interface{}) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		s.Dispatch(ctx, event, data)
	}()
}

func (s *Service) deliver(ctx context.Context, h *ent.Webhook, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-CasaFlow-Signature", sign(h.Secret, body))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("subscriber returned status %d", resp.StatusCode)
	}
	return nil
}

func subscribed(events []string, event string) bool {
	for _, e := range events {
		if e == event {
			return true
		}
	}
	return false
}

// sign computes the hex HMAC-SHA256 of the payload body.
func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func generateSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
