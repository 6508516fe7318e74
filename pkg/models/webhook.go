package models

// CreateWebhookRequest registers an outbound webhook subscription.
type CreateWebhookRequest struct {
	URL         string   `json:"url" validate:"required,url"`
	Events      []string `json:"events" validate:"required,min=1,dive,oneof=opportunity.stage_changed opportunity.closed"`
	Description string   `json:"description,omitempty" validate:"omitempty,max=500"`
}

// WebhookResponse represents a webhook subscription. The signing secret
// is only included in the creation response.
type WebhookResponse struct {
	ID          int      `json:"id"`
	URL         string   `json:"url"`
	Events      []string `json:"events"`
	Description string   `json:"description,omitempty"`
	Active      bool     `json:"active"`
	Secret      string   `json:"secret,omitempty"`
	CreatedAt   string   `json:"created_at"`
}
