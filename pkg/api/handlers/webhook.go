package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/casaflow/casaflow/ent"
	"github.com/casaflow/casaflow/pkg/api/errors"
	"github.com/casaflow/casaflow/pkg/models"
	"github.com/casaflow/casaflow/pkg/webhook"
)

// WebhookHandler handles webhook subscription endpoints
type WebhookHandler struct {
	webhooks  *webhook.Service
	validator *validator.Validate
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(webhooks *webhook.Service) *WebhookHandler {
	return &WebhookHandler{
		webhooks:  webhooks,
		validator: validator.New(),
	}
}

// Create registers a webhook subscription. The signing secret is only
// returned here, it cannot be read back later.
func (h *WebhookHandler) Create(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "missing user")
	}

	var req models.CreateWebhookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	hook, err := h.webhooks.Create(c.Request().Context(), userID, req.URL, req.Events, req.Description)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	resp := toWebhookResponse(hook)
	resp.Secret = hook.Secret

	return c.JSON(http.StatusCreated, resp)
}

// List returns the caller's webhook subscriptions
func (h *WebhookHandler) List(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "missing user")
	}

	hooks, err := h.webhooks.List(c.Request().Context(), userID)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	out := make([]models.WebhookResponse, 0, len(hooks))
	for _, hook := range hooks {
		out = append(out, toWebhookResponse(hook))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"data": out})
}

// Delete removes one of the caller's webhook subscriptions
func (h *WebhookHandler) Delete(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "missing user")
	}

	webhookID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Webhook ID must be a number",
		})
	}

	if err := h.webhooks.Delete(c.Request().Context(), userID, webhookID); err != nil {
		if err.Error() == "webhook not found" {
			return errors.NotFoundError(c, "webhook")
		}
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Webhook deleted"})
}

func toWebhookResponse(hook *ent.Webhook) models.WebhookResponse {
	return models.WebhookResponse{
		ID:          hook.ID,
		URL:         hook.URL,
		Events:      hook.Events,
		Description: hook.Description,
		Active:      hook.Active,
		CreatedAt:   hook.CreatedAt.Format(time.RFC3339),
	}
}
