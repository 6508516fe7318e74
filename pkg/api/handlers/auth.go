package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/casaflow/casaflow/config"
	"github.com/casaflow/casaflow/ent"
	"github.com/casaflow/casaflow/ent/user"
	"github.com/casaflow/casaflow/pkg/api/errors"
	"github.com/casaflow/casaflow/pkg/auth"
	"github.com/casaflow/casaflow/pkg/metrics"
	"github.com/casaflow/casaflow/pkg/models"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	db        *ent.Client
	config    *config.Config
	blacklist *auth.TokenBlacklist
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewAuthHandler creates a new auth handler. metrics may be nil.
func NewAuthHandler(db *ent.Client, cfg *config.Config, blacklist *auth.TokenBlacklist, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		db:        db,
		config:    cfg,
		blacklist: blacklist,
		metrics:   m,
		validator: validator.New(),
	}
}

// Login authenticates a user and issues a JWT
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.db.User.Query().Where(user.EmailEQ(req.Email)).Only(ctx)
	if err != nil {
		h.recordLogin(false)
		// Do not reveal whether the email exists
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "invalid_credentials",
			Message: "Invalid email or password",
		})
	}

	if !u.Active {
		h.recordLogin(false)
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "account_deactivated",
			Message: "This account has been deactivated",
		})
	}

	if !auth.CheckPassword(req.Password, u.PasswordHash) {
		h.recordLogin(false)
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "invalid_credentials",
			Message: "Invalid email or password",
		})
	}

	token, err := auth.GenerateJWT(
		u.ID,
		u.Email,
		string(u.Role),
		u.HasExclusiveAccess,
		h.config.JWTSecret,
		h.config.JWTExpirationHours,
	)
	if err != nil {
		return errors.InternalError(c, err)
	}

	// Best effort, login should not fail on this
	_ = h.db.User.UpdateOneID(u.ID).SetLastLoginAt(time.Now()).Exec(ctx)

	h.recordLogin(true)

	return c.JSON(http.StatusOK, models.LoginResponse{
		Token:              token,
		UserID:             u.ID,
		Email:              u.Email,
		Name:               u.Name,
		Role:               string(u.Role),
		HasExclusiveAccess: u.HasExclusiveAccess,
	})
}

// Logout invalidates the current token via the blacklist
func (h *AuthHandler) Logout(c echo.Context) error {
	token, ok := c.Get("token").(string)
	if !ok || token == "" {
		return errors.UnauthorizedError(c, "missing token")
	}

	if h.blacklist != nil {
		ttl := time.Duration(h.config.JWTExpirationHours) * time.Hour
		if err := h.blacklist.Add(c.Request().Context(), token, ttl); err != nil {
			return errors.InternalError(c, err)
		}
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Logged out successfully",
	})
}

func (h *AuthHandler) recordLogin(success bool) {
	if h.metrics != nil {
		h.metrics.RecordLoginAttempt(success)
	}
}
