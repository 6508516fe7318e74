package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/casaflow/casaflow/pkg/api/errors"
	"github.com/casaflow/casaflow/pkg/models"
	"github.com/casaflow/casaflow/pkg/pipeline"
)

// PipelineHandler handles pipeline configuration endpoints
type PipelineHandler struct {
	pipeline  *pipeline.Service
	validator *validator.Validate
}

// NewPipelineHandler creates a new pipeline handler
func NewPipelineHandler(pipelineService *pipeline.Service) *PipelineHandler {
	return &PipelineHandler{
		pipeline:  pipelineService,
		validator: validator.New(),
	}
}

// GetConfig returns the active pipeline configuration
func (h *PipelineHandler) GetConfig(c echo.Context) error {
	cfg, err := h.pipeline.GetConfig(c.Request().Context())
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, cfg)
}

// UpdateConfig replaces the pipeline configuration. Admin only, enforced
// by route middleware.
func (h *PipelineHandler) UpdateConfig(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "missing user")
	}

	var req models.UpdatePipelineRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	cfg, err := h.pipeline.UpdateConfig(c.Request().Context(), userID, req)
	if err != nil {
		var conflict *pipeline.VersionConflictError
		if stderrors.As(err, &conflict) {
			return c.JSON(http.StatusConflict, map[string]interface{}{
				"error":           "version_conflict",
				"message":         "Pipeline configuration was updated by someone else, reload and retry",
				"current_version": conflict.CurrentVersion,
			})
		}

		var invalid *pipeline.ValidationError
		if stderrors.As(err, &invalid) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid_pipeline",
				Message: invalid.Error(),
			})
		}

		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, cfg)
}
