package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/casaflow/casaflow/pkg/api/errors"
	apimw "github.com/casaflow/casaflow/pkg/api/middleware"
	"github.com/casaflow/casaflow/pkg/metrics"
	"github.com/casaflow/casaflow/pkg/models"
	"github.com/casaflow/casaflow/pkg/opportunity"
)

// OpportunityHandler handles stage transition endpoints
type OpportunityHandler struct {
	opportunities *opportunity.Service
	metrics       *metrics.Metrics
	validator     *validator.Validate
}

// NewOpportunityHandler creates a new opportunity handler. metrics may be nil.
func NewOpportunityHandler(opportunities *opportunity.Service, m *metrics.Metrics) *OpportunityHandler {
	return &OpportunityHandler{
		opportunities: opportunities,
		metrics:       m,
		validator:     validator.New(),
	}
}

// Move executes one stage transition
func (h *OpportunityHandler) Move(c echo.Context) error {
	p, ok := apimw.PrincipalFromContext(c)
	if !ok {
		return errors.UnauthorizedError(c, "missing principal")
	}

	var req models.MoveOpportunityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	result, err := h.opportunities.Move(c.Request().Context(), p, req.OpportunityID, req.ToStageID, req.Note)
	if err != nil {
		switch {
		case stderrors.Is(err, opportunity.ErrNotFound):
			return errors.NotFoundError(c, "opportunity")
		case stderrors.Is(err, opportunity.ErrLeadNotFound):
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "lead_not_found",
				Message: "The lead referenced by this opportunity no longer exists",
			})
		case stderrors.Is(err, opportunity.ErrForbidden):
			return errors.ForbiddenError(c, "opportunity")
		case stderrors.Is(err, opportunity.ErrInvalidStage):
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid_stage",
				Message: "Target stage does not exist in the pipeline",
			})
		case stderrors.Is(err, opportunity.ErrConflict):
			if h.metrics != nil {
				h.metrics.RecordMoveConflict()
			}
			return errors.ConflictError(c, "Opportunity was modified concurrently, please retry")
		default:
			return errors.InternalError(c, err)
		}
	}

	resp := opportunity.ToResponse(result.Opportunity)
	if result.AlreadyInStage {
		resp.Message = "Already in this stage"
		return c.JSON(http.StatusOK, resp)
	}

	if h.metrics != nil {
		h.metrics.RecordMove(result.ToStage.ID)
	}

	return c.JSON(http.StatusOK, resp)
}
