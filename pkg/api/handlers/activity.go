package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/casaflow/casaflow/pkg/activity"
	"github.com/casaflow/casaflow/pkg/api/errors"
	"github.com/casaflow/casaflow/pkg/models"
)

// ActivityHandler handles lead timeline endpoints
type ActivityHandler struct {
	activities *activity.Service
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activities *activity.Service) *ActivityHandler {
	return &ActivityHandler{activities: activities}
}

// ListByLead returns a lead's timeline, newest first
func (h *ActivityHandler) ListByLead(c echo.Context) error {
	leadID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Lead ID must be a number",
		})
	}

	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid_limit",
				Message: "limit must be a number",
			})
		}
	}

	resp, err := h.activities.ListByLead(c.Request().Context(), leadID, limit)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}
