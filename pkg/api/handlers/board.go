package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/casaflow/casaflow/config"
	"github.com/casaflow/casaflow/pkg/api/errors"
	apimw "github.com/casaflow/casaflow/pkg/api/middleware"
	"github.com/casaflow/casaflow/pkg/board"
	"github.com/casaflow/casaflow/pkg/metrics"
)

// BoardHandler handles kanban board endpoints
type BoardHandler struct {
	board        *board.Service
	metrics      *metrics.Metrics
	defaultLimit int
	maxLimit     int
}

// NewBoardHandler creates a new board handler. metrics may be nil.
func NewBoardHandler(boardService *board.Service, cfg *config.Config, m *metrics.Metrics) *BoardHandler {
	return &BoardHandler{
		board:        boardService,
		metrics:      m,
		defaultLimit: cfg.BoardDefaultLimit,
		maxLimit:     cfg.BoardMaxLimit,
	}
}

// GetBoard returns the caller's kanban board snapshot
func (h *BoardHandler) GetBoard(c echo.Context) error {
	p, ok := apimw.PrincipalFromContext(c)
	if !ok {
		return errors.UnauthorizedError(c, "missing principal")
	}

	opts := board.Options{LimitPerColumn: h.defaultLimit}

	if v := c.QueryParam("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error":   "invalid_limit",
				"message": "limit must be a number",
			})
		}
		if limit > h.maxLimit {
			limit = h.maxLimit
		}
		opts.LimitPerColumn = limit
	}

	if v := c.QueryParam("exclude_terminal"); v == "true" || v == "1" {
		opts.ExcludeTerminal = true
	}

	if v := c.QueryParam("exclusive_only"); v == "true" || v == "1" {
		opts.ExclusiveOnly = true
	}

	b, err := h.board.BuildBoard(c.Request().Context(), p, opts)
	if err != nil {
		return errors.InternalError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordBoardBuilt()
	}

	return c.JSON(http.StatusOK, b)
}

// GetStages returns per-stage counts and value totals
func (h *BoardHandler) GetStages(c echo.Context) error {
	p, ok := apimw.PrincipalFromContext(c)
	if !ok {
		return errors.UnauthorizedError(c, "missing principal")
	}

	summary, err := h.board.StagesWithCounts(c.Request().Context(), p)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}
