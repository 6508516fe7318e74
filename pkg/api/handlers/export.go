package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/casaflow/casaflow/pkg/api/errors"
	apimw "github.com/casaflow/casaflow/pkg/api/middleware"
	"github.com/casaflow/casaflow/pkg/export"
)

// ExportHandler handles export endpoints
type ExportHandler struct {
	exports *export.Service
}

// NewExportHandler creates a new export handler
func NewExportHandler(exports *export.Service) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// CreateBoardExport writes the caller's visible pipeline to an XLSX file
func (h *ExportHandler) CreateBoardExport(c echo.Context) error {
	p, ok := apimw.PrincipalFromContext(c)
	if !ok {
		return errors.UnauthorizedError(c, "missing principal")
	}

	result, err := h.exports.ExportBoard(c.Request().Context(), p)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusCreated, result)
}
