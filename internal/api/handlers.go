// Package api exposes the inventory engine over the HTTP API the
// dashboard frontend consumes.
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/equip-dashboard/backend/internal/dataset"
)

// Handler carries the shared dependencies of all endpoints.
type Handler struct {
	mgr     *dataset.Manager
	version string
}

// NewHandler creates the API handler.
func NewHandler(mgr *dataset.Manager, version string) *Handler {
	return &Handler{mgr: mgr, version: version}
}

// HandleHealth returns server health status.
func (h *Handler) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"version": h.version,
	})
}

// HandleGetInventory returns the metadata of the current dataset, or the
// explicit empty shape when nothing has been uploaded yet.
func (h *Handler) HandleGetInventory(c echo.Context) error {
	info, ok := h.mgr.Info()
	if !ok {
		return c.JSON(http.StatusOK, map[string]any{"hasData": false})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"hasData": true,
		"dataset": info,
	})
}

// HandleClearInventory drops the dataset and its persisted snapshot.
func (h *Handler) HandleClearInventory(c echo.Context) error {
	if err := h.mgr.Clear(); err != nil {
		return NewInternalError("failed to clear inventory", err)
	}
	return c.NoContent(http.StatusNoContent)
}
