// handlers_export.go - statistics and export endpoints
package api

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/equip-dashboard/backend/internal/export"
	"github.com/equip-dashboard/backend/internal/models"
	"github.com/equip-dashboard/backend/internal/stats"
)

// HandleGetStatistics recomputes and returns the dashboard aggregates.
// With no data loaded it returns all-zero statistics, the same shape the
// charts render as their empty state.
func (h *Handler) HandleGetStatistics(c echo.Context) error {
	devices, ok := h.mgr.Devices()
	if !ok {
		devices = []models.Device{}
	}
	return c.JSON(http.StatusOK, stats.Compute(devices))
}

// HandleExportCSV downloads the device list re-serialized in the source
// sheet's seven-column shape.
func (h *Handler) HandleExportCSV(c echo.Context) error {
	devices, ok := h.mgr.Devices()
	if !ok {
		return NewNoDataError()
	}

	var buf bytes.Buffer
	// UTF-8 BOM so Excel opens the Chinese headers correctly.
	buf.WriteString("\ufeff")
	if err := export.WriteCSV(&buf, devices); err != nil {
		return NewInternalError("failed to build csv export", err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", "inventory_export.csv"))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// HandleExportReport downloads the plain-text statistics report.
func (h *Handler) HandleExportReport(c echo.Context) error {
	devices, ok := h.mgr.Devices()
	if !ok {
		return NewNoDataError()
	}
	info, _ := h.mgr.Info()

	report := export.Report(info, stats.Compute(devices))
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", "inventory_report.txt"))
	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", []byte(report))
}
