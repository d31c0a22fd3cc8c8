// routes.go - route registration
package api

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes wires all API routes onto the Echo instance.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/health", h.HandleHealth)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	inv := e.Group("/api/inventory")
	inv.POST("/upload", h.HandleUploadInventory)
	inv.GET("", h.HandleGetInventory)
	inv.DELETE("", h.HandleClearInventory)

	inv.GET("/devices", h.HandleListDevices)
	inv.GET("/devices/msgpack", h.HandleListDevicesMsgpack)
	inv.GET("/devices/:id", h.HandleGetDevice)

	inv.GET("/statistics", h.HandleGetStatistics)
	inv.GET("/export/csv", h.HandleExportCSV)
	inv.GET("/export/report", h.HandleExportReport)
}
