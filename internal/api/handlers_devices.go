// handlers_devices.go - device list and detail queries
package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/equip-dashboard/backend/internal/metrics"
	"github.com/equip-dashboard/backend/internal/models"
	"github.com/equip-dashboard/backend/internal/query"
)

const defaultPageSize = 20

// HandleListDevices runs Search -> Filter -> Sort -> Paginate over the
// current device list, driven entirely by query parameters. With no data
// loaded it returns an empty page rather than an error.
func (h *Handler) HandleListDevices(c echo.Context) error {
	page := intParam(c, "page", 1)
	pageSize := intParam(c, "pageSize", defaultPageSize)

	devices, ok := h.mgr.Devices()
	if !ok {
		metrics.ObserveQuery("no_data")
		return c.JSON(http.StatusOK, query.Paginate([]models.Device{}, page, pageSize))
	}

	devices = query.Search(devices, c.QueryParam("search"))
	devices = query.Filter(devices, query.Criteria{
		DeviceCode:    c.QueryParam("deviceCode"),
		WorkLocation:  c.QueryParam("workLocation"),
		ComponentName: c.QueryParam("componentName"),
		ComponentSpec: c.QueryParam("componentSpec"),
	})
	if sortBy := c.QueryParam("sortBy"); sortBy != "" {
		devices = query.Sort(devices, sortBy, c.QueryParam("order"))
	}

	metrics.ObserveQuery("ok")
	return c.JSON(http.StatusOK, query.Paginate(devices, page, pageSize))
}

// HandleGetDevice returns one device by id. "No data loaded" and "no such
// device" are distinct 404s (NO_DATA vs NOT_FOUND).
func (h *Handler) HandleGetDevice(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewBadRequestError("invalid device id", err)
	}

	device, found, hasData := h.mgr.Device(id)
	if !hasData {
		return NewNoDataError()
	}
	if !found {
		return NewNotFoundError("device", c.Param("id"))
	}
	return c.JSON(http.StatusOK, device)
}

// HandleListDevicesMsgpack streams the full device list msgpack-encoded,
// the compact path the frontend uses to hydrate its local cache in one
// request.
func (h *Handler) HandleListDevicesMsgpack(c echo.Context) error {
	devices, ok := h.mgr.Devices()
	if !ok {
		devices = []models.Device{}
	}

	data, err := msgpack.Marshal(devices)
	if err != nil {
		return NewInternalError("failed to encode device list", err)
	}
	return c.Blob(http.StatusOK, "application/x-msgpack", data)
}

func intParam(c echo.Context, name string, fallback int) int {
	v := c.QueryParam(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
