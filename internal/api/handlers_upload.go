// handlers_upload.go - inventory file upload
package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/equip-dashboard/backend/internal/metrics"
	"github.com/equip-dashboard/backend/internal/models"
	"github.com/equip-dashboard/backend/internal/parser"
)

// uploadResponse is the success envelope of the upload endpoint. Warnings
// travel with the success response so the UI can surface them without
// blocking anything.
type uploadResponse struct {
	Dataset  models.DatasetInfo `json:"dataset"`
	Warnings []string           `json:"warnings"`
}

// HandleUploadInventory accepts one CSV inventory file (multipart field
// "file"), runs normalize -> validate -> reconstruct and replaces the
// stored dataset. Validation errors leave the previous dataset untouched.
// Only one upload may run at a time; overlapping uploads get a 409.
func (h *Handler) HandleUploadInventory(c echo.Context) error {
	start := time.Now()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return NewBadRequestError("no file provided", err)
	}

	if !h.mgr.BeginImport() {
		metrics.ObserveUpload(metrics.ResultBusy, 0, time.Since(start))
		return NewConflictError("另一个文件正在导入中，请稍候")
	}
	defer h.mgr.EndImport()

	src, err := fileHeader.Open()
	if err != nil {
		metrics.ObserveUpload(metrics.ResultError, 0, time.Since(start))
		return NewInternalError("failed to open uploaded file", err)
	}
	defer src.Close()

	rows, err := parser.Normalize(src)
	if err != nil {
		metrics.ObserveUpload(metrics.ResultParseError, 0, time.Since(start))
		return NewParseError(err)
	}

	result := parser.Validate(rows)
	if !result.IsValid {
		log.WithField("file", fileHeader.Filename).
			WithField("errors", result.Errors).
			Warn("inventory upload rejected by validation")
		metrics.ObserveUpload(metrics.ResultInvalid, len(rows), time.Since(start))
		return NewValidationFailedError(result.Errors)
	}

	ds := &models.Dataset{
		ID:         uuid.New().String(),
		FileName:   fileHeader.Filename,
		UploadedAt: time.Now(),
		Devices:    parser.Reconstruct(rows),
	}
	if err := h.mgr.Replace(ds); err != nil {
		metrics.ObserveUpload(metrics.ResultError, len(rows), time.Since(start))
		return NewInternalError("failed to store dataset", err)
	}

	metrics.ObserveUpload(metrics.ResultSuccess, len(rows), time.Since(start))
	return c.JSON(http.StatusCreated, uploadResponse{
		Dataset:  ds.Info(),
		Warnings: result.Warnings,
	})
}
