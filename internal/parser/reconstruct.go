package parser

import (
	"strings"

	"github.com/equip-dashboard/backend/internal/models"
)

// Reconstruct decodes the merged-cell inheritance encoding: a device code
// and its work location are written once, and every following row with a
// blank device-code cell keeps describing that device until the next
// non-blank code. Row order is preserved in the device list and in each
// device's component list.
//
// Safe on unvalidated input: missing cells default to empty strings and a
// component row before any device row is silently dropped.
func Reconstruct(rows []FlatRow) []models.Device {
	devices := make([]models.Device, 0)
	componentID := 0

	var open *models.Device
	for _, row := range rows {
		code := strings.TrimSpace(row[ColDeviceCode])
		if code != "" {
			if open != nil {
				devices = append(devices, *open)
			}
			open = &models.Device{
				ID:           len(devices) + 1,
				DeviceCode:   code,
				WorkLocation: strings.TrimSpace(row[ColWorkLocation]),
				Components:   make([]models.Component, 0),
			}
		}

		name := strings.TrimSpace(row[ColComponent])
		if name == "" {
			continue
		}
		if open == nil {
			// Component row ahead of any device row: drop it.
			continue
		}
		componentID++
		open.Components = append(open.Components, models.Component{
			ID:       componentID,
			Name:     name,
			Spec:     strings.TrimSpace(row[ColSpec]),
			Quantity: strings.TrimSpace(row[ColQuantity]),
			Power:    strings.TrimSpace(row[ColPower]),
			Remark:   strings.TrimSpace(row[ColRemark]),
		})
	}
	if open != nil {
		devices = append(devices, *open)
	}
	return devices
}
