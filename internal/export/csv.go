// Package export re-serializes the reconstructed dataset: the seven-column
// CSV shape the file arrived in, and a plain-text statistics report.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/equip-dashboard/backend/internal/models"
	"github.com/equip-dashboard/backend/internal/parser"
)

// WriteCSV writes the device list back in the source sheet's shape: one
// row per component, with the device code and work location populated only
// on a device's first row (the inverse of the inheritance decode). Devices
// without components still emit one row so they survive a round trip.
func WriteCSV(w io.Writer, devices []models.Device) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(parser.RequiredColumns()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i := range devices {
		d := &devices[i]
		if len(d.Components) == 0 {
			if err := cw.Write([]string{d.DeviceCode, d.WorkLocation, "", "", "", "", ""}); err != nil {
				return fmt.Errorf("writing device row: %w", err)
			}
			continue
		}
		for j := range d.Components {
			c := &d.Components[j]
			code, location := "", ""
			if j == 0 {
				code, location = d.DeviceCode, d.WorkLocation
			}
			row := []string{code, location, c.Name, c.Spec, c.Quantity, c.Power, c.Remark}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing component row: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
