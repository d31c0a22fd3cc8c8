// Package stats derives the dashboard aggregates from a full device list.
package stats

import (
	"strings"

	"github.com/equip-dashboard/backend/internal/models"
	"github.com/equip-dashboard/backend/internal/parser"
)

// Uncategorized is the frequency-table bucket for blank group keys.
const Uncategorized = "未分类"

// Compute recomputes every aggregate from scratch. The dataset is small
// enough after a single upload that full recomputation beats incremental
// bookkeeping; revisit if uploads ever grow past tens of thousands of rows.
func Compute(devices []models.Device) models.Statistics {
	s := models.Statistics{
		DeviceCount:       len(devices),
		DevicesByLocation: make(map[string]int),
		ComponentsByName:  make(map[string]int),
	}

	for i := range devices {
		d := &devices[i]
		s.DevicesByLocation[groupKey(d.WorkLocation)]++
		for j := range d.Components {
			c := &d.Components[j]
			s.ComponentCount++
			s.TotalPowerKW += parser.ParseNumeric(c.Power)
			s.ComponentsByName[groupKey(c.Name)]++
		}
	}
	return s
}

// groupKey uses the trimmed text verbatim; case and whitespace variants
// stay distinct buckets (known limitation of the source data model).
func groupKey(text string) string {
	key := strings.TrimSpace(text)
	if key == "" {
		return Uncategorized
	}
	return key
}
