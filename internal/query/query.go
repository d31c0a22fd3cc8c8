// Package query implements search, filter, sort and pagination over a
// reconstructed device list. Operations are pure and composable; the
// recommended chain is Search -> Filter -> Sort -> Paginate so pagination
// always sees the final view.
package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/equip-dashboard/backend/internal/models"
	"github.com/equip-dashboard/backend/internal/parser"
)

// Sortable device fields.
const (
	FieldDeviceCode     = "deviceCode"
	FieldWorkLocation   = "workLocation"
	FieldComponentCount = "componentCount"
	FieldQuantity       = "quantity"
	FieldPower          = "power"
)

// Sort directions.
const (
	Ascending  = "asc"
	Descending = "desc"
)

// Criteria is a sparse set of field filters; zero-value entries impose no
// constraint. All provided entries combine with logical AND.
type Criteria struct {
	DeviceCode    string `json:"deviceCode,omitempty"`
	WorkLocation  string `json:"workLocation,omitempty"`
	ComponentName string `json:"componentName,omitempty"`
	ComponentSpec string `json:"componentSpec,omitempty"`
}

// Page is one pagination slice plus the totals needed by the pager widget.
type Page struct {
	Items      []models.Device `json:"items"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	TotalPages int             `json:"totalPages"`
}

// Search returns the devices matching a case-insensitive substring search
// over the device code, work location and every field of every component.
// A blank term returns the input unchanged.
func Search(devices []models.Device, term string) []models.Device {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return devices
	}

	matched := make([]models.Device, 0, len(devices))
	for i := range devices {
		if deviceMatches(&devices[i], term) {
			matched = append(matched, devices[i])
		}
	}
	return matched
}

func deviceMatches(d *models.Device, term string) bool {
	if contains(d.DeviceCode, term) || contains(d.WorkLocation, term) {
		return true
	}
	for i := range d.Components {
		c := &d.Components[i]
		if contains(c.Name, term) || contains(c.Spec, term) ||
			contains(c.Quantity, term) || contains(c.Power, term) ||
			contains(c.Remark, term) {
			return true
		}
	}
	return false
}

func contains(haystack, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), lowerNeedle)
}

// Filter keeps the devices satisfying every non-empty criterion.
// Component-level criteria match when at least one component does.
func Filter(devices []models.Device, c Criteria) []models.Device {
	if c == (Criteria{}) {
		return devices
	}

	matched := make([]models.Device, 0, len(devices))
	for i := range devices {
		d := &devices[i]
		if c.DeviceCode != "" && !contains(d.DeviceCode, strings.ToLower(c.DeviceCode)) {
			continue
		}
		if c.WorkLocation != "" && !contains(d.WorkLocation, strings.ToLower(c.WorkLocation)) {
			continue
		}
		if c.ComponentName != "" && !anyComponent(d, func(cp *models.Component) bool {
			return contains(cp.Name, strings.ToLower(c.ComponentName))
		}) {
			continue
		}
		if c.ComponentSpec != "" && !anyComponent(d, func(cp *models.Component) bool {
			return contains(cp.Spec, strings.ToLower(c.ComponentSpec))
		}) {
			continue
		}
		matched = append(matched, *d)
	}
	return matched
}

func anyComponent(d *models.Device, pred func(*models.Component) bool) bool {
	for i := range d.Components {
		if pred(&d.Components[i]) {
			return true
		}
	}
	return false
}

// Sort returns a stably sorted copy of the device list. String fields go
// through a Chinese collator so CJK text orders linguistically instead of
// by byte value; quantity and power sort by their extracted numeric value.
// Unknown fields fall back to deviceCode.
func Sort(devices []models.Device, field, direction string) []models.Device {
	sorted := make([]models.Device, len(devices))
	copy(sorted, devices)

	coll := collate.New(language.Chinese)
	less := lessFunc(coll, field)
	sort.SliceStable(sorted, func(i, j int) bool {
		if direction == Descending {
			return less(&sorted[j], &sorted[i])
		}
		return less(&sorted[i], &sorted[j])
	})
	return sorted
}

func lessFunc(coll *collate.Collator, field string) func(a, b *models.Device) bool {
	switch field {
	case FieldWorkLocation:
		return func(a, b *models.Device) bool {
			return coll.CompareString(a.WorkLocation, b.WorkLocation) < 0
		}
	case FieldComponentCount:
		return func(a, b *models.Device) bool {
			return len(a.Components) < len(b.Components)
		}
	case FieldQuantity:
		return func(a, b *models.Device) bool {
			return totalQuantity(a) < totalQuantity(b)
		}
	case FieldPower:
		return func(a, b *models.Device) bool {
			return totalPower(a) < totalPower(b)
		}
	default:
		return func(a, b *models.Device) bool {
			return coll.CompareString(a.DeviceCode, b.DeviceCode) < 0
		}
	}
}

func totalQuantity(d *models.Device) float64 {
	sum := 0.0
	for i := range d.Components {
		sum += parser.ParseNumeric(d.Components[i].Quantity)
	}
	return sum
}

func totalPower(d *models.Device) float64 {
	sum := 0.0
	for i := range d.Components {
		sum += parser.ParseNumeric(d.Components[i].Power)
	}
	return sum
}

// Paginate slices one 1-indexed page out of the device list. Pages past
// the end return an empty slice with the totals intact.
func Paginate(devices []models.Device, page, pageSize int) Page {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	total := len(devices)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start >= total {
		return Page{
			Items:      []models.Device{},
			Total:      total,
			Page:       page,
			PageSize:   pageSize,
			TotalPages: totalPages,
		}
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return Page{
		Items:      devices[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
