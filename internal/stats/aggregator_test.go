package stats

import (
	"reflect"
	"testing"

	"github.com/equip-dashboard/backend/internal/models"
)

func testDevices() []models.Device {
	return []models.Device{
		{
			ID: 1, DeviceCode: "HC-001", WorkLocation: "Loc-A",
			Components: []models.Component{
				{ID: 1, Name: "PartX", Spec: "Spec1", Quantity: "2KW", Power: ""},
				{ID: 2, Name: "PartY", Spec: "Spec2", Power: "0.5KW"},
			},
		},
		{
			ID: 2, DeviceCode: "HC-002", WorkLocation: "Loc-B",
			Components: []models.Component{
				{ID: 3, Name: "PartZ", Spec: "Spec3", Quantity: "1", Power: ""},
			},
		},
	}
}

func TestComputeCountsAndPowerSum(t *testing.T) {
	s := Compute(testDevices())

	if s.DeviceCount != 2 {
		t.Errorf("Expected 2 devices, got %d", s.DeviceCount)
	}
	if s.ComponentCount != 3 {
		t.Errorf("Expected 3 components, got %d", s.ComponentCount)
	}
	// Only PartY's power field parses to a nonzero number.
	if s.TotalPowerKW != 0.5 {
		t.Errorf("Expected total power 0.5, got %v", s.TotalPowerKW)
	}
	if s.DevicesByLocation["Loc-A"] != 1 || s.DevicesByLocation["Loc-B"] != 1 {
		t.Errorf("Unexpected location table: %v", s.DevicesByLocation)
	}
	if s.ComponentsByName["PartX"] != 1 || s.ComponentsByName["PartY"] != 1 || s.ComponentsByName["PartZ"] != 1 {
		t.Errorf("Unexpected component table: %v", s.ComponentsByName)
	}
}

func TestComputeUncategorizedFallback(t *testing.T) {
	devices := []models.Device{
		{ID: 1, DeviceCode: "HC-001", WorkLocation: "  ",
			Components: []models.Component{{ID: 1, Name: "P"}}},
	}

	s := Compute(devices)
	if s.DevicesByLocation[Uncategorized] != 1 {
		t.Errorf("Expected blank location to bucket as %s, got %v", Uncategorized, s.DevicesByLocation)
	}
}

func TestComputeDistinctCaseKeys(t *testing.T) {
	devices := []models.Device{
		{ID: 1, DeviceCode: "A", WorkLocation: "L",
			Components: []models.Component{{ID: 1, Name: "motor"}, {ID: 2, Name: "Motor"}}},
	}

	s := Compute(devices)
	// Case variants intentionally count separately.
	if s.ComponentsByName["motor"] != 1 || s.ComponentsByName["Motor"] != 1 {
		t.Errorf("Expected case variants to stay distinct, got %v", s.ComponentsByName)
	}
}

func TestComputeIsIdempotent(t *testing.T) {
	devices := testDevices()
	first := Compute(devices)
	second := Compute(devices)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Compute is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestComputeEmptyList(t *testing.T) {
	s := Compute(nil)
	if s.DeviceCount != 0 || s.ComponentCount != 0 || s.TotalPowerKW != 0 {
		t.Errorf("Expected zeroed statistics, got %+v", s)
	}
	if len(s.DevicesByLocation) != 0 || len(s.ComponentsByName) != 0 {
		t.Errorf("Expected empty tables, got %+v", s)
	}
}
