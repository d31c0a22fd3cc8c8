package query

import (
	"reflect"
	"testing"

	"github.com/equip-dashboard/backend/internal/models"
)

func testDevices() []models.Device {
	return []models.Device{
		{
			ID: 1, DeviceCode: "HC-001", WorkLocation: "一号泵房",
			Components: []models.Component{
				{ID: 1, Name: "电机", Spec: "Y2-132", Quantity: "1台", Power: "5.5KW", Remark: "主驱动"},
			},
		},
		{
			ID: 2, DeviceCode: "XY-002", WorkLocation: "二号车间",
			Components: []models.Component{
				{ID: 2, Name: "水泵", Spec: "ISG80", Quantity: "2台", Power: "3KW"},
				{ID: 3, Name: "皮带", Spec: "B800", Quantity: "150米"},
			},
		},
		{ID: 3, DeviceCode: "HC-003", WorkLocation: "一号泵房"},
	}
}

func TestSearchMatchesDeviceAndComponentFields(t *testing.T) {
	devices := testDevices()

	tests := []struct {
		term string
		want []int // expected device ids, in order
	}{
		{"hc-0", []int{1, 3}},       // device code, case-insensitive
		{"泵房", []int{1, 3}},         // work location
		{"皮带", []int{2}},            // component name
		{"isg", []int{2}},           // component spec
		{"150米", []int{2}},          // component quantity text
		{"5.5", []int{1}},           // component power text
		{"主驱动", []int{1}},           // component remark
		{"", []int{1, 2, 3}},        // blank term is a no-op
		{"   ", []int{1, 2, 3}},     // whitespace-only term too
		{"nothing", []int{}},        // no match
	}

	for _, tt := range tests {
		got := Search(devices, tt.term)
		ids := deviceIDs(got)
		if !reflect.DeepEqual(ids, tt.want) {
			t.Errorf("Search(%q) = %v, want %v", tt.term, ids, tt.want)
		}
	}
}

func TestSearchEmptyTermReturnsInputUnchanged(t *testing.T) {
	devices := testDevices()
	got := Search(devices, "")
	if !reflect.DeepEqual(got, devices) {
		t.Error("Blank search must return the identical list")
	}
}

func TestFilterCriteria(t *testing.T) {
	devices := testDevices()

	tests := []struct {
		name string
		c    Criteria
		want []int
	}{
		{"device code substring", Criteria{DeviceCode: "HC-0"}, []int{1, 3}},
		{"location", Criteria{WorkLocation: "车间"}, []int{2}},
		{"component name", Criteria{ComponentName: "水泵"}, []int{2}},
		{"component spec", Criteria{ComponentSpec: "y2"}, []int{1}},
		{"AND semantics", Criteria{DeviceCode: "HC", ComponentName: "电机"}, []int{1}},
		{"AND excludes", Criteria{DeviceCode: "XY", ComponentName: "电机"}, []int{}},
		{"empty criteria", Criteria{}, []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := deviceIDs(Filter(devices, tt.c))
			if !reflect.DeepEqual(ids, tt.want) {
				t.Errorf("Filter(%+v) = %v, want %v", tt.c, ids, tt.want)
			}
		})
	}
}

func TestSortByDeviceCode(t *testing.T) {
	devices := testDevices()

	asc := Sort(devices, FieldDeviceCode, Ascending)
	if ids := deviceIDs(asc); !reflect.DeepEqual(ids, []int{1, 3, 2}) {
		t.Errorf("Ascending sort = %v, want [1 3 2]", ids)
	}

	desc := Sort(devices, FieldDeviceCode, Descending)
	if ids := deviceIDs(desc); !reflect.DeepEqual(ids, []int{2, 3, 1}) {
		t.Errorf("Descending sort = %v, want [2 3 1]", ids)
	}

	// Input order untouched.
	if ids := deviceIDs(devices); !reflect.DeepEqual(ids, []int{1, 2, 3}) {
		t.Errorf("Sort mutated its input: %v", ids)
	}
}

func TestSortByPowerParsesUnits(t *testing.T) {
	// Device 1 totals 5.5, device 2 totals 3, device 3 totals 0.
	sorted := Sort(testDevices(), FieldPower, Ascending)
	if ids := deviceIDs(sorted); !reflect.DeepEqual(ids, []int{3, 2, 1}) {
		t.Errorf("Power sort = %v, want [3 2 1]", ids)
	}
}

func TestSortIsStable(t *testing.T) {
	devices := []models.Device{
		{ID: 1, DeviceCode: "A", WorkLocation: "same"},
		{ID: 2, DeviceCode: "B", WorkLocation: "same"},
		{ID: 3, DeviceCode: "C", WorkLocation: "same"},
	}
	sorted := Sort(devices, FieldWorkLocation, Ascending)
	if ids := deviceIDs(sorted); !reflect.DeepEqual(ids, []int{1, 2, 3}) {
		t.Errorf("Equal keys must keep input order, got %v", ids)
	}
}

func TestPaginate(t *testing.T) {
	devices := testDevices()

	p := Paginate(devices, 1, 2)
	if p.Total != 3 || p.TotalPages != 2 || len(p.Items) != 2 {
		t.Errorf("Unexpected first page: %+v", p)
	}

	p = Paginate(devices, 2, 2)
	if len(p.Items) != 1 || p.Items[0].ID != 3 {
		t.Errorf("Unexpected second page: %+v", p)
	}

	// Past the end: empty slice, totals intact.
	p = Paginate(devices, 9, 2)
	if len(p.Items) != 0 || p.Total != 3 || p.TotalPages != 2 {
		t.Errorf("Unexpected out-of-range page: %+v", p)
	}

	p = Paginate(nil, 1, 10)
	if p.Total != 0 || p.TotalPages != 0 || len(p.Items) != 0 {
		t.Errorf("Unexpected empty-list page: %+v", p)
	}
}

func deviceIDs(devices []models.Device) []int {
	ids := make([]int, 0, len(devices))
	for i := range devices {
		ids = append(ids, devices[i].ID)
	}
	return ids
}
