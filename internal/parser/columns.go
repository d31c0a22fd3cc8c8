// Package parser turns raw inventory CSV bytes into reconstructed device
// records: normalize rows, validate structure, then decode the merged-cell
// inheritance encoding into devices with nested components.
package parser

// Canonical column headers of the inventory sheet. The file may order them
// freely but all seven must be present.
const (
	ColDeviceCode   = "设备编号"
	ColWorkLocation = "安装位置"
	ColComponent    = "部件名称"
	ColSpec         = "规格型号"
	ColQuantity     = "数量及长度"
	ColPower        = "电机功率"
	ColRemark       = "备注"
)

// RequiredColumns lists the seven canonical headers in report order.
func RequiredColumns() []string {
	return []string{
		ColDeviceCode,
		ColWorkLocation,
		ColComponent,
		ColSpec,
		ColQuantity,
		ColPower,
		ColRemark,
	}
}

// FlatRow is one physical row keyed by canonical column name. Blank cells
// are empty strings; no numeric coercion happens at this stage. Rows are
// transient and discarded once reconstruction finishes.
type FlatRow map[string]string
