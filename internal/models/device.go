// Package models contains domain types for the equipment inventory dashboard.
package models

// Component represents one part installed on a device.
// Quantity and Power keep the raw spreadsheet text (units included) so the
// source survives export unchanged; numeric views are derived elsewhere.
type Component struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Spec     string `json:"spec"`
	Quantity string `json:"quantity"` // raw text, may embed units ("2件", "150米")
	Power    string `json:"power"`    // raw text, may embed a unit suffix ("5.5KW")
	Remark   string `json:"remark"`
}

// Device represents one physical machine reconstructed from the inventory
// sheet. Identity is positional: ids are assigned in upload order and two
// non-contiguous rows with the same device code stay distinct devices.
type Device struct {
	ID           int         `json:"id"`
	DeviceCode   string      `json:"deviceCode"`
	WorkLocation string      `json:"workLocation"`
	Components   []Component `json:"components"`
}
