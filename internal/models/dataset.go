package models

import "time"

// Dataset is one complete upload: the reconstructed device list plus the
// metadata every downstream view reads back. A new upload replaces the
// whole dataset; there is no incremental merge.
type Dataset struct {
	ID         string    `json:"id"`
	FileName   string    `json:"fileName"`
	UploadedAt time.Time `json:"uploadedAt"`
	Devices    []Device  `json:"devices"`
}

// ComponentCount returns the total number of components across all devices.
func (d *Dataset) ComponentCount() int {
	n := 0
	for i := range d.Devices {
		n += len(d.Devices[i].Components)
	}
	return n
}

// DatasetInfo is the metadata-only view of a Dataset for list/status
// responses that must not carry the full device payload.
type DatasetInfo struct {
	ID             string    `json:"id"`
	FileName       string    `json:"fileName"`
	UploadedAt     time.Time `json:"uploadedAt"`
	DeviceCount    int       `json:"deviceCount"`
	ComponentCount int       `json:"componentCount"`
}

// Info derives the metadata view.
func (d *Dataset) Info() DatasetInfo {
	return DatasetInfo{
		ID:             d.ID,
		FileName:       d.FileName,
		UploadedAt:     d.UploadedAt,
		DeviceCount:    len(d.Devices),
		ComponentCount: d.ComponentCount(),
	}
}
