package models

// Statistics holds the aggregate view derived from a full device list.
// It is recomputed from scratch after every upload; nothing mutates it in
// place. Frequency table keys are the trimmed source text verbatim, so
// case and whitespace variants count separately.
type Statistics struct {
	DeviceCount       int            `json:"deviceCount"`
	ComponentCount    int            `json:"componentCount"`
	TotalPowerKW      float64        `json:"totalPowerKw"`
	DevicesByLocation map[string]int `json:"devicesByLocation"`
	ComponentsByName  map[string]int `json:"componentsByName"`
}
