package models

// SlotStatus is the occupancy of a single slot on one date.
type SlotStatus struct {
	Count     int  `json:"count"`
	Available bool `json:"available"`
}

// OccupancySnapshot maps every catalog slot label to its status for one date.
// It is derived on every query and never cached across requests.
type OccupancySnapshot map[string]SlotStatus
