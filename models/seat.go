package models

// SlotRecord is one 30-minute availability granule as reported by the
// upstream service. A PlacesAvailable of 0 means the slot is taken.
type SlotRecord struct {
	Hour            string `json:"hour"` // clock label, e.g. "09:30"
	PlacesAvailable int    `json:"places_available"`
}

// Seat is an immutable snapshot of one bookable resource for a given date.
// The optimizer treats it as read-only and re-sorts Hours before use.
type Seat struct {
	ResourceID   string       `json:"resource_id"`
	ResourceName string       `json:"resource_name"`
	Description  string       `json:"description,omitempty"`
	FloorID      string       `json:"floor_id,omitempty"`
	FloorName    string       `json:"floor_name,omitempty"`
	Hours        []SlotRecord `json:"hours"`
}

// Floor is a room/floor grouping of seats within a library.
type Floor struct {
	ResourceType         string `json:"resource_type"`
	LocalizedDescription string `json:"localized_description"`
	SeatCount            int    `json:"seat_count,omitempty"`
}

// Library is a bookable site exposed by the upstream directory. The
// directory names sites under "primary_name"; records missing either
// field are dropped by the client.
type Library struct {
	ID   string `json:"id"`
	Name string `json:"primary_name"`
}
