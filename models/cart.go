package models

// CartItem is one atomic 30-minute slot selected by the user.
type CartItem struct {
	ID        string `json:"id"`
	SeatID    string `json:"seatId" binding:"required"`
	SeatName  string `json:"seatName" binding:"required"`
	Date      string `json:"date" binding:"required"` // "2006-01-02"
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
	Email     string `json:"email,omitempty"`
}

// ConsolidatedBooking is a maximal run of contiguous cart items on the
// same seat and date, merged into a single legal reservation. Derived
// state: recomputed whenever the cart changes, never stored.
type ConsolidatedBooking struct {
	SeatID          string   `json:"seatId"`
	SeatName        string   `json:"seatName"`
	Date            string   `json:"date"`
	StartTime       string   `json:"startTime"`
	EndTime         string   `json:"endTime"`
	DurationMinutes int      `json:"durationMinutes"`
	Email           string   `json:"email,omitempty"`
	SourceSlotIDs   []string `json:"sourceSlotIds"`
}
