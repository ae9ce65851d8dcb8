package booking

import (
	"strings"

	"seatwise/models"
)

// reservedKeywords mark seats that are administratively held and must
// not be offered to the optimizer, whatever their reported capacity.
var reservedKeywords = []string{"riservat", "reserved"}

// IsReservedSeat reports whether a seat's description flags it as
// reserved for someone else.
func IsReservedSeat(seat models.Seat) bool {
	if seat.Description == "" {
		return false
	}
	description := strings.ToLower(seat.Description)
	for _, keyword := range reservedKeywords {
		if strings.Contains(description, keyword) {
			return true
		}
	}
	return false
}

// FilterBookable drops reserved seats from a snapshot.
func FilterBookable(seats []models.Seat) []models.Seat {
	bookable := make([]models.Seat, 0, len(seats))
	for _, seat := range seats {
		if !IsReservedSeat(seat) {
			bookable = append(bookable, seat)
		}
	}
	return bookable
}
