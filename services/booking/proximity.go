package booking

import (
	"regexp"
	"strconv"

	"seatwise/models"
)

var seatNumberPattern = regexp.MustCompile(`\d+`)

// extractSeatNumber pulls the first integer out of a seat's display
// name, e.g. "E-116" -> 116. Seats without a number map to 0.
func extractSeatNumber(name string) int {
	match := seatNumberPattern.FindString(name)
	if match == "" {
		return 0
	}
	num, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return num
}

// CalculateProximity rates how close two seats are, in [0, 1] with 1
// being the same seat. Cross-room moves score a flat 0.3; within a room
// the numeric distance of the seat labels decides. Symmetric.
func CalculateProximity(a, b models.Seat) float64 {
	if a.FloorID != b.FloorID {
		return 0.3
	}

	numA := extractSeatNumber(a.ResourceName)
	numB := extractSeatNumber(b.ResourceName)
	diff := numA - numB
	if diff < 0 {
		diff = -diff
	}

	switch {
	case diff == 0:
		return 1.0
	case diff <= 5:
		return 0.9
	case diff <= 10:
		return 0.8
	case diff <= 20:
		return 0.7
	case diff <= 50:
		return 0.6
	default:
		return 0.5
	}
}
