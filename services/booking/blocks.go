package booking

import (
	"sort"

	"seatwise/models"
	"seatwise/utils"
)

// SlotMinutes is the upstream service's availability granularity.
const SlotMinutes = 30

// FindAvailableBlocks sweeps a seat's slot list and returns the
// contiguous bookable intervals overlapping [windowStart, windowEnd),
// each capped at maxMinutes. The slot list is sorted here; no input
// order is assumed. A seat with no usable slots yields nil.
func FindAvailableBlocks(seat models.Seat, windowStart, windowEnd, maxMinutes int) []models.AvailabilityBlock {
	sorted := make([]models.SlotRecord, len(seat.Hours))
	copy(sorted, seat.Hours)
	sort.Slice(sorted, func(i, j int) bool {
		a, errA := utils.ClockToMinutes(sorted[i].Hour)
		b, errB := utils.ClockToMinutes(sorted[j].Hour)
		if errA != nil || errB != nil {
			return errB != nil && errA == nil
		}
		return a < b
	})

	var blocks []models.AvailabilityBlock
	rawStart, rawEnd := -1, -1

	flush := func() {
		if rawStart < 0 {
			return
		}
		for _, chunk := range splitIntoMaxChunks(rawStart, rawEnd, maxMinutes) {
			blocks = append(blocks, models.AvailabilityBlock{
				Seat:        seat,
				StartMinute: chunk[0],
				EndMinute:   chunk[1],
			})
		}
		rawStart, rawEnd = -1, -1
	}

	for _, slot := range sorted {
		slotStart, err := utils.ClockToMinutes(slot.Hour)
		if err != nil {
			continue
		}
		slotEnd := slotStart + SlotMinutes

		// Slots wholly outside the window neither open nor close a run.
		if slotEnd <= windowStart || slotStart >= windowEnd {
			continue
		}
		if slot.PlacesAvailable == 0 {
			flush()
			continue
		}

		clippedStart := max(slotStart, windowStart)
		clippedEnd := min(slotEnd, windowEnd)

		if rawStart >= 0 && clippedStart == rawEnd {
			rawEnd = clippedEnd
			continue
		}
		// A usable slot that does not abut the current run closes it.
		flush()
		rawStart, rawEnd = clippedStart, clippedEnd
	}
	flush()

	return blocks
}

// splitIntoMaxChunks splits [start, end) into consecutive chunks of
// exactly maxMinutes, with a possibly shorter final chunk. The upstream
// service rejects reservations longer than the cap, so long runs must
// be booked as several back-to-back reservations.
func splitIntoMaxChunks(start, end, maxMinutes int) [][2]int {
	var chunks [][2]int
	for current := start; current < end; {
		chunkEnd := min(current+maxMinutes, end)
		chunks = append(chunks, [2]int{current, chunkEnd})
		current = chunkEnd
	}
	return chunks
}
