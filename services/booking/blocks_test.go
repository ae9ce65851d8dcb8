package booking

import (
	"testing"

	"seatwise/models"
	"seatwise/utils"
)

// seatWithHours builds a seat whose 30-minute slots run from first to
// last inclusive, all with the given capacity.
func seatWithHours(id, name, floor string, firstMinute, lastMinute, capacity int) models.Seat {
	var hours []models.SlotRecord
	for m := firstMinute; m <= lastMinute; m += SlotMinutes {
		hours = append(hours, models.SlotRecord{Hour: utils.MinutesToClock(m), PlacesAvailable: capacity})
	}
	return models.Seat{ResourceID: id, ResourceName: name, FloorID: floor, Hours: hours}
}

func TestFindAvailableBlocks_NoUsableSlots(t *testing.T) {
	seat := seatWithHours("s1", "E-101", "f1", 9*60, 12*60, 0)
	blocks := FindAvailableBlocks(seat, 9*60, 17*60, 240)
	if len(blocks) != 0 {
		t.Fatalf("expected no blocks for fully occupied seat, got %d", len(blocks))
	}
}

func TestFindAvailableBlocks_SingleSlot(t *testing.T) {
	seat := models.Seat{ResourceID: "s1", Hours: []models.SlotRecord{{Hour: "10:00", PlacesAvailable: 1}}}
	blocks := FindAvailableBlocks(seat, 9*60, 17*60, 240)
	if len(blocks) != 1 {
		t.Fatalf("expected one block, got %d", len(blocks))
	}
	if got := blocks[0].EndMinute - blocks[0].StartMinute; got != 30 {
		t.Fatalf("expected a 30-minute block, got %d", got)
	}
}

func TestFindAvailableBlocks_ShortRunStaysWhole(t *testing.T) {
	// 09:00-12:30 available (210 min) inside a 09:00-17:00 window: one block.
	seat := seatWithHours("s1", "E-101", "f1", 9*60, 12*60, 1)
	blocks := FindAvailableBlocks(seat, 9*60, 17*60, 240)
	if len(blocks) != 1 {
		t.Fatalf("expected one block, got %d", len(blocks))
	}
	if blocks[0].StartMinute != 9*60 || blocks[0].EndMinute != 12*60+30 {
		t.Fatalf("unexpected block [%d, %d]", blocks[0].StartMinute, blocks[0].EndMinute)
	}
}

func TestFindAvailableBlocks_SplitsAtCap(t *testing.T) {
	// 09:00-17:00 fully available (480 min) with a 240-minute cap:
	// exactly two cap-length chunks.
	seat := seatWithHours("s1", "E-101", "f1", 9*60, 16*60+30, 1)
	blocks := FindAvailableBlocks(seat, 9*60, 17*60, 240)
	if len(blocks) != 2 {
		t.Fatalf("expected two blocks, got %d", len(blocks))
	}
	if blocks[0].StartMinute != 9*60 || blocks[0].EndMinute != 13*60 {
		t.Fatalf("unexpected first block [%d, %d]", blocks[0].StartMinute, blocks[0].EndMinute)
	}
	if blocks[1].StartMinute != 13*60 || blocks[1].EndMinute != 17*60 {
		t.Fatalf("unexpected second block [%d, %d]", blocks[1].StartMinute, blocks[1].EndMinute)
	}
}

func TestFindAvailableBlocks_CapInvariant(t *testing.T) {
	seat := seatWithHours("s1", "E-101", "f1", 8*60, 19*60+30, 1)
	for _, maxMinutes := range []int{60, 90, 240} {
		for _, block := range FindAvailableBlocks(seat, 8*60, 20*60, maxMinutes) {
			if d := block.EndMinute - block.StartMinute; d > maxMinutes {
				t.Fatalf("block of %d minutes exceeds cap %d", d, maxMinutes)
			}
		}
	}
}

func TestFindAvailableBlocks_OccupiedSlotSplitsRuns(t *testing.T) {
	seat := models.Seat{ResourceID: "s1", Hours: []models.SlotRecord{
		{Hour: "09:00", PlacesAvailable: 1},
		{Hour: "09:30", PlacesAvailable: 1},
		{Hour: "10:00", PlacesAvailable: 0},
		{Hour: "10:30", PlacesAvailable: 1},
	}}
	blocks := FindAvailableBlocks(seat, 9*60, 17*60, 240)
	if len(blocks) != 2 {
		t.Fatalf("expected two blocks around the occupied slot, got %d", len(blocks))
	}
	if blocks[0].StartMinute != 9*60 || blocks[0].EndMinute != 10*60 {
		t.Fatalf("unexpected first block [%d, %d]", blocks[0].StartMinute, blocks[0].EndMinute)
	}
	if blocks[1].StartMinute != 10*60+30 || blocks[1].EndMinute != 11*60 {
		t.Fatalf("unexpected second block [%d, %d]", blocks[1].StartMinute, blocks[1].EndMinute)
	}
}

func TestFindAvailableBlocks_UnsortedInput(t *testing.T) {
	seat := models.Seat{ResourceID: "s1", Hours: []models.SlotRecord{
		{Hour: "10:00", PlacesAvailable: 1},
		{Hour: "09:00", PlacesAvailable: 1},
		{Hour: "09:30", PlacesAvailable: 1},
	}}
	blocks := FindAvailableBlocks(seat, 9*60, 17*60, 240)
	if len(blocks) != 1 {
		t.Fatalf("expected one contiguous block after sorting, got %d", len(blocks))
	}
	if blocks[0].StartMinute != 9*60 || blocks[0].EndMinute != 10*60+30 {
		t.Fatalf("unexpected block [%d, %d]", blocks[0].StartMinute, blocks[0].EndMinute)
	}
}

func TestFindAvailableBlocks_ClipsToWindow(t *testing.T) {
	seat := seatWithHours("s1", "E-101", "f1", 8*60, 18*60, 1)
	blocks := FindAvailableBlocks(seat, 9*60, 10*60, 240)
	if len(blocks) != 1 {
		t.Fatalf("expected one block, got %d", len(blocks))
	}
	if blocks[0].StartMinute != 9*60 || blocks[0].EndMinute != 10*60 {
		t.Fatalf("block not clipped to window: [%d, %d]", blocks[0].StartMinute, blocks[0].EndMinute)
	}
}
