package cart

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"seatwise/models"
	"seatwise/utils"
)

// CartService manages the user's slot selection for the current
// session. It is the only mutable shared state in the engine, so all
// mutations serialize behind one lock.
type CartService interface {
	Add(item models.CartItem) (models.CartItem, bool)
	Remove(id string) bool
	Clear()
	Items() []models.CartItem
	Consolidated() []models.ConsolidatedBooking
}

// DefaultCartService is the in-memory implementation. Nothing survives
// a restart: the cart lives and dies with the session.
type DefaultCartService struct {
	mu                sync.Mutex
	items             []models.CartItem
	maxBookingMinutes int
}

func NewDefaultCartService(maxBookingMinutes int) *DefaultCartService {
	if maxBookingMinutes <= 0 {
		maxBookingMinutes = 240
	}
	return &DefaultCartService{maxBookingMinutes: maxBookingMinutes}
}

// Add stores a slot selection, assigning it an id. Selecting the exact
// same slot twice is a no-op; the existing item is returned with false.
func (s *DefaultCartService) Add(item models.CartItem) (models.CartItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.items {
		if existing.SeatID == item.SeatID &&
			existing.Date == item.Date &&
			existing.StartTime == item.StartTime &&
			existing.EndTime == item.EndTime {
			return existing, false
		}
	}

	item.ID = uuid.New().String()
	s.items = append(s.items, item)
	return item, true
}

// Remove deletes one item by id.
func (s *DefaultCartService) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the cart, typically after a fully successful run.
func (s *DefaultCartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Items returns a copy of the current selection.
func (s *DefaultCartService) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// Consolidated merges the selection into the fewest legal bookings:
// per (seat, date) group, strictly contiguous slots chain together
// while the merged duration stays within the cap. Every cart item lands
// in exactly one booking; consolidation never drops a selection.
func (s *DefaultCartService) Consolidated() []models.ConsolidatedBooking {
	return ConsolidateItems(s.Items(), s.maxBookingMinutes)
}

type slotGroup struct {
	key   string
	items []models.CartItem
}

// ConsolidateItems is the pure consolidation step, exposed for ad-hoc
// booking lists that never went through the cart.
func ConsolidateItems(items []models.CartItem, maxBookingMinutes int) []models.ConsolidatedBooking {
	if maxBookingMinutes <= 0 {
		maxBookingMinutes = 240
	}

	grouped := map[string]*slotGroup{}
	var order []string
	for _, item := range items {
		key := item.SeatID + "_" + item.Date
		group, ok := grouped[key]
		if !ok {
			group = &slotGroup{key: key}
			grouped[key] = group
			order = append(order, key)
		}
		group.items = append(group.items, item)
	}
	sort.Strings(order)

	var bookings []models.ConsolidatedBooking
	for _, key := range order {
		group := grouped[key]
		sort.SliceStable(group.items, func(i, j int) bool {
			return group.items[i].StartTime < group.items[j].StartTime
		})

		var chunk []models.CartItem
		chunkDuration := 0

		emit := func() {
			if len(chunk) == 0 {
				return
			}
			first, last := chunk[0], chunk[len(chunk)-1]
			ids := make([]string, 0, len(chunk))
			for _, item := range chunk {
				ids = append(ids, item.ID)
			}
			bookings = append(bookings, models.ConsolidatedBooking{
				SeatID:          first.SeatID,
				SeatName:        first.SeatName,
				Date:            first.Date,
				StartTime:       first.StartTime,
				EndTime:         last.EndTime,
				DurationMinutes: chunkDuration,
				Email:           first.Email,
				SourceSlotIDs:   ids,
			})
			chunk = nil
			chunkDuration = 0
		}

		for _, item := range group.items {
			duration := slotDuration(item)

			if len(chunk) > 0 {
				last := chunk[len(chunk)-1]
				contiguous := item.StartTime == last.EndTime
				if contiguous && chunkDuration+duration <= maxBookingMinutes {
					chunk = append(chunk, item)
					chunkDuration += duration
					continue
				}
				emit()
			}
			chunk = append(chunk, item)
			chunkDuration = duration
		}
		emit()
	}

	return bookings
}

func slotDuration(item models.CartItem) int {
	start, errStart := utils.ClockToMinutes(item.StartTime)
	end, errEnd := utils.ClockToMinutes(item.EndTime)
	if errStart != nil || errEnd != nil || end <= start {
		return 0
	}
	return end - start
}
