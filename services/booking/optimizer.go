package booking

import (
	"math"

	"go.uber.org/zap"

	"seatwise/models"
	"seatwise/utils"
)

// Search bounds. The search is deliberately greedy rather than
// exhaustive: it trades optimality for bounded run time on datasets
// with hundreds of seats.
const (
	maxSearchDepth = 10
	maxPlanLength  = 6
)

// seatAvailability pairs a seat with its extracted blocks for one
// optimization call. The underlying seat data is an immutable snapshot.
type seatAvailability struct {
	seat   models.Seat
	blocks []models.AvailabilityBlock
}

// Recommend turns raw seat availability into at most maxOptions ranked
// covering plans for [startTime, endTime). It returns a *ValidationError
// for malformed input and a *NoCoverageError when no candidate reaches
// the coverage threshold.
func (e *DefaultOptimizerEngine) Recommend(seats []models.Seat, startTime, endTime string, maxOptions int) ([]models.Recommendation, error) {
	logger := utils.GetLogger()

	windowStart, err := utils.ClockToMinutes(startTime)
	if err != nil {
		return nil, NewValidationError("invalid start time: " + err.Error())
	}
	windowEnd, err := utils.ClockToMinutes(endTime)
	if err != nil {
		return nil, NewValidationError("invalid end time: " + err.Error())
	}
	if windowStart >= windowEnd {
		return nil, NewValidationError("start time must be before end time")
	}
	if len(seats) == 0 {
		return nil, NewValidationError("no seats supplied to the optimizer")
	}
	if maxOptions <= 0 {
		maxOptions = 5
	}

	targetDuration := windowEnd - windowStart

	availability := make([]seatAvailability, 0, len(seats))
	for _, seat := range seats {
		blocks := FindAvailableBlocks(seat, windowStart, windowEnd, e.MaxBookingMinutes)
		if len(blocks) > 0 {
			availability = append(availability, seatAvailability{seat: seat, blocks: blocks})
		}
	}
	if len(availability) == 0 {
		return nil, NewNoCoverageError("no seat has availability in the requested window")
	}

	// Every (seat, block) pair seeds one greedy plan.
	var plans []models.Plan
	for _, sa := range availability {
		for _, block := range sa.blocks {
			plan := e.extendPlan(block, windowEnd, availability)
			if len(plan) > 0 {
				plans = append(plans, plan)
			}
		}
	}

	scored := e.rankPlans(plans, targetDuration, maxOptions)
	if len(scored) == 0 {
		return nil, NewNoCoverageError("no combination covers enough of the window; try a shorter window")
	}

	logger.Debug("optimizer finished",
		zap.Int("seatsWithAvailability", len(availability)),
		zap.Int("candidatePlans", len(plans)),
		zap.Int("rankedPlans", len(scored)))

	recommendations := make([]models.Recommendation, 0, len(scored))
	for _, sp := range scored {
		recommendations = append(recommendations, FormatRecommendation(sp))
	}
	return recommendations, nil
}

// extendPlan grows a plan from a seed block with a bounded greedy loop.
// At each step the cheapest forward continuation wins; extension stops
// once the window is covered, the best candidate would leave too large
// a gap, or the depth / segment bounds are hit.
func (e *DefaultOptimizerEngine) extendPlan(seed models.AvailabilityBlock, windowEnd int, availability []seatAvailability) models.Plan {
	plan := models.Plan{{
		Seat:        seed.Seat,
		StartMinute: seed.StartMinute,
		EndMinute:   seed.EndMinute,
	}}
	coveredUntil := seed.EndMinute

	for depth := 0; depth <= maxSearchDepth && len(plan) <= maxPlanLength; depth++ {
		if coveredUntil >= windowEnd {
			break
		}

		lastSeat := plan[len(plan)-1].Seat
		var best *models.Segment
		bestGap := 0
		bestScore := math.Inf(1)

		for _, sa := range availability {
			proximity := CalculateProximity(lastSeat, sa.seat)
			for _, block := range sa.blocks {
				if block.StartMinute < coveredUntil {
					continue
				}
				gap := block.StartMinute - coveredUntil
				duration := block.EndMinute - block.StartMinute

				score := float64(gap)*2 + (1-proximity)*30 - float64(duration)*0.1
				if score < bestScore {
					bestScore = score
					bestGap = gap
					best = &models.Segment{
						Seat:        sa.seat,
						StartMinute: block.StartMinute,
						EndMinute:   block.EndMinute,
					}
				}
			}
		}

		if best == nil || bestGap > e.MaxGapMinutes {
			break
		}
		plan = append(plan, *best)
		coveredUntil = best.EndMinute
	}

	return plan
}
