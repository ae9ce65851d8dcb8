package booking

import (
	"math"
	"sort"

	"seatwise/models"
	"seatwise/utils"
)

// ScoringWeights are the empirically chosen ranking constants. Lower
// plan scores are better.
type ScoringWeights struct {
	PerSegment       float64 // penalty per booking in the plan
	PerMissingMinute float64 // penalty per uncovered target minute
	PerSeatChange    float64 // scaled by (1 - proximity) per transition
	ShortSegment     float64 // penalty per minute under an hour
	IdealMeanBonus   float64 // bonus when mean duration sits in [120, 240]
}

func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		PerSegment:       100,
		PerMissingMinute: 5,
		PerSeatChange:    50,
		ShortSegment:     0.5,
		IdealMeanBonus:   30,
	}
}

// scorePlan applies the ranking formula to one candidate plan.
func (e *DefaultOptimizerEngine) scorePlan(plan models.Plan, targetDuration int) float64 {
	w := e.Weights
	score := w.PerSegment * float64(len(plan))

	covered := coveredMinutes(plan)
	score += w.PerMissingMinute * math.Max(0, float64(targetDuration-covered))

	for i := 1; i < len(plan); i++ {
		proximity := CalculateProximity(plan[i-1].Seat, plan[i].Seat)
		score += w.PerSeatChange * (1 - proximity)
	}

	// Very short bookings are annoying to sit through; cap-length
	// chunks are ideal and attract no penalty.
	for _, seg := range plan {
		duration := seg.EndMinute - seg.StartMinute
		if duration < 60 {
			score += w.ShortSegment * float64(60-duration)
		}
	}

	meanDuration := float64(covered) / float64(len(plan))
	if meanDuration >= 120 && meanDuration <= 240 {
		score -= w.IdealMeanBonus
	}

	return score
}

// rankPlans scores every candidate, drops those under the coverage
// threshold, and returns the best maxOptions in ascending score order.
func (e *DefaultOptimizerEngine) rankPlans(plans []models.Plan, targetDuration, maxOptions int) []models.ScoredPlan {
	scored := make([]models.ScoredPlan, 0, len(plans))
	for _, plan := range plans {
		if len(plan) == 0 {
			continue
		}
		covered := coveredMinutes(plan)
		coverage := float64(covered) / float64(targetDuration) * 100
		if coverage < e.CoverageMinPercent {
			continue
		}
		scored = append(scored, models.ScoredPlan{
			Plan:            plan,
			Score:           e.scorePlan(plan, targetDuration),
			CoveredMinutes:  covered,
			CoveragePercent: coverage,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score < scored[j].Score
	})

	if len(scored) > maxOptions {
		scored = scored[:maxOptions]
	}
	return scored
}

func coveredMinutes(plan models.Plan) int {
	total := 0
	for _, seg := range plan {
		total += seg.EndMinute - seg.StartMinute
	}
	return total
}

// FormatRecommendation converts a scored plan into the client-facing
// shape: clock-time segments plus totals. Seat changes count only
// transitions where the resource identifier actually changes; a plan
// may revisit a seat across non-adjacent segments without it counting.
func FormatRecommendation(sp models.ScoredPlan) models.Recommendation {
	segments := make([]models.RecommendationSegment, 0, len(sp.Plan))
	for _, seg := range sp.Plan {
		floorName := seg.Seat.FloorName
		if floorName == "" {
			floorName = "Room"
		}
		segments = append(segments, models.RecommendationSegment{
			SeatID:    seg.Seat.ResourceID,
			SeatName:  seg.Seat.ResourceName,
			FloorName: floorName,
			StartTime: utils.MinutesToClock(seg.StartMinute),
			EndTime:   utils.MinutesToClock(seg.EndMinute),
			Duration:  seg.EndMinute - seg.StartMinute,
		})
	}

	seatChanges := 0
	for i := 1; i < len(sp.Plan); i++ {
		if sp.Plan[i].Seat.ResourceID != sp.Plan[i-1].Seat.ResourceID {
			seatChanges++
		}
	}

	return models.Recommendation{
		Segments:        segments,
		TotalBookings:   len(sp.Plan),
		TotalDuration:   sp.CoveredMinutes,
		CoveragePercent: int(math.Round(sp.CoveragePercent)),
		SeatChanges:     seatChanges,
	}
}
