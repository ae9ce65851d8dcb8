package booking

import "seatwise/models"

// OptimizerEngine computes ranked multi-seat plans covering a target
// time window from raw per-seat availability.
type OptimizerEngine interface {
	Recommend(seats []models.Seat, startTime, endTime string, maxOptions int) ([]models.Recommendation, error)
}

// DefaultOptimizerEngine is the production implementation. All knobs
// come from configuration; zero values fall back to the built-in
// defaults at construction.
type DefaultOptimizerEngine struct {
	MaxBookingMinutes  int     // hard per-reservation duration cap
	MaxGapMinutes      int     // largest tolerated idle gap between segments
	CoverageMinPercent float64 // plans below this coverage are discarded
	Weights            ScoringWeights
}

// NewDefaultOptimizerEngine fills unset tuning fields with defaults.
func NewDefaultOptimizerEngine(maxBookingMinutes, maxGapMinutes int, coverageMinPercent float64) *DefaultOptimizerEngine {
	if maxBookingMinutes <= 0 {
		maxBookingMinutes = 240
	}
	if maxGapMinutes <= 0 {
		maxGapMinutes = 60
	}
	if coverageMinPercent <= 0 {
		coverageMinPercent = 80
	}
	return &DefaultOptimizerEngine{
		MaxBookingMinutes:  maxBookingMinutes,
		MaxGapMinutes:      maxGapMinutes,
		CoverageMinPercent: coverageMinPercent,
		Weights:            DefaultScoringWeights(),
	}
}
