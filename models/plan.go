package models

// AvailabilityBlock is a contiguous bookable interval on one seat,
// already capped at the maximum single-booking duration. Blocks are
// ephemeral: recomputed on every optimization call.
type AvailabilityBlock struct {
	Seat        Seat `json:"seat"`
	StartMinute int  `json:"startMinute"`
	EndMinute   int  `json:"endMinute"`
}

// Segment is one leg of a covering plan: sit at Seat from StartMinute
// to EndMinute.
type Segment struct {
	Seat        Seat `json:"seat"`
	StartMinute int  `json:"startMinute"`
	EndMinute   int  `json:"endMinute"`
}

// Plan is an ordered (by start time) sequence of segments proposed to
// cover a target window.
type Plan []Segment

// ScoredPlan couples a candidate plan with its ranking score.
// Lower scores are better.
type ScoredPlan struct {
	Plan            Plan    `json:"plan"`
	Score           float64 `json:"score"`
	CoveredMinutes  int     `json:"coveredMinutes"`
	CoveragePercent float64 `json:"coveragePercent"`
}

// RecommendationSegment is the display form of a Segment.
type RecommendationSegment struct {
	SeatID    string `json:"seatId"`
	SeatName  string `json:"seatName"`
	FloorName string `json:"floorName"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Duration  int    `json:"duration"` // minutes
}

// Recommendation is a ranked plan formatted for clients. SeatChanges
// counts only transitions where the seat identifier actually changes.
type Recommendation struct {
	Segments        []RecommendationSegment `json:"segments"`
	TotalBookings   int                     `json:"totalBookings"`
	TotalDuration   int                     `json:"totalDuration"`
	CoveragePercent int                     `json:"coveragePercent"`
	SeatChanges     int                     `json:"seatChanges"`
}
