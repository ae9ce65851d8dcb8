package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"seatwise/models"
	"seatwise/utils"
)

// ReservationClient is the upstream contract the executor drives. Its
// implementation lives outside the engine; only the outcome shape
// matters here.
type ReservationClient interface {
	Reserve(ctx context.Context, email, date, startTime, endTime, seatID string) (models.ReserveOutcome, error)
}

// BookingExecutor runs an ordered list of consolidated bookings against
// the reservation service, one call at a time.
type BookingExecutor interface {
	Execute(ctx context.Context, bookings []models.ConsolidatedBooking, email string) models.RunReport
}

// PacedBookingExecutor issues reservation calls strictly sequentially,
// gated by a fixed-interval limiter. Pacing is a self-imposed rate
// limit: bursts against the reservation endpoint trip its abuse
// detection. Total latency grows linearly with the booking count.
type PacedBookingExecutor struct {
	Client  ReservationClient
	Limiter *rate.Limiter
	Logger  *zap.Logger
}

// NewPacedBookingExecutor builds an executor that waits pacing between
// consecutive calls. The first call is not delayed.
func NewPacedBookingExecutor(client ReservationClient, pacing time.Duration) *PacedBookingExecutor {
	if pacing <= 0 {
		pacing = time.Second
	}
	return &PacedBookingExecutor{
		Client:  client,
		Limiter: rate.NewLimiter(rate.Every(pacing), 1),
		Logger:  utils.GetLogger(),
	}
}

// Execute reserves each booking in order and returns one result per
// booking, in submission order. Failures are isolated: a rejected or
// errored call never cancels the remaining sequence. Cancellation is
// observed only between iterations; a call already dispatched always
// runs to completion so no reservation is left in an unknown state.
func (e *PacedBookingExecutor) Execute(ctx context.Context, bookings []models.ConsolidatedBooking, email string) models.RunReport {
	report := models.RunReport{
		RunID:   uuid.New().String(),
		Results: make([]models.BookingResult, 0, len(bookings)),
	}

	cancelled := false
	for _, b := range bookings {
		result := models.BookingResult{
			SeatName:  b.SeatName,
			Date:      b.Date,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
		}

		if cancelled {
			result.Message = "run cancelled before this booking was dispatched"
			report.Results = append(report.Results, result)
			continue
		}

		// The limiter hands out the first token immediately and one per
		// pacing interval after that. Wait returns early if ctx ends.
		if err := e.Limiter.Wait(ctx); err != nil {
			cancelled = true
			result.Message = "run cancelled before this booking was dispatched"
			report.Results = append(report.Results, result)
			continue
		}

		// The dispatched call must run to completion even if the run is
		// cancelled; a client-side abort would leave the reservation in
		// an unknown state. The client's own timeout still bounds it.
		outcome, err := e.Client.Reserve(context.WithoutCancel(ctx), email, b.Date, b.StartTime, b.EndTime, b.SeatID)
		if err != nil {
			e.Logger.Warn("reservation call failed",
				zap.String("runId", report.RunID),
				zap.String("seat", b.SeatName),
				zap.Error(err))
			result.Message = err.Error()
			report.Results = append(report.Results, result)
			continue
		}

		result.Succeeded = outcome.OK
		result.Message = outcome.Message
		result.ErrorKind = outcome.ErrorKind
		report.Results = append(report.Results, result)
	}

	report.AllSucceeded = len(report.Results) > 0
	for _, r := range report.Results {
		if !r.Succeeded {
			report.AllSucceeded = false
			break
		}
	}

	e.Logger.Info("booking run finished",
		zap.String("runId", report.RunID),
		zap.Int("bookings", len(bookings)),
		zap.Bool("allSucceeded", report.AllSucceeded))

	return report
}
