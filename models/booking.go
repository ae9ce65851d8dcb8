package models

// ErrorKind classifies a failed reservation call.
type ErrorKind string

const (
	// ErrorKindEmailConfirmationRequired marks failures whose remediation
	// is confirming the email with the upstream service, not retrying.
	ErrorKindEmailConfirmationRequired ErrorKind = "email_confirmation_required"
)

// BookingResult is the outcome of exactly one executed reservation.
type BookingResult struct {
	SeatName  string    `json:"seatName"`
	Date      string    `json:"date"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Succeeded bool      `json:"succeeded"`
	Message   string    `json:"message,omitempty"`
	ErrorKind ErrorKind `json:"errorKind,omitempty"`
}

// RunReport aggregates one executor run. Results preserve the order in
// which bookings were submitted.
type RunReport struct {
	RunID        string          `json:"runId"`
	Results      []BookingResult `json:"results"`
	AllSucceeded bool            `json:"allSucceeded"`
}

// ReserveOutcome is the classified response of the upstream reserve call.
type ReserveOutcome struct {
	OK        bool      `json:"ok"`
	Message   string    `json:"message"`
	ErrorKind ErrorKind `json:"errorKind,omitempty"`
}

// ConfirmationResult reports an email-confirmation probe.
type ConfirmationResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Endpoint string `json:"endpoint,omitempty"`
}
