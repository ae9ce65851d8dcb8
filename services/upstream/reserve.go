package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"go.uber.org/zap"

	"seatwise/models"
)

// confirmationPatterns are the known phrasings of "confirm your email
// first" rejections. Matched case-insensitively against the error text.
var confirmationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)email.*not.*verif`),
	regexp.MustCompile(`(?i)email.*not.*confirm`),
	regexp.MustCompile(`(?i)verify.*email`),
	regexp.MustCompile(`(?i)confirm.*email`),
	regexp.MustCompile(`(?i)email.*validation.*required`),
	regexp.MustCompile(`(?i)please.*confirm.*email`),
	regexp.MustCompile(`(?i)unverified.*email`),
}

// IsEmailConfirmationMessage reports whether an upstream error text
// means the email must be confirmed before reserving.
func IsEmailConfirmationMessage(message string) bool {
	for _, pattern := range confirmationPatterns {
		if pattern.MatchString(message) {
			return true
		}
	}
	return false
}

type reserveRequest struct {
	AuthType      *string `json:"auth_type"`
	Email         string  `json:"email"`
	Date          string  `json:"date"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	Note          *string `json:"note"`
	UserFirstname *string `json:"user_firstname"`
	UserLastname  *string `json:"user_lastname"`
	UserPhone     *string `json:"user_phone"`
	PersonCount   int     `json:"person_count"`
}

type reserveResponse struct {
	SuccessMessage string `json:"successMessage"`
	ErrorMessage   string `json:"errorMessage"`
}

// Reserve books one interval on one seat. Service rejections come back
// as a classified ReserveOutcome, not an error; the error return is for
// transport or decoding failures only.
func (c *Client) Reserve(ctx context.Context, email, date, startTime, endTime, seatID string) (models.ReserveOutcome, error) {
	payload := reserveRequest{
		Email:       email,
		Date:        date,
		StartTime:   startTime,
		EndTime:     endTime,
		PersonCount: 1,
	}

	status, body, err := c.postJSON(ctx, fmt.Sprintf("%s/reserve/%s", c.reservationBase, seatID), payload)
	if err != nil {
		return models.ReserveOutcome{}, err
	}

	var parsed reserveResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return models.ReserveOutcome{}, fmt.Errorf("invalid reserve response (%d): %w", status, err)
	}

	if status >= 200 && status < 300 {
		c.logger.Info("reservation accepted",
			zap.String("seatId", seatID),
			zap.String("date", date),
			zap.String("window", startTime+"-"+endTime))
		return models.ReserveOutcome{OK: true, Message: parsed.SuccessMessage}, nil
	}

	outcome := models.ReserveOutcome{OK: false, Message: parsed.ErrorMessage}
	if IsEmailConfirmationMessage(parsed.ErrorMessage) {
		outcome.ErrorKind = models.ErrorKindEmailConfirmationRequired
	}
	c.logger.Warn("reservation rejected",
		zap.String("seatId", seatID),
		zap.Int("status", status),
		zap.String("message", parsed.ErrorMessage))
	return outcome, nil
}
