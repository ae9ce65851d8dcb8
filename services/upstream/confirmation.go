package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"seatwise/models"
)

// ConfirmationStrategy probes a fixed, ordered list of candidate
// endpoints until one accepts the request or all are exhausted. The
// upstream service supports email confirmation but does not document
// which endpoint carries it, so discovery stays best-effort and
// entirely outside the optimizer.
type ConfirmationStrategy struct {
	client           *Client
	requestEndpoints []string
	verifyEndpoints  []string
}

func NewConfirmationStrategy(client *Client) *ConfirmationStrategy {
	return &ConfirmationStrategy{
		client: client,
		requestEndpoints: []string{
			client.reservationBase + "/email/verify",
			client.reservationBase + "/email/send-confirmation",
			client.directoryBase + "/email/verify",
			client.directoryBase + "/email/send-confirmation",
		},
		verifyEndpoints: []string{
			client.reservationBase + "/email/confirm/",
			client.directoryBase + "/email/confirm/",
		},
	}
}

type confirmationResponse struct {
	Message      string `json:"message"`
	ErrorMessage string `json:"errorMessage"`
}

func (r confirmationResponse) text() string {
	if r.ErrorMessage != "" {
		return r.ErrorMessage
	}
	return r.Message
}

// RequestConfirmation asks the service to send a confirmation mail.
// A 404 means "wrong endpoint, try the next"; any other error text that
// is not a not-found is taken as the right endpoint answering.
func (s *ConfirmationStrategy) RequestConfirmation(ctx context.Context, email string) models.ConfirmationResult {
	for _, endpoint := range s.requestEndpoints {
		status, body, err := s.client.postJSON(ctx, endpoint, map[string]string{"email": email})
		if err != nil {
			s.client.logger.Debug("confirmation probe failed", zap.String("endpoint", endpoint), zap.Error(err))
			continue
		}
		if status == http.StatusNotFound {
			continue
		}

		var parsed confirmationResponse
		_ = json.Unmarshal(body, &parsed)

		if status >= 200 && status < 300 {
			message := parsed.text()
			if message == "" {
				message = "Confirmation email sent. Please check your inbox."
			}
			return models.ConfirmationResult{Success: true, Message: message, Endpoint: endpoint}
		}

		if text := parsed.text(); text != "" && !strings.Contains(strings.ToLower(text), "not found") {
			return models.ConfirmationResult{Success: false, Message: text, Endpoint: endpoint}
		}
	}

	return models.ConfirmationResult{
		Success: false,
		Message: "Could not find the email confirmation endpoint. Try booking to see if confirmation is triggered automatically.",
	}
}

// VerifyToken redeems a confirmation token from the mail link.
func (s *ConfirmationStrategy) VerifyToken(ctx context.Context, token string) models.ConfirmationResult {
	for _, endpoint := range s.verifyEndpoints {
		status, body, err := s.client.get(ctx, endpoint+token)
		if err != nil || status == http.StatusNotFound {
			continue
		}

		var parsed confirmationResponse
		_ = json.Unmarshal(body, &parsed)

		if status >= 200 && status < 300 {
			message := parsed.text()
			if message == "" {
				message = "Email verified successfully."
			}
			return models.ConfirmationResult{Success: true, Message: message, Endpoint: endpoint}
		}
		if text := parsed.text(); text != "" {
			return models.ConfirmationResult{Success: false, Message: text, Endpoint: endpoint}
		}
	}

	return models.ConfirmationResult{
		Success: false,
		Message: "Could not verify the email token. The link may be invalid or expired.",
	}
}
