package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"seatwise/config"
	"seatwise/utils"
)

// Client talks to the third-party reservation service. It owns the
// transport-level defaults (timeout, headers); TTL memoization of the
// read endpoints goes through utils.GetCached.
type Client struct {
	http            *http.Client
	reservationBase string
	directoryBase   string
	seatsTTL        time.Duration
	floorsTTL       time.Duration
	pageDelay       time.Duration
	logger          *zap.Logger
}

// NewClient builds a client from the loaded configuration.
func NewClient() *Client {
	timeout := time.Duration(config.AppConfig.UpstreamTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		http:            &http.Client{Timeout: timeout},
		reservationBase: config.AppConfig.ReservationBaseURL,
		directoryBase:   config.AppConfig.DirectoryBaseURL,
		seatsTTL:        time.Duration(config.AppConfig.SeatsCacheTTLSec) * time.Second,
		floorsTTL:       time.Duration(config.AppConfig.FloorsCacheTTLSec) * time.Second,
		pageDelay:       directoryPageDelay,
		logger:          utils.GetLogger(),
	}
}

// setBrowserHeaders mimics the headers the service's own web client
// sends; requests without them are rejected by its edge.
func setBrowserHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
}

// get performs a GET and returns the status code and body bytes.
func (c *Client) get(ctx context.Context, url string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, err
	}
	setBrowserHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("reading upstream response failed: %w", err)
	}
	return resp.StatusCode, body, nil
}

// getRaw performs a GET and returns the body bytes for 2xx responses.
func (c *Client) getRaw(ctx context.Context, url string) ([]byte, error) {
	status, body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("upstream returned %d: %s", status, string(body))
	}
	return body, nil
}

// postJSON performs a POST with a JSON payload and decodes the response
// body regardless of status, returning the status code alongside it.
func (c *Client) postJSON(ctx context.Context, url string, payload any) (int, []byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return 0, nil, err
	}
	setBrowserHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("reading upstream response failed: %w", err)
	}
	return resp.StatusCode, body, nil
}
