package hotelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"luxestay/internal/domain"
)

// Client is the typed gateway to the upstream hotel API. It never
// retries on its own; retry policy belongs to the callers.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func New(baseURL string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
	}
}

// WithHTTPClient overrides the underlying http.Client, mainly for tests.
func (c *Client) WithHTTPClient(h *http.Client) *Client {
	c.http = h
	return c
}

func (c *Client) Branches(ctx context.Context) ([]Branch, error) {
	var out []Branch
	if err := c.getJSON(ctx, "/api/branch/all", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Prices(ctx context.Context) ([]PriceEntry, error) {
	var out []PriceEntry
	if err := c.getJSON(ctx, "/api/price", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AvailableRooms returns candidate rooms in server-defined order. An
// empty slice is a normal outcome, not an error.
func (c *Client) AvailableRooms(ctx context.Context, branchID int64, roomType, checkIn, checkOut string) ([]Room, error) {
	q := url.Values{}
	q.Set("branchId", fmt.Sprintf("%d", branchID))
	q.Set("type", roomType)
	q.Set("checkIn", checkIn)
	q.Set("checkOut", checkOut)

	var out []Room
	if err := c.getJSON(ctx, "/api/room/available", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Room(ctx context.Context, roomID int64) (*Room, error) {
	var out Room
	if err := c.getJSON(ctx, fmt.Sprintf("/api/room/%d", roomID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateBooking submits the finalized draft and returns the bookingId.
func (c *Client) CreateBooking(ctx context.Context, req BookingRequest) (string, error) {
	var out struct {
		BookingID string `json:"bookingId"`
	}
	if err := c.postJSON(ctx, "/api/booking/add", req, &out); err != nil {
		return "", err
	}
	if out.BookingID == "" {
		return "", domain.TransientError{Op: "create booking", Err: fmt.Errorf("response missing bookingId")}
	}
	return out.BookingID, nil
}

// CreateCheckoutSession asks the upstream to open an external checkout
// session for the same payload and returns the sessionId.
func (c *Client) CreateCheckoutSession(ctx context.Context, req BookingRequest) (string, error) {
	var out struct {
		SessionID string `json:"sessionId"`
	}
	if err := c.postJSON(ctx, "/api/stripe/create-session", req, &out); err != nil {
		return "", err
	}
	if out.SessionID == "" {
		return "", domain.TransientError{Op: "create checkout session", Err: fmt.Errorf("response missing sessionId")}
	}
	return out.SessionID, nil
}

// ConfirmBySession exchanges an external checkout session id for the
// bookingId created once payment completed.
func (c *Client) ConfirmBySession(ctx context.Context, sessionID string) (string, error) {
	q := url.Values{}
	q.Set("session_id", sessionID)

	var out struct {
		BookingID string `json:"bookingId"`
	}
	if err := c.getJSON(ctx, "/api/booking/confirm", q, &out); err != nil {
		return "", err
	}
	if out.BookingID == "" {
		return "", domain.TransientError{Op: "confirm session", Err: fmt.Errorf("response missing bookingId")}
	}
	return out.BookingID, nil
}

func (c *Client) BookingStatus(ctx context.Context, bookingID string) (*Booking, error) {
	q := url.Values{}
	q.Set("bookingId", bookingID)

	var out Booking
	err := c.getJSON(ctx, "/api/booking-status", q, &out)
	if err != nil {
		// The upstream answers 4xx for unknown booking ids.
		if st, ok := err.(statusTransient); ok && st.status/100 == 4 {
			return nil, domain.NotFoundError{Resource: "booking"}
		}
		if domain.IsNotFound(err) {
			return nil, domain.NotFoundError{Resource: "booking"}
		}
		return nil, err
	}
	return &out, nil
}

// Receipt fetches the booking receipt PDF.
func (c *Client) Receipt(ctx context.Context, bookingID string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/booking/"+url.PathEscape(bookingID)+"/receipt", nil)
	if err != nil {
		return nil, domain.TransientError{Op: "receipt", Err: err}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("receipt request failed", "booking_id", bookingID, "error", err)
		return nil, domain.TransientError{Op: "receipt", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.NotFoundError{Resource: "receipt"}
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, c.statusError("receipt", resp)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.TransientError{Op: "receipt", Err: err}
	}
	return body, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, dst any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.TransientError{Op: path, Err: err}
	}
	return c.do(req, path, dst)
}

func (c *Client) postJSON(ctx context.Context, path string, payload, dst any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return domain.TransientError{Op: path, Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return domain.TransientError{Op: path, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, path, dst)
}

func (c *Client) do(req *http.Request, op string, dst any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("hotel api request failed", "op", op, "error", err)
		return domain.TransientError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.NotFoundError{Resource: strings.Trim(op, "/")}
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return c.statusError(op, resp)
	}
	if dst == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		c.logger.Error("hotel api decode failed", "op", op, "error", err)
		return domain.TransientError{Op: op, Err: err}
	}
	return nil
}

func (c *Client) statusError(op string, resp *http.Response) error {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	err := fmt.Errorf("status %d: %s", resp.StatusCode, string(snippet))
	c.logger.Error("hotel api returned error", "op", op, "status", resp.StatusCode)
	return statusTransient{TransientError: domain.TransientError{Op: op, Err: err}, status: resp.StatusCode}
}

// statusTransient keeps the HTTP status attached so BookingStatus can
// tell an unknown id apart from an upstream outage.
type statusTransient struct {
	domain.TransientError
	status int
}

func (e statusTransient) Unwrap() error { return e.TransientError }

