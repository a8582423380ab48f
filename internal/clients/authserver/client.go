package authserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"reward-platform/internal/observability"

	"github.com/tidwall/gjson"
)

// maxBodyBytes caps how much of an upstream response is read
const maxBodyBytes = 1 << 20

var (
	ErrUpstreamUnavailable = errors.New("auth server unavailable")
	ErrUpstreamStatus      = errors.New("auth server returned an unexpected status")
	ErrMalformedResponse   = errors.New("malformed auth server response")
)

// LoginStats is the login activity aggregate of one user
type LoginStats struct {
	TotalUniqueDays       int
	RecentSevenDaysUnique int
	LoggedDates           []string
}

// Profile is the public view of a user account
type Profile struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Client calls the auth-server on behalf of the event-server
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *observability.Logger
}

// NewClient creates a client for the auth-server at baseURL. Every call is bounded by timeout.
func NewClient(baseURL string, timeout time.Duration, logger *observability.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// LoginStats fetches the login aggregate of a user. loggedDates is optional in the response.
func (c *Client) LoginStats(ctx context.Context, userID string) (LoginStats, error) {
	body, err := c.get(ctx, "login_stats", "/user/login-count/"+url.PathEscape(userID))
	if err != nil {
		return LoginStats{}, err
	}

	if !gjson.ValidBytes(body) {
		return LoginStats{}, fmt.Errorf("%w: invalid json", ErrMalformedResponse)
	}
	total := gjson.GetBytes(body, "totalUniqueDays")
	recent := gjson.GetBytes(body, "recent7DaysUnique")
	if total.Type != gjson.Number || recent.Type != gjson.Number {
		return LoginStats{}, fmt.Errorf("%w: missing login counters", ErrMalformedResponse)
	}

	stats := LoginStats{
		TotalUniqueDays:       int(total.Int()),
		RecentSevenDaysUnique: int(recent.Int()),
	}
	if dates := gjson.GetBytes(body, "loggedDates"); dates.IsArray() {
		for _, d := range dates.Array() {
			if d.Type == gjson.String {
				stats.LoggedDates = append(stats.LoggedDates, d.String())
			}
		}
	}
	return stats, nil
}

// Profile fetches the public profile of a user
func (c *Client) Profile(ctx context.Context, userID string) (Profile, error) {
	body, err := c.get(ctx, "profile", "/user/"+url.PathEscape(userID))
	if err != nil {
		return Profile{}, err
	}

	var profile Profile
	if err := json.Unmarshal(body, &profile); err != nil {
		return Profile{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if profile.ID == "" {
		return Profile{}, fmt.Errorf("%w: missing id", ErrMalformedResponse)
	}
	return profile, nil
}

func (c *Client) get(ctx context.Context, operation, path string) (body []byte, err error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "upstream", Value: "auth-server"},
		observability.Field{Key: "operation", Value: operation},
	)

	start := time.Now()
	defer func() {
		observability.ObserveUpstreamCall(operation, err, time.Since(start))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth server request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if requestID := observability.RequestID(ctx); requestID != "" {
		req.Header.Set(observability.RequestIDHeader, requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug(ctx, "auth server call failed")
		return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode)
	}

	body, err = io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	return body, nil
}
