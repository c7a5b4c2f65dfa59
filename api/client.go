package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dmitrymomot/consolekit/core/gateway"
)

// Client aggregates the per-domain console API clients. All of them share
// one gateway and therefore one session.
type Client struct {
	Users         *UsersClient
	Admins        *AdminsClient
	Dashboard     *DashboardClient
	Attendance    *AttendanceClient
	CallHistory   *CallHistoryClient
	CallAnalytics *CallAnalyticsClient
	Performance   *PerformanceClient
	Activity      *ActivityClient
}

// New creates the console API client on top of a configured gateway.
func New(gw *gateway.Client) *Client {
	return &Client{
		Users:         &UsersClient{gw: gw},
		Admins:        &AdminsClient{gw: gw},
		Dashboard:     &DashboardClient{gw: gw},
		Attendance:    &AttendanceClient{gw: gw},
		CallHistory:   &CallHistoryClient{gw: gw},
		CallAnalytics: &CallAnalyticsClient{gw: gw},
		Performance:   &PerformanceClient{gw: gw},
		Activity:      &ActivityClient{gw: gw},
	}
}

// APIError is a non-2xx backend response with its decoded error message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: unexpected status %d", e.Status)
	}
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// Period filters time-ranged reports the way the console's dashboard tabs
// do.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	// PeriodAll is the backend default when no filter is sent.
	PeriodAll Period = ""
)

// do issues a gateway request and decodes the 2xx JSON body into T.
// A 401 surfaces as gateway.ErrSessionExpired (the gateway has already
// handled the teardown); other non-2xx statuses decode into *APIError.
func do[T any](ctx context.Context, gw *gateway.Client, method, path string, query url.Values, body any) (T, error) {
	var result T

	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	opts := []gateway.RequestOption{gateway.WithMethod(method)}
	if body != nil {
		opts = append(opts, gateway.WithJSONBody(body))
	}

	resp, err := gw.Request(ctx, path, opts...)
	if err != nil {
		return result, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return result, gateway.ErrSessionExpired
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
			apiErr.Message = payload.Error
		}
		return result, apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return result, fmt.Errorf("decode response: %w", err)
	}
	return result, nil
}

// pagination builds the page/per_page query used by the list endpoints.
func pagination(page, perPage int) url.Values {
	query := url.Values{}
	if page > 0 {
		query.Set("page", fmt.Sprint(page))
	}
	if perPage > 0 {
		query.Set("per_page", fmt.Sprint(perPage))
	}
	return query
}

// periodQuery builds the filter query for time-ranged reports.
func periodQuery(period Period) url.Values {
	query := url.Values{}
	if period != PeriodAll {
		query.Set("filter", string(period))
	}
	return query
}
