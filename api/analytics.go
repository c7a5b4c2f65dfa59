package api

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/consolekit/core/gateway"
)

// CallAnalyticsClient loads aggregated call metrics for the admin's users.
type CallAnalyticsClient struct {
	gw *gateway.Client
}

// DailyCount is one point on the daily call-volume trend.
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// UserCallSummary aggregates one user's calls within the selected period.
type UserCallSummary struct {
	UserID        int64  `json:"user_id"`
	UserName      string `json:"user_name"`
	Incoming      int    `json:"incoming"`
	Outgoing      int    `json:"outgoing"`
	Missed        int    `json:"missed"`
	TotalDuration int64  `json:"total_duration"`
}

// CallAnalytics is the aggregated analytics payload. Durations are in
// seconds; missed includes rejected calls.
type CallAnalytics struct {
	TotalCalls    int               `json:"total_calls"`
	Incoming      int               `json:"incoming"`
	Outgoing      int               `json:"outgoing"`
	Missed        int               `json:"missed"`
	TotalDuration int64             `json:"total_duration"`
	DailyTrend    []DailyCount      `json:"daily_trend"`
	UserSummary   []UserCallSummary `json:"user_summary"`
}

// SyncResponse acknowledges an analytics sync upload.
type SyncResponse struct {
	Message string `json:"message"`
}

// Get returns aggregated call analytics for the period.
func (c *CallAnalyticsClient) Get(ctx context.Context, period Period) (CallAnalytics, error) {
	return do[CallAnalytics](ctx, c.gw, http.MethodGet, "/admin/call-analytics", periodQuery(period), nil)
}

// Sync pushes a raw analytics payload to the backend.
func (c *CallAnalyticsClient) Sync(ctx context.Context, payload any) (SyncResponse, error) {
	return do[SyncResponse](ctx, c.gw, http.MethodPost, "/admin/call-analytics/sync", nil, payload)
}
