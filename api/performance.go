package api

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/consolekit/core/gateway"
)

// PerformanceClient loads per-user performance aggregates.
type PerformanceClient struct {
	gw *gateway.Client
}

// UserPerformance aggregates one user's call activity within the period.
type UserPerformance struct {
	UserID           int64  `json:"user_id"`
	UserName         string `json:"user_name"`
	TotalCalls       int    `json:"total_calls"`
	TotalDurationSec int64  `json:"total_duration_sec"`
	Incoming         int    `json:"incoming"`
	Outgoing         int    `json:"outgoing"`
	Missed           int    `json:"missed"`
	Rejected         int    `json:"rejected"`
}

// PerformanceSummary totals the report across users.
type PerformanceSummary struct {
	TotalCalls       int    `json:"total_calls"`
	TotalDurationSec int64  `json:"total_duration_sec"`
	TotalUsers       int    `json:"total_users"`
	Filter           string `json:"filter"`
}

// PerformanceReport is the full performance payload.
type PerformanceReport struct {
	Summary PerformanceSummary `json:"summary"`
	Users   []UserPerformance  `json:"users"`
}

// Get returns the performance report for the period.
func (c *PerformanceClient) Get(ctx context.Context, period Period) (PerformanceReport, error) {
	return do[PerformanceReport](ctx, c.gw, http.MethodGet, "/admin/performance", periodQuery(period), nil)
}
