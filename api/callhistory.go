package api

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/consolekit/core/gateway"
)

// CallHistoryClient lists the raw call log across the admin's users.
type CallHistoryClient struct {
	gw *gateway.Client
}

// CallRecord is a single synced phone call. Duration is in seconds.
type CallRecord struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"user_id"`
	UserName        string `json:"user_name"`
	PhoneNumber     string `json:"phone_number"`
	FormattedNumber string `json:"formatted_number,omitempty"`
	ContactName     string `json:"contact_name,omitempty"`
	CallType        string `json:"call_type"`
	Duration        int64  `json:"duration"`
	Timestamp       string `json:"timestamp,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
}

// PageMeta is the pagination envelope on call-history responses.
type PageMeta struct {
	Page    int  `json:"page"`
	PerPage int  `json:"per_page"`
	Total   int  `json:"total"`
	Pages   int  `json:"pages"`
	HasNext bool `json:"has_next"`
	HasPrev bool `json:"has_prev"`
}

// CallHistoryPage is one page of call records with its pagination meta.
type CallHistoryPage struct {
	CallHistory []CallRecord `json:"call_history"`
	Meta        PageMeta     `json:"meta"`
}

// ListAll returns a page of the combined call log across all of the
// admin's users, newest first.
func (c *CallHistoryClient) ListAll(ctx context.Context, page, perPage int) (CallHistoryPage, error) {
	return do[CallHistoryPage](ctx, c.gw, http.MethodGet, "/admin/all-call-history", pagination(page, perPage), nil)
}
