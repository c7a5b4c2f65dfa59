package api

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/consolekit/core/gateway"
)

// AttendanceClient lists check-in/check-out records for the admin's users.
type AttendanceClient struct {
	gw *gateway.Client
}

// AttendanceRecord is one user's attendance row. CheckIn/CheckOut are
// backend timestamps (ISO strings, empty when the event hasn't happened).
type AttendanceRecord struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	UserName string `json:"user_name"`
	CheckIn  string `json:"check_in,omitempty"`
	CheckOut string `json:"check_out,omitempty"`
	Status   string `json:"status"`
}

// AttendancePage is one page of attendance records.
type AttendancePage struct {
	Attendance []AttendanceRecord `json:"attendance"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	Pages      int                `json:"pages"`
}

// List returns a page of attendance records, newest first. Zero page or
// perPage values fall back to the backend defaults.
func (c *AttendanceClient) List(ctx context.Context, page, perPage int) (AttendancePage, error) {
	return do[AttendancePage](ctx, c.gw, http.MethodGet, "/admin/attendance", pagination(page, perPage), nil)
}
