package api

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/consolekit/core/gateway"
)

// DashboardClient loads the headline stats for either console.
type DashboardClient struct {
	gw *gateway.Client
}

// AdminStats are the admin console's dashboard counters.
type AdminStats struct {
	TotalUsers   int    `json:"total_users"`
	ActiveUsers  int    `json:"active_users"`
	ExpiredUsers int    `json:"expired_users"`
	UserLimit    int    `json:"user_limit"`
	ExpiryDate   string `json:"expiry_date"`
}

// SuperAdminStats are the super-admin console's dashboard counters.
type SuperAdminStats struct {
	TotalAdmins   int `json:"total_admins"`
	ActiveAdmins  int `json:"active_admins"`
	ExpiredAdmins int `json:"expired_admins"`
	TotalUsers    int `json:"total_users"`
}

type adminStatsResponse struct {
	Stats AdminStats `json:"stats"`
}

type superAdminStatsResponse struct {
	Stats SuperAdminStats `json:"stats"`
}

// AdminStats returns the signed-in admin's dashboard counters.
func (c *DashboardClient) AdminStats(ctx context.Context) (AdminStats, error) {
	resp, err := do[adminStatsResponse](ctx, c.gw, http.MethodGet, "/admin/dashboard-stats", nil, nil)
	if err != nil {
		return AdminStats{}, err
	}
	return resp.Stats, nil
}

// SuperAdminStats returns the global dashboard counters.
func (c *DashboardClient) SuperAdminStats(ctx context.Context) (SuperAdminStats, error) {
	resp, err := do[superAdminStatsResponse](ctx, c.gw, http.MethodGet, "/superadmin/dashboard-stats", nil, nil)
	if err != nil {
		return SuperAdminStats{}, err
	}
	return resp.Stats, nil
}
