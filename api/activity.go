package api

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/consolekit/core/gateway"
)

// ActivityClient reads the audit trail; super-admin only.
type ActivityClient struct {
	gw *gateway.Client
}

// ActivityLog is one audit entry. The backend returns the most recent 50.
type ActivityLog struct {
	ID         int64  `json:"id"`
	Action     string `json:"action"`
	ActorRole  string `json:"actor_role"`
	ActorID    int64  `json:"actor_id"`
	TargetType string `json:"target_type,omitempty"`
	TargetID   int64  `json:"target_id,omitempty"`
	Timestamp  string `json:"timestamp"`
}

type logsResponse struct {
	Logs []ActivityLog `json:"logs"`
}

// Logs returns the latest audit entries, newest first.
func (c *ActivityClient) Logs(ctx context.Context) ([]ActivityLog, error) {
	resp, err := do[logsResponse](ctx, c.gw, http.MethodGet, "/superadmin/logs", nil, nil)
	if err != nil {
		return nil, err
	}
	return resp.Logs, nil
}
