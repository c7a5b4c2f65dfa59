package api

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/consolekit/core/gateway"
)

// AdminsClient manages administrator accounts; super-admin only.
type AdminsClient struct {
	gw *gateway.Client
}

// Admin is an administrator row as the super-admin console lists it.
type Admin struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	UserLimit int    `json:"user_limit"`
	UserCount int    `json:"user_count"`
	IsActive  bool   `json:"is_active"`
	IsExpired bool   `json:"is_expired"`
	CreatedAt string `json:"created_at"`
	LastLogin string `json:"last_login,omitempty"`
	// ExpiryDate bounds the admin's account validity (date string).
	ExpiryDate string `json:"expiry_date"`
}

// CreateAdminRequest is the create-admin form payload. ExpiryDate is
// required by the backend.
type CreateAdminRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	UserLimit  int    `json:"user_limit,omitempty"`
	ExpiryDate string `json:"expiry_date"`
}

// CreateAdminResponse is the backend's acknowledgement.
type CreateAdminResponse struct {
	Message string `json:"message"`
	Admin   *Admin `json:"admin,omitempty"`
}

type adminsResponse struct {
	Admins []Admin `json:"admins"`
}

// Create registers a new administrator.
func (c *AdminsClient) Create(ctx context.Context, req CreateAdminRequest) (CreateAdminResponse, error) {
	return do[CreateAdminResponse](ctx, c.gw, http.MethodPost, "/superadmin/create-admin", nil, req)
}

// List returns all administrators, newest first.
func (c *AdminsClient) List(ctx context.Context) ([]Admin, error) {
	resp, err := do[adminsResponse](ctx, c.gw, http.MethodGet, "/superadmin/admins", nil, nil)
	if err != nil {
		return nil, err
	}
	return resp.Admins, nil
}
