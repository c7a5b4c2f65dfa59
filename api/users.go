package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/consolekit/core/gateway"
)

// UsersClient manages the accounts an admin supervises.
type UsersClient struct {
	gw *gateway.Client
}

// User is a supervised account row as the admin console lists it.
type User struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone,omitempty"`
	PerformanceScore float64 `json:"performance_score"`
	IsActive         bool    `json:"is_active"`
	ExpiryDate       string  `json:"expiry_date,omitempty"`
	LastLogin        string  `json:"last_login,omitempty"`
	CreatedAt        string  `json:"created_at,omitempty"`
}

// CreateUserRequest is the create-user form payload.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

// CreateUserResponse is the backend's acknowledgement.
type CreateUserResponse struct {
	Message string `json:"message"`
	User    *User  `json:"user,omitempty"`
}

// DeleteUserResponse is the backend's acknowledgement.
type DeleteUserResponse struct {
	Message string `json:"message"`
}

// UserData is the synced device data behind one account. The analytics and
// contacts sections are passed through raw; the console renders them as-is.
type UserData struct {
	User        *User           `json:"user,omitempty"`
	LastSync    string          `json:"last_sync,omitempty"`
	Analytics   json.RawMessage `json:"analytics,omitempty"`
	CallHistory []CallRecord    `json:"call_history,omitempty"`
	Contacts    json.RawMessage `json:"contacts,omitempty"`
}

type usersResponse struct {
	Users []User `json:"users"`
}

// Create registers a new supervised account under the signed-in admin.
func (c *UsersClient) Create(ctx context.Context, req CreateUserRequest) (CreateUserResponse, error) {
	return do[CreateUserResponse](ctx, c.gw, http.MethodPost, "/admin/create-user", nil, req)
}

// List returns all accounts supervised by the signed-in admin.
func (c *UsersClient) List(ctx context.Context) ([]User, error) {
	resp, err := do[usersResponse](ctx, c.gw, http.MethodGet, "/admin/users", nil, nil)
	if err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// Delete removes a supervised account and its synced data.
func (c *UsersClient) Delete(ctx context.Context, userID int64) (DeleteUserResponse, error) {
	path := fmt.Sprintf("/admin/delete-user/%d", userID)
	return do[DeleteUserResponse](ctx, c.gw, http.MethodDelete, path, nil, nil)
}

// Data returns the synced device data for one supervised account.
func (c *UsersClient) Data(ctx context.Context, userID int64) (UserData, error) {
	path := fmt.Sprintf("/admin/user-data/%d", userID)
	return do[UserData](ctx, c.gw, http.MethodGet, path, nil, nil)
}
