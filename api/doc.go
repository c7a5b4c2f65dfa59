// Package api provides typed clients for the console backend's REST
// surface: users, admins, dashboards, attendance, call history, call
// analytics, performance and activity logs.
//
// Every call flows through the session gateway, so authentication headers,
// path prefixing and session-expiry handling are uniform; these clients
// only know their endpoints and payload shapes. Rendering is the caller's
// concern.
//
//	client := api.New(gw)
//
//	users, err := client.Users.List(ctx)
//	if errors.Is(err, gateway.ErrSessionExpired) {
//		// the gateway has already torn the session down and redirected
//		return
//	}
//
// Backend errors arrive as *APIError carrying the HTTP status and the
// body's error message.
package api
