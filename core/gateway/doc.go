// Package gateway implements the session gateway client: the single
// chokepoint through which every console backend call passes. It owns the
// credential lifecycle (login, logout, token storage) and centralizes
// session-expiry handling so the per-domain API clients never touch
// authentication concerns.
//
// A Client is constructed once at application start and injected into every
// consumer; there is no package-level instance.
//
//	store := session.NewMemoryStore()
//	client, err := gateway.New(store, gateway.Config{
//		BaseURL: "https://console.example.com",
//		Role:    session.RoleAdmin,
//	},
//		gateway.WithNotifier(hub),
//		gateway.WithRedirector(gateway.RedirectorFunc(navigate)),
//	)
//	if err != nil {
//		return err
//	}
//
//	sess, err := client.Login(ctx, gateway.Credentials{
//		Email:    "a@b.com",
//		Password: "secret",
//	})
//
//	resp, err := client.Request(ctx, "/admin/users")
//
// # Request contract
//
// Request resolves the stored token, normalizes the path against the
// configured API prefix, merges caller headers over the default set, and
// issues the call. Caller headers can add or override anything except the
// Authorization header, which is always derived from the stored token.
//
// Paths are normalized deterministically: a missing leading slash is added,
// any occurrence of the configured prefix at the front is stripped, and the
// prefix is prepended exactly once. "/admin/users", "admin/users" and
// "/api/admin/users" all resolve to "/api/admin/users".
//
// A 401 response triggers the forced-logout sequence (one user-visible
// "session expired" notification, session teardown, redirect to the login
// page) and the response is still returned so the caller can short-circuit
// gracefully. Calling Request with no stored token (or a token known to be
// expired locally) performs the same teardown without a network round trip
// and fails with ErrNotAuthenticated.
//
// Transport failures (DNS, refused connections, timeouts, canceled
// contexts) surface as ErrNetworkFailure and never touch the session; only
// an explicit 401 logs the user out. The gateway does not retry and does
// not inspect other statuses; callers interpret their own responses.
//
// Every operation takes a context, so callers bound how long they wait via
// context.WithTimeout or a custom http.Client timeout.
package gateway
