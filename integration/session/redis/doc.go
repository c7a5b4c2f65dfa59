// Package redis provides a Redis-backed session store for the console
// client, letting several processes (or a CLI that restarts between
// invocations) share one signed-in console session per role.
//
// Sessions are stored as JSON under role-namespaced keys. When the session
// carries a known expiry (JWT exp claim), the Redis TTL is aligned with it
// so Redis forgets the token the moment the backend would reject it; tokens
// without expiry knowledge fall back to the configured default TTL.
//
// Usage:
//
//	client, err := redis.Connect(ctx, redis.Config{
//		ConnectionURL: "redis://localhost:6379/0",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	store := redis.NewStore(client)
//	gw, err := gateway.New(store, cfg)
//
// The store satisfies session.Store, so it drops in anywhere the in-memory
// store is used.
package redis
