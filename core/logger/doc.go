// Package logger provides slog attribute helpers shared across consolekit
// packages. Helpers follow the empty Attr pattern: passing a nil error or a
// zero value yields an empty attribute that slog drops silently, so call
// sites never need nil checks.
//
//	log.Info("request completed",
//		logger.Component("gateway"),
//		logger.Method(http.MethodGet),
//		logger.Path("/api/admin/users"),
//		logger.Status(resp.StatusCode),
//		logger.Duration(time.Since(start)),
//		logger.Error(err),
//	)
package logger
