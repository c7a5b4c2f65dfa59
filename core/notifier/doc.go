// Package notifier is the user-facing notification surface of the console
// client. It accepts (message, severity) pairs and makes them transiently
// visible: notifications auto-dismiss after a fixed interval, matching the
// toast behavior of the console UI.
//
// The Notifier interface is deliberately tiny and infallible: it never
// returns an error and implementations must never panic, because it is
// called from failure paths (session expiry, login errors) where a second
// failure has nowhere to go.
//
// Three implementations ship with the package:
//
//   - Log writes notifications to a slog.Logger, the default for headless
//     clients.
//   - Hub fans notifications out to subscriber channels and emits a
//     dismissal event after the configured interval; UI layers subscribe
//     and render.
//   - Noop discards everything, for tests.
//
// Hub example:
//
//	hub := notifier.NewHub(notifier.WithDismissAfter(5 * time.Second))
//	events, unsubscribe := hub.Subscribe()
//	defer unsubscribe()
//
//	go func() {
//		for ev := range events {
//			switch ev.Kind {
//			case notifier.EventShown:
//				renderToast(ev.Notification)
//			case notifier.EventDismissed:
//				removeToast(ev.Notification.ID)
//			}
//		}
//	}()
package notifier
