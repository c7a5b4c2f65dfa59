package notifier

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Severity classifies a notification for presentation.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is a single transient message shown to the user.
type Notification struct {
	ID       string
	Message  string
	Severity Severity
	At       time.Time
}

// Notifier accepts user-visible messages. Implementations never return
// errors and never panic; a notification that cannot be delivered is
// dropped.
type Notifier interface {
	Notify(message string, severity Severity)
}

// newNotification stamps a message with an identifier and timestamp.
func newNotification(message string, severity Severity) Notification {
	return Notification{
		ID:       uuid.NewString(),
		Message:  message,
		Severity: severity,
		At:       time.Now(),
	}
}

// Noop discards all notifications.
type Noop struct{}

var _ Notifier = Noop{}

// Notify implements Notifier.
func (Noop) Notify(string, Severity) {}

// Log writes notifications to a structured logger. Severity maps to the
// slog level: errors at Error, everything else at Info.
type Log struct {
	log *slog.Logger
}

var _ Notifier = (*Log)(nil)

// NewLog creates a logger-backed notifier. A nil logger falls back to
// slog.Default.
func NewLog(log *slog.Logger) *Log {
	if log == nil {
		log = slog.Default()
	}
	return &Log{log: log}
}

// Notify implements Notifier.
func (l *Log) Notify(message string, severity Severity) {
	if severity == SeverityError {
		l.log.Error(message, slog.String("severity", string(severity)))
		return
	}
	l.log.Info(message, slog.String("severity", string(severity)))
}
