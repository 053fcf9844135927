package client

import "log/slog"

// Notifier receives the user-visible outcome of each operation. A UI
// shell surfaces these as toasts.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}

// LogNotifier writes notifications to a structured logger.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) Success(message string) {
	n.Logger.Info("notification", "level", "success", "message", message)
}

func (n LogNotifier) Error(message string) {
	n.Logger.Error("notification", "level", "error", "message", message)
}
