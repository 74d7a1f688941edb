package notification

import (
	"sync"

	"github.com/cjaradhye/quirkventory/internal/core/port"
	"go.uber.org/zap"
)

// LogNotifier delivers alerts to the application log.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(alert port.Alert) {
	fields := []zap.Field{
		zap.String("source", alert.Source),
		zap.String("priority", string(alert.Priority)),
	}

	switch alert.Priority {
	case port.AlertPriorityCritical, port.AlertPriorityHigh:
		n.logger.Warn(alert.Message, fields...)
	default:
		n.logger.Info(alert.Message, fields...)
	}
}

// Feed keeps a bounded in-memory history of alerts and forwards each one to
// the next notifier in the chain. It stands in for the delivery channels
// (email, system log) of a full notification subsystem.
type Feed struct {
	forward port.Notifier
	limit   int

	mu     sync.Mutex
	alerts []port.Alert
}

func NewFeed(limit int, forward port.Notifier) *Feed {
	if limit <= 0 {
		limit = 100
	}
	return &Feed{forward: forward, limit: limit}
}

func (f *Feed) Notify(alert port.Alert) {
	f.mu.Lock()
	f.alerts = append(f.alerts, alert)
	if len(f.alerts) > f.limit {
		f.alerts = f.alerts[len(f.alerts)-f.limit:]
	}
	f.mu.Unlock()

	if f.forward != nil {
		f.forward.Notify(alert)
	}
}

// Recent returns the newest alerts, most recent last, capped at n.
func (f *Feed) Recent(n int) []port.Alert {
	f.mu.Lock()
	defer f.mu.Unlock()

	if n <= 0 || n > len(f.alerts) {
		n = len(f.alerts)
	}
	result := make([]port.Alert, n)
	copy(result, f.alerts[len(f.alerts)-n:])
	return result
}

// HighPriority returns the retained alerts with HIGH or CRITICAL priority.
func (f *Feed) HighPriority() []port.Alert {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []port.Alert
	for _, alert := range f.alerts {
		if alert.HighPriority() {
			result = append(result, alert)
		}
	}
	return result
}
