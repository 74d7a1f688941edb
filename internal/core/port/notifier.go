package port

import "time"

type AlertPriority string

const (
	AlertPriorityLow      AlertPriority = "LOW"
	AlertPriorityMedium   AlertPriority = "MEDIUM"
	AlertPriorityHigh     AlertPriority = "HIGH"
	AlertPriorityCritical AlertPriority = "CRITICAL"
)

type Alert struct {
	Message   string
	Priority  AlertPriority
	Source    string
	CreatedAt time.Time
}

func (a Alert) HighPriority() bool {
	return a.Priority == AlertPriorityHigh || a.Priority == AlertPriorityCritical
}

//go:generate mockgen -source=notifier.go -destination=mock/notifier.go -package=mock
type Notifier interface {
	Notify(alert Alert)
}
