package event

type Event interface {
	Type() string
}

const NotificationEventType = "NotificationEvent"
