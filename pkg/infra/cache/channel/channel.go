package channel

type Channel string

const (
	NotificationsChannel Channel = "clickguard:notifications"
)
