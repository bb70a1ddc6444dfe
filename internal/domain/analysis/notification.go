package analysis

// NotificationType mirrors the alert styles of the UI
type NotificationType string

const (
	NotifyInfo    NotificationType = "info"
	NotifySuccess NotificationType = "success"
	NotifyWarning NotificationType = "warning"
	NotifyDanger  NotificationType = "danger"
)

// Notification is a transient, dismissible message returned with command results.
type Notification struct {
	Message string           `json:"message"`
	Type    NotificationType `json:"type"`
}

func (n Notification) Empty() bool { return n.Message == "" }

func info(msg string) Notification    { return Notification{Message: msg, Type: NotifyInfo} }
func success(msg string) Notification { return Notification{Message: msg, Type: NotifySuccess} }
