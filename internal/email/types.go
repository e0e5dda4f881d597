package email

// DefaultFooter closes every staff notification.
const DefaultFooter = "This is an automated message from Nuvanta Nurse Manager System."

// AlertType is the severity of a staff alert.
type AlertType string

const (
	AlertCritical      AlertType = "Critical"
	AlertImportant     AlertType = "Important"
	AlertInformational AlertType = "Informational"
)

// IsValid reports whether t is a known alert type.
func (t AlertType) IsValid() bool {
	switch t {
	case AlertCritical, AlertImportant, AlertInformational:
		return true
	}
	return false
}

// Color is the accent used for the alert banner.
func (t AlertType) Color() string {
	switch t {
	case AlertCritical:
		return "#f56565"
	case AlertImportant:
		return "#ed8936"
	default:
		return "#4299e1"
	}
}

// --- UseCase Inputs ---

type SendInput struct {
	To      []string
	Subject string
	Text    string
	HTML    string
}

type ScheduleNotificationInput struct {
	To                []string
	NurseName         string
	ScheduleDetails   string
	StartDate         string
	EndDate           string
	AdditionalMessage string
}

type AlertInput struct {
	To             []string
	AlertType      AlertType
	AlertDetails   string
	ActionRequired bool
	ActionText     string
	DueDate        string
}

type BatchInput struct {
	Recipients     []string
	Subject        string
	MessageContent string
}

// --- UseCase Outputs ---

type Result struct {
	Success bool
	Message string
}
