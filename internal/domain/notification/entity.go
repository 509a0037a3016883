package notification

import "time"

type Notification struct {
	ID         string
	SenderID   string
	ReceiverID string
	Title      string
	Message    string
	Type       Type
	Category   Category
	Read       bool
	CreatedAt  time.Time
}

type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeWarning Type = "warning"
	TypeInfo    Type = "info"
	TypeSystem  Type = "system"
)

type Category string

const (
	CategoryLeave        Category = "leave"
	CategoryShift        Category = "shift"
	CategoryPayroll      Category = "payroll"
	CategorySystem       Category = "system"
	CategoryAnnouncement Category = "announcement"
)
