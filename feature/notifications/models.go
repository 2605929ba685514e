package notifications

import "time"

// Type classifies a notification.
type Type string

const (
	TypeInfo  Type = "info"
	TypeError Type = "error"
)

// Message is an operator-visible record of a background run.
type Message struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"column:title;size:2048;not null" json:"title"`
	Type            Type      `gorm:"column:type;size:16;not null;index" json:"type"`
	SummaryMessage  string    `gorm:"column:summary_message;type:text" json:"summary_message"`
	DetailedMessage string    `gorm:"column:detailed_message;type:text" json:"detailed_message"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`
}

// TableName returns the table name.
func (Message) TableName() string { return "notification_messages" }

// RequiredColumns lists the columns written by Emit.
var RequiredColumns = []string{"title", "type", "summary_message", "detailed_message", "created_at"}
