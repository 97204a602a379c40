package model

import "time"

// Ticket is a support request raised by a user.
type Ticket struct {
	TicketID   int64     `gorm:"column:ticket_id;primaryKey;autoIncrement" json:"ticket_id"`
	UserID     int64     `gorm:"column:user_id;not null;index" json:"user_id"`
	Category   string    `gorm:"column:category;type:text;not null" json:"category"`
	TicketCode string    `gorm:"column:ticket_code;type:text;not null;uniqueIndex" json:"ticket_code"`
	IsClosed   bool      `gorm:"column:is_closed;not null;default:false" json:"is_closed"`
	Created    time.Time `gorm:"column:created;autoCreateTime" json:"created"`
}

func (Ticket) TableName() string { return "communications.tickets" }

// TicketMessage is one message inside a ticket thread.
type TicketMessage struct {
	MessageID int64     `gorm:"column:message_id;primaryKey;autoIncrement" json:"message_id"`
	TicketID  int64     `gorm:"column:ticket_id;not null;index" json:"ticket_id"`
	UserID    int64     `gorm:"column:user_id;not null" json:"user_id"`
	Message   string    `gorm:"column:message;type:text;not null" json:"message"`
	Created   time.Time `gorm:"column:created;autoCreateTime" json:"created"`
}

func (TicketMessage) TableName() string { return "communications.ticket_messages" }
