package model

import "time"

// Dialog is a project chat thread. The catalog row carries a FK to the
// dialog, which constrains deletion order in the project cascade.
type Dialog struct {
	DialogID    int64     `gorm:"column:dialog_id;primaryKey;autoIncrement" json:"dialog_id"`
	ProjectID   *int64    `gorm:"column:project_id;index" json:"project_id"`
	DialogName  string    `gorm:"column:dialog_name;type:text" json:"dialog_name"`
	DateCreated time.Time `gorm:"column:date_created;autoCreateTime" json:"date_created"`
}

func (Dialog) TableName() string { return "communications.main_info_dialogs" }

// DialogMessage is a single chat message.
type DialogMessage struct {
	MessageID   int64     `gorm:"column:message_id;primaryKey;autoIncrement" json:"message_id"`
	DialogID    int64     `gorm:"column:dialog_id;not null;index" json:"dialog_id"`
	UserID      int64     `gorm:"column:user_id;not null" json:"user_id"`
	Message     string    `gorm:"column:message;type:text;not null" json:"message"`
	DateCreated time.Time `gorm:"column:date_created;autoCreateTime" json:"date_created"`
}

func (DialogMessage) TableName() string { return "communications.dialog_messages" }

// DialogMember is a participant of a dialog.
type DialogMember struct {
	MemberID int64     `gorm:"column:member_id;primaryKey;autoIncrement" json:"member_id"`
	DialogID int64     `gorm:"column:dialog_id;not null;index" json:"dialog_id"`
	UserID   int64     `gorm:"column:user_id;not null;index" json:"user_id"`
	Joined   time.Time `gorm:"column:joined;autoCreateTime" json:"joined"`
}

func (DialogMember) TableName() string { return "communications.dialog_members" }
