package model

import "time"

// Notification is a persisted user notification (project invite,
// moderation outcome). Live delivery goes through the websocket hub;
// this row is what an offline user sees on next visit.
type Notification struct {
	NotificationID   int64     `gorm:"column:notification_id;primaryKey;autoIncrement" json:"notification_id"`
	ProjectID        *int64    `gorm:"column:project_id;index" json:"project_id"`
	UserID           int64     `gorm:"column:user_id;not null;index" json:"user_id"`
	NotificationType string    `gorm:"column:notification_type;type:text;not null" json:"notification_type"`
	NotificationText string    `gorm:"column:notification_text;type:text;not null" json:"notification_text"`
	IsShown          bool      `gorm:"column:is_shown;not null;default:false" json:"is_shown"`
	DateCreated      time.Time `gorm:"column:date_created;autoCreateTime" json:"date_created"`
}

func (Notification) TableName() string { return "projects.notifications" }
