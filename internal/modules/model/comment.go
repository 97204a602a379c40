package model

import "time"

// ProjectComment is a public comment under a project's catalog card.
type ProjectComment struct {
	CommentID   int64     `gorm:"column:comment_id;primaryKey;autoIncrement" json:"comment_id"`
	ProjectID   int64     `gorm:"column:project_id;not null;index" json:"project_id"`
	UserID      int64     `gorm:"column:user_id;not null" json:"user_id"`
	CommentText string    `gorm:"column:comment_text;type:text;not null" json:"comment_text"`
	DateCreated time.Time `gorm:"column:date_created;autoCreateTime" json:"date_created"`
}

func (ProjectComment) TableName() string { return "projects.project_comments" }
