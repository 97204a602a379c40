package model

import "time"

// ModerationStatus is the editorial gate state of a project or vacancy.
type ModerationStatus int

const (
	ModerationStatusPending ModerationStatus = iota + 1
	ModerationStatusApproved
	ModerationStatusRejected
	ModerationStatusArchived
)

var moderationStatusSysNames = map[ModerationStatus]string{
	ModerationStatusPending:  "ModerationProject",
	ModerationStatusApproved: "ApproveProject",
	ModerationStatusRejected: "RejectedProject",
	ModerationStatusArchived: "ArchivedProject",
}

// SysName maps a status to its storage value. Unknown statuses map to
// the empty string so a bad value surfaces in queries instead of
// silently matching something.
func (s ModerationStatus) SysName() string {
	return moderationStatusSysNames[s]
}

// ModerationProject tracks a project's current moderation status.
// One row per project, updated in place.
type ModerationProject struct {
	ModerationID       int64            `gorm:"column:moderation_id;primaryKey;autoIncrement" json:"moderation_id"`
	ProjectID          int64            `gorm:"column:project_id;not null;uniqueIndex" json:"project_id"`
	ModerationStatusID ModerationStatus `gorm:"column:moderation_status_id;not null" json:"moderation_status_id"`
	DateModeration     time.Time        `gorm:"column:date_moderation;autoUpdateTime" json:"date_moderation"`
}

func (ModerationProject) TableName() string { return "moderation.projects" }

// ModerationComment flags a project comment for editorial review.
type ModerationComment struct {
	ModerationCommentID int64     `gorm:"column:moderation_comment_id;primaryKey;autoIncrement" json:"moderation_comment_id"`
	CommentID           int64     `gorm:"column:comment_id;not null;index" json:"comment_id"`
	DateModeration      time.Time `gorm:"column:date_moderation;autoCreateTime" json:"date_moderation"`
}

func (ModerationComment) TableName() string { return "moderation.comments" }
