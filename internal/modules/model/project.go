package model

import (
	"time"

	"github.com/google/uuid"
)

// UserProject is a marketplace project owned by a user. Freshly
// created projects enter the catalog only after moderation approval.
type UserProject struct {
	ProjectID      int64     `gorm:"column:project_id;primaryKey;autoIncrement" json:"project_id"`
	ProjectName    string    `gorm:"column:project_name;type:text;not null" json:"project_name"`
	ProjectDetails string    `gorm:"column:project_details;type:text;not null" json:"project_details"`
	UserID         int64     `gorm:"column:user_id;not null;index" json:"user_id"`
	ProjectCode    uuid.UUID `gorm:"column:project_code;type:uuid;not null" json:"project_code"`
	Conditions     string    `gorm:"column:conditions;type:text" json:"conditions"`
	Demands        string    `gorm:"column:demands;type:text" json:"demands"`
	IsPublic       bool      `gorm:"column:is_public;not null;default:true" json:"is_public"`
	// Name of the management-system workspace, set when the owner
	// enables the project management module.
	ManagementName *string   `gorm:"column:management_name;type:text" json:"management_name"`
	DateCreated    time.Time `gorm:"column:date_created;autoCreateTime" json:"date_created"`
}

func (UserProject) TableName() string { return "projects.user_projects" }

// CatalogProject is the published catalog row of an approved project.
// It exists only while the project is approved and public.
type CatalogProject struct {
	CatalogProjectID int64 `gorm:"column:catalog_project_id;primaryKey;autoIncrement" json:"catalog_project_id"`
	ProjectID        int64 `gorm:"column:project_id;not null;uniqueIndex" json:"project_id"`
}

func (CatalogProject) TableName() string { return "projects.catalog_projects" }

// ProjectStatus mirrors the moderation state into a human-readable
// status row shown on the owner's dashboard.
type ProjectStatus struct {
	StatusID          int64  `gorm:"column:status_id;primaryKey;autoIncrement" json:"status_id"`
	ProjectID         int64  `gorm:"column:project_id;not null;uniqueIndex" json:"project_id"`
	ProjectStatusSysName string `gorm:"column:project_status_sys_name;type:text;not null" json:"project_status_sys_name"`
	ProjectStatusName    string `gorm:"column:project_status_name;type:text;not null" json:"project_status_name"`
}

func (ProjectStatus) TableName() string { return "projects.project_statuses" }

// ArchivedProject marks a project removed from active circulation.
type ArchivedProject struct {
	ArchiveID    int64     `gorm:"column:archive_id;primaryKey;autoIncrement" json:"archive_id"`
	ProjectID    int64     `gorm:"column:project_id;not null;uniqueIndex" json:"project_id"`
	UserID       int64     `gorm:"column:user_id;not null" json:"user_id"`
	DateArchived time.Time `gorm:"column:date_archived;autoCreateTime" json:"date_archived"`
}

func (ArchivedProject) TableName() string { return "projects.archived_projects" }
