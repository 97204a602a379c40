package model

import (
	"time"

	"gorm.io/datatypes"
)

// ProjectTask is a task on a project's management board. TaskNumber is
// sequential per project and assigned inside the creating transaction.
type ProjectTask struct {
	TaskID       int64  `gorm:"column:task_id;primaryKey;autoIncrement" json:"task_id"`
	ProjectID    int64  `gorm:"column:project_id;not null;index;uniqueIndex:uq_project_task_number,priority:1" json:"project_id"`
	TaskNumber   int64  `gorm:"column:task_number;not null;uniqueIndex:uq_project_task_number,priority:2" json:"task_number"`
	Name         string `gorm:"column:name;type:text;not null" json:"name"`
	Details      string `gorm:"column:details;type:text" json:"details"`
	TaskStatusID int64  `gorm:"column:task_status_id;not null" json:"task_status_id"`
	TaskTypeID   int64  `gorm:"column:task_type_id;not null" json:"task_type_id"`
	ResolutionID *int64 `gorm:"column:resolution_id" json:"resolution_id"`
	PriorityID   *int64 `gorm:"column:priority_id" json:"priority_id"`
	AuthorID     int64  `gorm:"column:author_id;not null" json:"author_id"`
	ExecutorID   *int64 `gorm:"column:executor_id" json:"executor_id"`

	WatcherIDs datatypes.JSONSlice[int64] `gorm:"column:watcher_ids;type:jsonb" swaggertype:"array,integer" json:"watcher_ids"`
	TagIDs     datatypes.JSONSlice[int64] `gorm:"column:tag_ids;type:jsonb" swaggertype:"array,integer" json:"tag_ids"`

	Created time.Time `gorm:"column:created;autoCreateTime" json:"created"`
	Updated time.Time `gorm:"column:updated;autoUpdateTime" json:"updated"`
}

func (ProjectTask) TableName() string { return "project_management.project_tasks" }
