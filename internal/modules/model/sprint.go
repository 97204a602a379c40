package model

import (
	"time"

	"gorm.io/datatypes"
)

// SprintStatus is the lifecycle state of a sprint. There is no
// backward transition.
type SprintStatus int

const (
	SprintStatusNotStarted SprintStatus = iota + 1
	SprintStatusInWork
	SprintStatusCompleted
	SprintStatusClosed
)

var sprintStatusNames = map[SprintStatus]string{
	SprintStatusNotStarted: "NotStarted",
	SprintStatusInWork:     "InWork",
	SprintStatusCompleted:  "Completed",
	SprintStatusClosed:     "Closed",
}

func (s SprintStatus) String() string {
	if n, ok := sprintStatusNames[s]; ok {
		return n
	}
	return "Unknown"
}

// Sprint is a time-boxed iteration of a project's management board.
type Sprint struct {
	SprintID        int64        `gorm:"column:sprint_id;primaryKey;autoIncrement" json:"sprint_id"`
	ProjectSprintID int64        `gorm:"column:project_sprint_id;not null;uniqueIndex:uq_project_sprint,priority:2" json:"project_sprint_id"`
	ProjectID       int64        `gorm:"column:project_id;not null;index;uniqueIndex:uq_project_sprint,priority:1" json:"project_id"`
	SprintName      string       `gorm:"column:sprint_name;type:text;not null" json:"sprint_name"`
	SprintDetails   string       `gorm:"column:sprint_details;type:text" json:"sprint_details"`
	DateStart       *time.Time   `gorm:"column:date_start" json:"date_start"`
	DateEnd         *time.Time   `gorm:"column:date_end" json:"date_end"`
	SprintStatusID  SprintStatus `gorm:"column:sprint_status_id;not null;default:1" json:"sprint_status_id"`
	ExecutorID      *int64       `gorm:"column:executor_id" json:"executor_id"`

	WatcherIDs datatypes.JSONSlice[int64] `gorm:"column:watcher_ids;type:jsonb" swaggertype:"array,integer" json:"watcher_ids"`

	Created time.Time `gorm:"column:created;autoCreateTime" json:"created"`
	Updated time.Time `gorm:"column:updated;autoUpdateTime" json:"updated"`
}

func (Sprint) TableName() string { return "project_management.sprints" }

// SprintTask distributes a task into a sprint.
type SprintTask struct {
	SprintTaskID    int64 `gorm:"column:sprint_task_id;primaryKey;autoIncrement" json:"sprint_task_id"`
	ProjectID       int64 `gorm:"column:project_id;not null;index" json:"project_id"`
	ProjectSprintID int64 `gorm:"column:project_sprint_id;not null;index" json:"project_sprint_id"`
	TaskID          int64 `gorm:"column:task_id;not null" json:"task_id"`
}

func (SprintTask) TableName() string { return "project_management.sprint_tasks" }
