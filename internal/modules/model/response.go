package model

import "time"

// ProjectResponse is a user's expression of interest in a project,
// optionally against a specific vacancy. Unique per (user, project).
type ProjectResponse struct {
	ResponseID  int64     `gorm:"column:response_id;primaryKey;autoIncrement" json:"response_id"`
	ProjectID   int64     `gorm:"column:project_id;not null;uniqueIndex:uq_project_response,priority:1" json:"project_id"`
	UserID      int64     `gorm:"column:user_id;not null;uniqueIndex:uq_project_response,priority:2" json:"user_id"`
	VacancyID   *int64    `gorm:"column:vacancy_id" json:"vacancy_id"`
	DateCreated time.Time `gorm:"column:date_created;autoCreateTime" json:"date_created"`
}

func (ProjectResponse) TableName() string { return "projects.project_responses" }
