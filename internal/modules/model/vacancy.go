package model

import "time"

// UserVacancy is a job posting owned by a user. Vacancies go through
// the same moderation gate as projects.
type UserVacancy struct {
	VacancyID          int64            `gorm:"column:vacancy_id;primaryKey;autoIncrement" json:"vacancy_id"`
	VacancyName        string           `gorm:"column:vacancy_name;type:text;not null" json:"vacancy_name"`
	VacancyText        string           `gorm:"column:vacancy_text;type:text;not null" json:"vacancy_text"`
	UserID             int64            `gorm:"column:user_id;not null;index" json:"user_id"`
	ModerationStatusID ModerationStatus `gorm:"column:moderation_status_id;not null;default:1" json:"moderation_status_id"`
	DateCreated        time.Time        `gorm:"column:date_created;autoCreateTime" json:"date_created"`
}

func (UserVacancy) TableName() string { return "vacancies.user_vacancies" }

// ProjectVacancy attaches a vacancy to a project.
type ProjectVacancy struct {
	ProjectVacancyID int64 `gorm:"column:project_vacancy_id;primaryKey;autoIncrement" json:"project_vacancy_id"`
	ProjectID        int64 `gorm:"column:project_id;not null;index;uniqueIndex:uq_project_vacancy,priority:1" json:"project_id"`
	VacancyID        int64 `gorm:"column:vacancy_id;not null;uniqueIndex:uq_project_vacancy,priority:2" json:"vacancy_id"`

	UserVacancy *UserVacancy `gorm:"foreignKey:VacancyID;references:VacancyID" json:"user_vacancy,omitempty"`
}

func (ProjectVacancy) TableName() string { return "projects.project_vacancies" }
