package repo

import (
	"context"
	"errors"

	"github.com/wirelance/wirelance/internal/modules/model"
	"gorm.io/gorm"
)

type VacancyRepo interface {
	Attach(ctx context.Context, projectID, vacancyID int64) error
	Detach(ctx context.Context, projectID, vacancyID int64) (bool, error)
	ListByProject(ctx context.Context, projectID int64) ([]model.ProjectVacancy, error)
	// ListAttachable returns the owner's vacancies eligible for
	// attaching: not already attached, not under moderation, not
	// rejected.
	ListAttachable(ctx context.Context, projectID, userID int64) ([]model.UserVacancy, error)
}

type vacancyRepo struct{ db *gorm.DB }

func NewVacancyRepo(db *gorm.DB) VacancyRepo {
	return &vacancyRepo{db: db}
}

func (r *vacancyRepo) Attach(ctx context.Context, projectID, vacancyID int64) error {
	err := r.db.WithContext(ctx).Create(&model.ProjectVacancy{
		ProjectID: projectID,
		VacancyID: vacancyID,
	}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateVacancy
	}
	return err
}

func (r *vacancyRepo) Detach(ctx context.Context, projectID, vacancyID int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("project_id = ? AND vacancy_id = ?", projectID, vacancyID).
		Delete(&model.ProjectVacancy{})
	return res.RowsAffected > 0, res.Error
}

func (r *vacancyRepo) ListByProject(ctx context.Context, projectID int64) ([]model.ProjectVacancy, error) {
	var out []model.ProjectVacancy
	err := r.db.WithContext(ctx).
		Preload("UserVacancy").
		Where("project_id = ?", projectID).
		Find(&out).Error
	return out, err
}

func (r *vacancyRepo) ListAttachable(ctx context.Context, projectID, userID int64) ([]model.UserVacancy, error) {
	var out []model.UserVacancy
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("moderation_status_id NOT IN ?", []model.ModerationStatus{
			model.ModerationStatusPending,
			model.ModerationStatusRejected,
		}).
		Where(`vacancy_id NOT IN (
			SELECT vacancy_id FROM projects.project_vacancies WHERE project_id = ?)`, projectID).
		Order("date_created DESC").
		Find(&out).Error
	return out, err
}
