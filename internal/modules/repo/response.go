package repo

import (
	"context"
	"errors"

	"github.com/wirelance/wirelance/internal/modules/model"
	"gorm.io/gorm"
)

type ResponseRepo interface {
	// Write records a user's interest in a project. A second write for
	// the same (user, project) pair fails with ErrDuplicateResponse.
	Write(ctx context.Context, projectID, userID int64, vacancyID *int64) (*model.ProjectResponse, error)
	ListByProject(ctx context.Context, projectID int64) ([]model.ProjectResponse, error)
}

type responseRepo struct{ db *gorm.DB }

func NewResponseRepo(db *gorm.DB) ResponseRepo {
	return &responseRepo{db: db}
}

func (r *responseRepo) Write(ctx context.Context, projectID, userID int64, vacancyID *int64) (*model.ProjectResponse, error) {
	response := &model.ProjectResponse{
		ProjectID: projectID,
		UserID:    userID,
		VacancyID: vacancyID,
	}
	err := r.db.WithContext(ctx).Create(response).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrDuplicateResponse
	}
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (r *responseRepo) ListByProject(ctx context.Context, projectID int64) ([]model.ProjectResponse, error) {
	var out []model.ProjectResponse
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("date_created DESC").
		Find(&out).Error
	return out, err
}
