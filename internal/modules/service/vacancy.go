package service

import (
	"context"

	"github.com/wirelance/wirelance/internal/modules/model"
	"github.com/wirelance/wirelance/internal/modules/repo"
)

type VacancyService interface {
	Attach(ctx context.Context, projectID, vacancyID int64) error
	Detach(ctx context.Context, projectID, vacancyID int64) (bool, error)
	ListByProject(ctx context.Context, projectID int64) ([]model.ProjectVacancy, error)
	ListAttachable(ctx context.Context, projectID, userID int64) ([]model.UserVacancy, error)
}

type vacancyService struct{ r repo.VacancyRepo }

func NewVacancyService(r repo.VacancyRepo) VacancyService {
	return &vacancyService{r: r}
}

func (s *vacancyService) Attach(ctx context.Context, projectID, vacancyID int64) error {
	return s.r.Attach(ctx, projectID, vacancyID)
}

func (s *vacancyService) Detach(ctx context.Context, projectID, vacancyID int64) (bool, error) {
	return s.r.Detach(ctx, projectID, vacancyID)
}

func (s *vacancyService) ListByProject(ctx context.Context, projectID int64) ([]model.ProjectVacancy, error) {
	return s.r.ListByProject(ctx, projectID)
}

func (s *vacancyService) ListAttachable(ctx context.Context, projectID, userID int64) ([]model.UserVacancy, error) {
	return s.r.ListAttachable(ctx, projectID, userID)
}
