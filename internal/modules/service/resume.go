package service

import (
	"context"

	"github.com/wirelance/wirelance/internal/modules/model"
	"github.com/wirelance/wirelance/internal/modules/repo"
)

type ResumeService interface {
	List(ctx context.Context) ([]model.Resume, error)
	Search(ctx context.Context, searchText string) ([]model.Resume, error)
	Page(ctx context.Context, page, pageSize int) (*ResumePageOutput, error)
	GetByID(ctx context.Context, resumeID int64) (*model.Resume, error)
}

// ResumePageOutput is one page of resumes plus the total count.
type ResumePageOutput struct {
	Resumes []model.Resume `json:"resumes"`
	Total   int64          `json:"total"`
	Page    int            `json:"page"`
}

type resumeService struct{ r repo.ResumeRepo }

func NewResumeService(r repo.ResumeRepo) ResumeService {
	return &resumeService{r: r}
}

func (s *resumeService) List(ctx context.Context) ([]model.Resume, error) {
	return s.r.List(ctx)
}

func (s *resumeService) Search(ctx context.Context, searchText string) ([]model.Resume, error) {
	if searchText == "" {
		return s.r.List(ctx)
	}
	return s.r.Search(ctx, searchText)
}

func (s *resumeService) Page(ctx context.Context, page, pageSize int) (*ResumePageOutput, error) {
	if pageSize <= 0 {
		pageSize = 20
	}
	resumes, total, err := s.r.Page(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	return &ResumePageOutput{Resumes: resumes, Total: total, Page: page}, nil
}

func (s *resumeService) GetByID(ctx context.Context, resumeID int64) (*model.Resume, error) {
	return s.r.GetByID(ctx, resumeID)
}
