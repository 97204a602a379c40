package repo

import (
	"context"
	"errors"

	"github.com/wirelance/wirelance/internal/modules/model"
	"gorm.io/gorm"
)

type DocumentRepo interface {
	Create(ctx context.Context, doc *model.ProjectDocument) error
	GetByID(ctx context.Context, documentID int64) (*model.ProjectDocument, error)
	ListByProject(ctx context.Context, projectID int64) ([]model.ProjectDocument, error)
	ListByTask(ctx context.Context, projectID, taskID int64) ([]model.ProjectDocument, error)
	Remove(ctx context.Context, documentID int64) error
}

type documentRepo struct{ db *gorm.DB }

func NewDocumentRepo(db *gorm.DB) DocumentRepo {
	return &documentRepo{db: db}
}

func (r *documentRepo) Create(ctx context.Context, doc *model.ProjectDocument) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *documentRepo) GetByID(ctx context.Context, documentID int64) (*model.ProjectDocument, error) {
	var doc model.ProjectDocument
	err := r.db.WithContext(ctx).Where("document_id = ?", documentID).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepo) ListByProject(ctx context.Context, projectID int64) ([]model.ProjectDocument, error) {
	var docs []model.ProjectDocument
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created DESC").
		Find(&docs).Error
	return docs, err
}

func (r *documentRepo) ListByTask(ctx context.Context, projectID, taskID int64) ([]model.ProjectDocument, error) {
	var docs []model.ProjectDocument
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND task_id = ?", projectID, taskID).
		Order("created DESC").
		Find(&docs).Error
	return docs, err
}

func (r *documentRepo) Remove(ctx context.Context, documentID int64) error {
	res := r.db.WithContext(ctx).Where("document_id = ?", documentID).Delete(&model.ProjectDocument{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
