package repo

import (
	"context"
	"errors"

	"github.com/wirelance/wirelance/internal/modules/model"
	"gorm.io/gorm"
)

type ResumeRepo interface {
	List(ctx context.Context) ([]model.Resume, error)
	Search(ctx context.Context, searchText string) ([]model.Resume, error)
	Page(ctx context.Context, page, pageSize int) ([]model.Resume, int64, error)
	GetByID(ctx context.Context, resumeID int64) (*model.Resume, error)
}

type resumeRepo struct{ db *gorm.DB }

func NewResumeRepo(db *gorm.DB) ResumeRepo {
	return &resumeRepo{db: db}
}

// resumeCodeSelect enriches each row with the owner's public user code.
const resumeCodeSelect = `profiles_info.*,
	(SELECT u.user_code FROM dbo.users u WHERE u.user_id = profiles_info.user_id) AS user_code`

func (r *resumeRepo) List(ctx context.Context) ([]model.Resume, error) {
	var out []model.Resume
	err := r.db.WithContext(ctx).
		Select(resumeCodeSelect).
		Order("profile_info_id DESC").
		Find(&out).Error
	return out, err
}

func (r *resumeRepo) Search(ctx context.Context, searchText string) ([]model.Resume, error) {
	pattern := "%" + searchText + "%"
	var out []model.Resume
	err := r.db.WithContext(ctx).
		Select(resumeCodeSelect).
		Where("first_name ILIKE ? OR last_name ILIKE ? OR job ILIKE ?", pattern, pattern, pattern).
		Order("profile_info_id DESC").
		Find(&out).Error
	return out, err
}

func (r *resumeRepo) Page(ctx context.Context, page, pageSize int) ([]model.Resume, int64, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Resume{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []model.Resume
	err := r.db.WithContext(ctx).
		Select(resumeCodeSelect).
		Order("profile_info_id DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&out).Error
	return out, total, err
}

func (r *resumeRepo) GetByID(ctx context.Context, resumeID int64) (*model.Resume, error) {
	var resume model.Resume
	err := r.db.WithContext(ctx).
		Select(resumeCodeSelect).
		Where("profile_info_id = ?", resumeID).
		First(&resume).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &resume, nil
}
