package repo

import (
	"context"
	"errors"

	"github.com/wirelance/wirelance/internal/modules/model"
	"gorm.io/gorm"
)

type TeamRepo interface {
	GetByProjectID(ctx context.Context, projectID int64) (*model.ProjectTeam, error)
	ListMembers(ctx context.Context, teamID int64) ([]model.ProjectTeamMember, error)
	AddMember(ctx context.Context, member *model.ProjectTeamMember) error
	RemoveMember(ctx context.Context, teamID, userID int64) (bool, error)
}

type teamRepo struct{ db *gorm.DB }

func NewTeamRepo(db *gorm.DB) TeamRepo {
	return &teamRepo{db: db}
}

func (r *teamRepo) GetByProjectID(ctx context.Context, projectID int64) (*model.ProjectTeam, error) {
	var team model.ProjectTeam
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).First(&team).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *teamRepo) ListMembers(ctx context.Context, teamID int64) ([]model.ProjectTeamMember, error) {
	var members []model.ProjectTeamMember
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("joined").
		Find(&members).Error
	return members, err
}

func (r *teamRepo) AddMember(ctx context.Context, member *model.ProjectTeamMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *teamRepo) RemoveMember(ctx context.Context, teamID, userID int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Delete(&model.ProjectTeamMember{})
	return res.RowsAffected > 0, res.Error
}
