package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wirelance/wirelance/internal/modules/model"
	"gorm.io/gorm"
)

// CreateProjectInput carries the fields of a new project.
type CreateProjectInput struct {
	ProjectName    string
	ProjectDetails string
	UserID         int64
	Conditions     string
	Demands        string
	StageID        int
}

// UpdateProjectInput carries the mutable fields of a project update.
type UpdateProjectInput struct {
	ProjectID      int64
	UserID         int64
	ProjectName    string
	ProjectDetails string
	Conditions     string
	Demands        string
	StageID        int
}

// RemoveProjectResult is what the delete cascade reports back. It is
// used purely for notifying the affected owner.
type RemoveProjectResult struct {
	Success          bool
	RemovedVacancies []string
	ProjectName      string
}

type ProjectRepo interface {
	Create(ctx context.Context, in CreateProjectInput) (*model.UserProject, error)
	Update(ctx context.Context, in UpdateProjectInput) (*model.UserProject, error)
	GetByID(ctx context.Context, projectID int64) (*model.UserProject, error)
	GetStage(ctx context.Context, projectID int64) (*model.ProjectStage, error)
	CheckProjectName(ctx context.Context, projectName string, userID int64) (bool, error)
	UpdateVisible(ctx context.Context, projectID int64, isPublic bool) error
	Archive(ctx context.Context, projectID, userID int64) error
	Unarchive(ctx context.Context, projectID int64) (bool, error)
	Remove(ctx context.Context, projectID, userID int64) (*RemoveProjectResult, error)
	GetTeam(ctx context.Context, projectID int64) (*model.ProjectTeam, error)
	ListStages(ctx context.Context) ([]model.ProjectStage, error)
}

type projectRepo struct{ db *gorm.DB }

func NewProjectRepo(db *gorm.DB) ProjectRepo {
	return &projectRepo{db: db}
}

// notSpecified substitutes blank optional free-text fields.
const notSpecified = "Not specified"

// Create inserts the project with its status, stage, moderation and
// team rows in one transaction. A failure at any step rolls back the
// whole insert set.
func (r *projectRepo) Create(ctx context.Context, in CreateProjectInput) (*model.UserProject, error) {
	conditions := in.Conditions
	if conditions == "" {
		conditions = notSpecified
	}
	demands := in.Demands
	if demands == "" {
		demands = notSpecified
	}

	project := &model.UserProject{
		ProjectName:    in.ProjectName,
		ProjectDetails: in.ProjectDetails,
		UserID:         in.UserID,
		ProjectCode:    uuid.New(),
		Conditions:     conditions,
		Demands:        demands,
		IsPublic:       true,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}

		status := model.ModerationStatusPending
		if err := tx.Create(&model.ProjectStatus{
			ProjectID:            project.ProjectID,
			ProjectStatusSysName: status.SysName(),
			ProjectStatusName:    "Moderation",
		}).Error; err != nil {
			return err
		}

		if err := tx.Create(&model.UserProjectStage{
			ProjectID: project.ProjectID,
			StageID:   in.StageID,
		}).Error; err != nil {
			return err
		}

		if err := tx.Create(&model.ModerationProject{
			ProjectID:          project.ProjectID,
			ModerationStatusID: status,
		}).Error; err != nil {
			return err
		}

		return tx.Create(&model.ProjectTeam{ProjectID: project.ProjectID}).Error
	})
	if err != nil {
		return nil, err
	}
	return project, nil
}

// Update overwrites the mutable fields and returns the project to the
// pending-moderation state. A project without a stage row is treated
// as fatally inconsistent.
func (r *projectRepo) Update(ctx context.Context, in UpdateProjectInput) (*model.UserProject, error) {
	var project model.UserProject

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND project_id = ?", in.UserID, in.ProjectID).
			First(&project).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		project.ProjectName = in.ProjectName
		project.ProjectDetails = in.ProjectDetails
		project.Conditions = in.Conditions
		project.Demands = in.Demands
		if err := tx.Save(&project).Error; err != nil {
			return err
		}

		var stage model.UserProjectStage
		err = tx.Where("project_id = ?", in.ProjectID).First(&stage).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStageMissing
		}
		if err != nil {
			return err
		}
		stage.StageID = in.StageID
		if err := tx.Save(&stage).Error; err != nil {
			return err
		}

		// Edited projects re-enter moderation.
		var moderation model.ModerationProject
		err = tx.Where("project_id = ?", in.ProjectID).First(&moderation).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(&model.ModerationProject{
				ProjectID:          in.ProjectID,
				ModerationStatusID: model.ModerationStatusPending,
			}).Error
		case err != nil:
			return err
		default:
			return tx.Model(&moderation).
				Update("moderation_status_id", model.ModerationStatusPending).Error
		}
	})
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepo) GetByID(ctx context.Context, projectID int64) (*model.UserProject, error) {
	var project model.UserProject
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepo) GetStage(ctx context.Context, projectID int64) (*model.ProjectStage, error) {
	var link model.UserProjectStage
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrStageMissing
	}
	if err != nil {
		return nil, err
	}

	var stage model.ProjectStage
	if err := r.db.WithContext(ctx).Where("stage_id = ?", link.StageID).First(&stage).Error; err != nil {
		return nil, err
	}
	return &stage, nil
}

func (r *projectRepo) CheckProjectName(ctx context.Context, projectName string, userID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.UserProject{}).
		Where("user_id = ? AND project_name = ?", userID, projectName).
		Count(&count).Error
	return count > 0, err
}

// UpdateVisible flips the visibility flag. Idempotent.
func (r *projectRepo) UpdateVisible(ctx context.Context, projectID int64, isPublic bool) error {
	return r.db.WithContext(ctx).Model(&model.UserProject{}).
		Where("project_id = ?", projectID).
		Update("is_public", isPublic).Error
}

// Archive inserts the archive marker and flips moderation status.
func (r *projectRepo) Archive(ctx context.Context, projectID, userID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&model.ArchivedProject{
			ProjectID: projectID,
			UserID:    userID,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&model.ModerationProject{}).
			Where("project_id = ?", projectID).
			Update("moderation_status_id", model.ModerationStatusArchived).Error
	})
}

// Unarchive removes the archive marker and re-enters moderation.
// Returns false when there was no marker to remove.
func (r *projectRepo) Unarchive(ctx context.Context, projectID int64) (bool, error) {
	var removed bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("project_id = ?", projectID).Delete(&model.ArchivedProject{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		removed = true
		return tx.Model(&model.ModerationProject{}).
			Where("project_id = ?", projectID).
			Update("moderation_status_id", model.ModerationStatusPending).Error
	})
	return removed, err
}

func (r *projectRepo) GetTeam(ctx context.Context, projectID int64) (*model.ProjectTeam, error) {
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

func (r *projectRepo) ListStages(ctx context.Context) ([]model.ProjectStage, error) {
	var stages []model.ProjectStage
	return stages, r.db.WithContext(ctx).Order("position").Find(&stages).Error
}
