package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/wirelance/wirelance/internal/modules/model"
	"gorm.io/gorm"
)

// cascadeState is threaded through the delete steps. Ids resolved by
// earlier steps (team, company) are reused by later ones, and the
// result payload accumulates what the owner gets notified about.
type cascadeState struct {
	projectID int64
	userID    int64
	teamID    int64
	companyID int64
	result    RemoveProjectResult
}

// cascadeStep is one "delete this table for the project" unit. Steps
// are ordered: several tables carry foreign keys that block deletion
// of their parents, so the order below is load-bearing.
type cascadeStep struct {
	name string
	run  func(tx *gorm.DB, st *cascadeState) error
}

// removeProjectSteps returns the ordered cascade. Kept as a function
// so the step list is inspectable without a database.
func removeProjectSteps() []cascadeStep {
	return []cascadeStep{
		{"project_vacancies", stepRemoveVacancies},
		{"project_chat", stepRemoveChat},
		{"team_members", stepRemoveTeamMembers},
		{"team_member_vacancies", stepRemoveTeamMemberVacancies},
		{"project_team", stepRemoveTeam},
		{"project_comments", stepRemoveComments},
		{"dialog_main_info", stepRemoveDialogMainInfo},
		{"catalog_row", stepRemoveCatalogRow},
		{"status_row", stepRemoveStatusRow},
		{"moderation_row", stepRemoveModerationRow},
		{"stage_row", stepRemoveStageRow},
		{"move_not_completed_settings", stepRemoveMoveNotCompletedSettings},
		{"user_view_strategy", stepRemoveViewStrategy},
		{"sprint_duration_settings", stepRemoveSprintDurationSettings},
		{"company_project", stepRemoveCompanyProject},
		{"company_workspace", stepRemoveCompanyWorkspace},
		{"user_project", stepRemoveUserProject},
		{"notifications", stepRemoveNotifications},
		{"team_member_roles", stepRemoveTeamMemberRoles},
		{"wiki_tree", stepRemoveWiki},
		{"leftover_settings", stepRemoveLeftoverSettings},
	}
}

// Remove deletes the project and every dependent row set in one
// read-committed transaction. Any failing step rolls back the whole
// cascade; the caller receives no partial effect.
func (r *projectRepo) Remove(ctx context.Context, projectID, userID int64) (*RemoveProjectResult, error) {
	st := &cascadeState{projectID: projectID, userID: userID}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, step := range removeProjectSteps() {
			if err := step.run(tx, st); err != nil {
				return fmt.Errorf("remove project %d: step %s: %w", projectID, step.name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	st.result.Success = true
	return &st.result, nil
}

func stepRemoveVacancies(tx *gorm.DB, st *cascadeState) error {
	// Capture the vacancy names first: they go into the owner's
	// removal notification.
	var names []string
	err := tx.Model(&model.ProjectVacancy{}).
		Joins("JOIN vacancies.user_vacancies uv ON uv.vacancy_id = project_vacancies.vacancy_id").
		Where("project_vacancies.project_id = ?", st.projectID).
		Pluck("uv.vacancy_name", &names).Error
	if err != nil {
		return err
	}
	st.result.RemovedVacancies = names

	return tx.Where("project_id = ?", st.projectID).Delete(&model.ProjectVacancy{}).Error
}

func stepRemoveChat(tx *gorm.DB, st *cascadeState) error {
	// Dialogs are resolved either through the user's membership or,
	// when that yields nothing, directly by project id.
	var dialogIDs []int64
	err := tx.Model(&model.DialogMember{}).
		Joins("JOIN communications.main_info_dialogs d ON d.dialog_id = dialog_members.dialog_id").
		Where("dialog_members.user_id = ? AND d.project_id = ?", st.userID, st.projectID).
		Pluck("dialog_members.dialog_id", &dialogIDs).Error
	if err != nil {
		return err
	}

	if len(dialogIDs) == 0 {
		err = tx.Model(&model.Dialog{}).
			Where("project_id = ?", st.projectID).
			Pluck("dialog_id", &dialogIDs).Error
		if err != nil {
			return err
		}
	}

	if len(dialogIDs) == 0 {
		return nil
	}

	// Messages before members: the catalog row holds a FK to the
	// dialog, so the dialog itself is removed later in the cascade.
	if err := tx.Where("dialog_id IN ?", dialogIDs).Delete(&model.DialogMessage{}).Error; err != nil {
		return err
	}
	return tx.Where("dialog_id IN ?", dialogIDs).Delete(&model.DialogMember{}).Error
}

func stepRemoveTeamMembers(tx *gorm.DB, st *cascadeState) error {
	var team model.ProjectTeam
	err := tx.Where("project_id = ?", st.projectID).First(&team).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	st.teamID = team.TeamID

	return tx.Where("team_id = ?", team.TeamID).Delete(&model.ProjectTeamMember{}).Error
}

func stepRemoveTeamMemberVacancies(tx *gorm.DB, st *cascadeState) error {
	if st.teamID == 0 {
		return nil
	}
	// These are the vacancies members were invited through, keyed by
	// team membership rather than by project.
	return tx.Exec(
		`DELETE FROM projects.project_vacancies pv
		  USING teams.project_team_members tm
		  WHERE tm.team_id = ? AND tm.vacancy_id = pv.vacancy_id`,
		st.teamID,
	).Error
}

func stepRemoveTeam(tx *gorm.DB, st *cascadeState) error {
	return tx.Where("project_id = ?", st.projectID).Delete(&model.ProjectTeam{}).Error
}

func stepRemoveComments(tx *gorm.DB, st *cascadeState) error {
	var commentIDs []int64
	err := tx.Model(&model.ProjectComment{}).
		Where("project_id = ?", st.projectID).
		Pluck("comment_id", &commentIDs).Error
	if err != nil {
		return err
	}
	if len(commentIDs) == 0 {
		return nil
	}

	if err := tx.Where("comment_id IN ?", commentIDs).Delete(&model.ModerationComment{}).Error; err != nil {
		return err
	}
	return tx.Where("comment_id IN ?", commentIDs).Delete(&model.ProjectComment{}).Error
}

func stepRemoveDialogMainInfo(tx *gorm.DB, st *cascadeState) error {
	return tx.Where("project_id = ?", st.projectID).Delete(&model.Dialog{}).Error
}

func stepRemoveCatalogRow(tx *gorm.DB, st *cascadeState) error {
	return tx.Where("project_id = ?", st.projectID).Delete(&model.CatalogProject{}).Error
}

func stepRemoveStatusRow(tx *gorm.DB, st *cascadeState) error {
	return tx.Where("project_id = ?", st.projectID).Delete(&model.ProjectStatus{}).Error
}

func stepRemoveModerationRow(tx *gorm.DB, st *cascadeState) error {
	return tx.Where("project_id = ?", st.projectID).Delete(&model.ModerationProject{}).Error
}

func stepRemoveStageRow(tx *gorm.DB, st *cascadeState) error {
	return tx.Where("project_id = ?", st.projectID).Delete(&model.UserProjectStage{}).Error
}

func stepRemoveMoveNotCompletedSettings(tx *gorm.DB, st *cascadeState) error {
	return tx.Where("project_id = ?", st.projectID).Delete(&model.MoveNotCompletedTasksSetting{}).Error
}

func stepRemoveViewStrategy(tx *gorm.DB, st *cascadeState) error {
	return tx.Where("project_id = ? AND user_id = ?", st.projectID, st.userID).
		Delete(&model.UserViewStrategy{}).Error
}

func stepRemoveSprintDurationSettings(tx *gorm.DB, st *cascadeState) error {
	return tx.Where("project_id = ?", st.projectID).Delete(&model.SprintDurationSetting{}).Error
}

func stepRemoveCompanyProject(tx *gorm.DB, st *cascadeState) error {
	var link model.CompanyProject
	err := tx.Where("project_id = ?", st.projectID).First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	st.companyID = link.CompanyID

	return tx.Exec(
		`DELETE FROM project_management.organization_projects
		  WHERE project_id = ? AND company_id = ?`,
		st.projectID, st.companyID,
	).Error
}

func stepRemoveCompanyWorkspace(tx *gorm.DB, st *cascadeState) error {
	if st.companyID == 0 {
		return nil
	}
	return tx.Exec(
		`DELETE FROM project_management.workspaces
		  WHERE project_id = ? AND company_id = ?`,
		st.projectID, st.companyID,
	).Error
}

func stepRemoveUserProject(tx *gorm.DB, st *cascadeState) error {
	var project model.UserProject
	err := tx.Where("project_id = ? AND user_id = ?", st.projectID, st.userID).
		First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	st.result.ProjectName = project.ProjectName

	return tx.Delete(&project).Error
}

func stepRemoveNotifications(tx *gorm.DB, st *cascadeState) error {
	return tx.Where("project_id = ?", st.projectID).Delete(&model.Notification{}).Error
}

func stepRemoveTeamMemberRoles(tx *gorm.DB, st *cascadeState) error {
	if st.teamID == 0 {
		return nil
	}
	return tx.Where("team_id = ?", st.teamID).Delete(&model.TeamMemberRole{}).Error
}

func stepRemoveWiki(tx *gorm.DB, st *cascadeState) error {
	var tree model.WikiTree
	err := tx.Where("project_id = ?", st.projectID).First(&tree).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	// Child-before-parent: pages, folder relations, folders, tree.
	if err := tx.Where("wiki_tree_id = ?", tree.WikiTreeID).Delete(&model.WikiPage{}).Error; err != nil {
		return err
	}
	if err := tx.Exec(
		`DELETE FROM documents.wiki_folder_relations r
		  USING documents.wiki_folders f
		  WHERE f.wiki_tree_id = ? AND (r.folder_id = f.folder_id OR r.parent_folder_id = f.folder_id)`,
		tree.WikiTreeID,
	).Error; err != nil {
		return err
	}
	if err := tx.Where("wiki_tree_id = ?", tree.WikiTreeID).Delete(&model.WikiFolder{}).Error; err != nil {
		return err
	}
	return tx.Delete(&tree).Error
}

func stepRemoveLeftoverSettings(tx *gorm.DB, st *cascadeState) error {
	return tx.Where("project_id = ?", st.projectID).Delete(&model.ProjectSetting{}).Error
}
