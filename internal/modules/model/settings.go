package model

// MoveNotCompletedTasksSetting controls what happens to unfinished
// tasks when a sprint completes.
type MoveNotCompletedTasksSetting struct {
	SettingID int64 `gorm:"column:setting_id;primaryKey;autoIncrement" json:"setting_id"`
	ProjectID int64 `gorm:"column:project_id;not null;uniqueIndex" json:"project_id"`
	IsMove    bool  `gorm:"column:is_move;not null;default:true" json:"is_move"`
}

func (MoveNotCompletedTasksSetting) TableName() string {
	return "settings.move_not_completed_tasks"
}

// UserViewStrategy is the board view a user picked for a project
// (kanban or scrum).
type UserViewStrategy struct {
	StrategyID int64  `gorm:"column:strategy_id;primaryKey;autoIncrement" json:"strategy_id"`
	ProjectID  int64  `gorm:"column:project_id;not null;index;uniqueIndex:uq_strategy_project_user,priority:1" json:"project_id"`
	UserID     int64  `gorm:"column:user_id;not null;uniqueIndex:uq_strategy_project_user,priority:2" json:"user_id"`
	Strategy   string `gorm:"column:strategy;type:text;not null" json:"strategy"`
}

func (UserViewStrategy) TableName() string { return "settings.user_view_strategies" }

// SprintDurationSetting is the project's configured sprint length.
type SprintDurationSetting struct {
	SettingID    int64 `gorm:"column:setting_id;primaryKey;autoIncrement" json:"setting_id"`
	ProjectID    int64 `gorm:"column:project_id;not null;uniqueIndex" json:"project_id"`
	DurationDays int   `gorm:"column:duration_days;not null;default:14" json:"duration_days"`
}

func (SprintDurationSetting) TableName() string { return "settings.sprint_durations" }

// ProjectSetting is a generic keyed setting row. The delete cascade
// runs a final sweep over this table after the targeted deletes.
type ProjectSetting struct {
	SettingID  int64  `gorm:"column:setting_id;primaryKey;autoIncrement" json:"setting_id"`
	ProjectID  int64  `gorm:"column:project_id;not null;index" json:"project_id"`
	ParamKey   string `gorm:"column:param_key;type:text;not null" json:"param_key"`
	ParamValue string `gorm:"column:param_value;type:text" json:"param_value"`
}

func (ProjectSetting) TableName() string { return "settings.project_settings" }
