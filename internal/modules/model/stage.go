package model

// ProjectStage is a reference-list entry of project lifecycle stages
// ("idea", "active", ...), ordered by Position for catalog filters.
type ProjectStage struct {
	StageID      int    `gorm:"column:stage_id;primaryKey;autoIncrement" json:"stage_id"`
	StageName    string `gorm:"column:stage_name;type:text;not null" json:"stage_name"`
	StageSysName string `gorm:"column:stage_sys_name;type:text;not null;uniqueIndex" json:"stage_sys_name"`
	Position     int    `gorm:"column:position;not null" json:"position"`
}

func (ProjectStage) TableName() string { return "projects.project_stages" }

// UserProjectStage attaches exactly one stage to a project.
type UserProjectStage struct {
	UserStageID int64 `gorm:"column:user_stage_id;primaryKey;autoIncrement" json:"user_stage_id"`
	ProjectID   int64 `gorm:"column:project_id;not null;uniqueIndex" json:"project_id"`
	StageID     int   `gorm:"column:stage_id;not null" json:"stage_id"`
}

func (UserProjectStage) TableName() string { return "projects.user_project_stages" }
