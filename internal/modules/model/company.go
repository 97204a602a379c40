package model

// CompanyProject links a project to its owning organization.
type CompanyProject struct {
	CompanyProjectID int64 `gorm:"column:company_project_id;primaryKey;autoIncrement" json:"company_project_id"`
	CompanyID        int64 `gorm:"column:company_id;not null;index" json:"company_id"`
	ProjectID        int64 `gorm:"column:project_id;not null;uniqueIndex" json:"project_id"`
}

func (CompanyProject) TableName() string { return "project_management.organization_projects" }

// CompanyWorkspace places a project inside the company's shared workspace.
type CompanyWorkspace struct {
	WorkspaceID int64 `gorm:"column:workspace_id;primaryKey;autoIncrement" json:"workspace_id"`
	CompanyID   int64 `gorm:"column:company_id;not null;index" json:"company_id"`
	ProjectID   int64 `gorm:"column:project_id;not null;index" json:"project_id"`
}

func (CompanyWorkspace) TableName() string { return "project_management.workspaces" }
