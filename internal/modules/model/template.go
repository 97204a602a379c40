package model

// StatusTemplate is a named set of task statuses a project's board is
// configured to use.
type StatusTemplate struct {
	TemplateID   int64  `gorm:"column:template_id;primaryKey;autoIncrement" json:"template_id"`
	TemplateName string `gorm:"column:template_name;type:text;not null" json:"template_name"`
	TemplateSysName string `gorm:"column:template_sys_name;type:text;not null;uniqueIndex" json:"template_sys_name"`
}

func (StatusTemplate) TableName() string { return "templates.status_templates" }

// ProjectTemplate binds a project to its status template.
type ProjectTemplate struct {
	ProjectTemplateID int64 `gorm:"column:project_template_id;primaryKey;autoIncrement" json:"project_template_id"`
	ProjectID         int64 `gorm:"column:project_id;not null;uniqueIndex" json:"project_id"`
	TemplateID        int64 `gorm:"column:template_id;not null" json:"template_id"`
}

func (ProjectTemplate) TableName() string { return "templates.project_templates" }

// TaskStatus is a status inside a template ("Backlog", "In work"...).
// AssociationType distinguishes task statuses from epic/story ones.
type TaskStatus struct {
	StatusID        int64  `gorm:"column:status_id;primaryKey;autoIncrement" json:"status_id"`
	TemplateID      int64  `gorm:"column:template_id;not null;index" json:"template_id"`
	StatusName      string `gorm:"column:status_name;type:text;not null" json:"status_name"`
	StatusSysName   string `gorm:"column:status_sys_name;type:text;not null" json:"status_sys_name"`
	AssociationType string `gorm:"column:association_type;type:text;not null" json:"association_type"`
	Position        int    `gorm:"column:position;not null;default:0" json:"position"`
	// Nonzero when the status was added by a user on top of the
	// template's built-in set.
	AuthorID int64 `gorm:"column:author_id;not null;default:0" json:"author_id"`
}

func (TaskStatus) TableName() string { return "templates.task_statuses" }

// UserTaskTag is a user-defined tag attachable to tasks of a project.
type UserTaskTag struct {
	TagID          int64  `gorm:"column:tag_id;primaryKey;autoIncrement" json:"tag_id"`
	ProjectID      int64  `gorm:"column:project_id;not null;index" json:"project_id"`
	TagName        string `gorm:"column:tag_name;type:text;not null" json:"tag_name"`
	TagDescription string `gorm:"column:tag_description;type:text" json:"tag_description"`
	Position       int    `gorm:"column:position;not null;default:0" json:"position"`
	AuthorID       int64  `gorm:"column:author_id;not null" json:"author_id"`
}

func (UserTaskTag) TableName() string { return "project_management.user_task_tags" }
