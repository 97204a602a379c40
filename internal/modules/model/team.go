package model

import "time"

// ProjectTeam is the single team a project owns. Created empty
// together with the project.
type ProjectTeam struct {
	TeamID    int64     `gorm:"column:team_id;primaryKey;autoIncrement" json:"team_id"`
	ProjectID int64     `gorm:"column:project_id;not null;uniqueIndex" json:"project_id"`
	Created   time.Time `gorm:"column:created;autoCreateTime" json:"created"`
}

func (ProjectTeam) TableName() string { return "teams.project_teams" }

// ProjectTeamMember is a user inside a project team, optionally tied
// to the vacancy through which they joined.
type ProjectTeamMember struct {
	MemberID  int64     `gorm:"column:member_id;primaryKey;autoIncrement" json:"member_id"`
	TeamID    int64     `gorm:"column:team_id;not null;index" json:"team_id"`
	UserID    int64     `gorm:"column:user_id;not null;index" json:"user_id"`
	VacancyID *int64    `gorm:"column:vacancy_id" json:"vacancy_id"`
	Role      *string   `gorm:"column:role;type:text" json:"role"`
	Joined    time.Time `gorm:"column:joined;autoCreateTime" json:"joined"`
}

func (ProjectTeamMember) TableName() string { return "teams.project_team_members" }

// TeamMemberRole is a role label assigned to a team member.
type TeamMemberRole struct {
	RoleID   int64  `gorm:"column:role_id;primaryKey;autoIncrement" json:"role_id"`
	TeamID   int64  `gorm:"column:team_id;not null;index" json:"team_id"`
	UserID   int64  `gorm:"column:user_id;not null" json:"user_id"`
	RoleName string `gorm:"column:role_name;type:text;not null" json:"role_name"`
}

func (TeamMemberRole) TableName() string { return "roles.team_member_roles" }
