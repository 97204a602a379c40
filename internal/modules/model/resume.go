package model

import "time"

// Resume is a user's public profile info shown in the resume catalog.
type Resume struct {
	ProfileInfoID int64     `gorm:"column:profile_info_id;primaryKey;autoIncrement" json:"profile_info_id"`
	UserID        int64     `gorm:"column:user_id;not null;uniqueIndex" json:"user_id"`
	FirstName     string    `gorm:"column:first_name;type:text" json:"first_name"`
	LastName      string    `gorm:"column:last_name;type:text" json:"last_name"`
	Patronymic    string    `gorm:"column:patronymic;type:text" json:"patronymic"`
	Job           string    `gorm:"column:job;type:text" json:"job"`
	Aboutme       string    `gorm:"column:aboutme;type:text" json:"aboutme"`
	IsShortFirstName bool   `gorm:"column:is_short_first_name;not null;default:false" json:"is_short_first_name"`
	DateCreated   time.Time `gorm:"column:date_created;autoCreateTime" json:"date_created"`

	// Filled from the users table when listing; not a column.
	UserCode string `gorm:"-" json:"user_code"`
}

func (Resume) TableName() string { return "profile.profiles_info" }
