package repo

import "errors"

var (
	// ErrNotFound is returned when the requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicateResponse is returned when a user responds to the same
	// project twice.
	ErrDuplicateResponse = errors.New("project response already exists")

	// ErrDuplicateVacancy is returned when a vacancy is already attached
	// to the project.
	ErrDuplicateVacancy = errors.New("vacancy already attached to project")

	// ErrStageMissing marks the inconsistent state of a project without
	// a stage row. Not recoverable by the caller.
	ErrStageMissing = errors.New("project has no stage row")
)
