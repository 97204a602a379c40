package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModerationStatus_SysName(t *testing.T) {
	tests := []struct {
		name     string
		status   ModerationStatus
		expected string
	}{
		{name: "pending", status: ModerationStatusPending, expected: "ModerationProject"},
		{name: "approved", status: ModerationStatusApproved, expected: "ApproveProject"},
		{name: "rejected", status: ModerationStatusRejected, expected: "RejectedProject"},
		{name: "archived", status: ModerationStatusArchived, expected: "ArchivedProject"},
		{name: "unknown maps to empty", status: ModerationStatus(99), expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.SysName())
		})
	}
}

func TestSprintStatus_String(t *testing.T) {
	tests := []struct {
		name     string
		status   SprintStatus
		expected string
	}{
		{name: "not started", status: SprintStatusNotStarted, expected: "NotStarted"},
		{name: "in work", status: SprintStatusInWork, expected: "InWork"},
		{name: "completed", status: SprintStatusCompleted, expected: "Completed"},
		{name: "closed", status: SprintStatusClosed, expected: "Closed"},
		{name: "unknown", status: SprintStatus(0), expected: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.String())
		})
	}
}
