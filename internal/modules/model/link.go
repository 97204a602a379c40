package model

import "fmt"

// LinkType is the semantic relation between two tasks.
type LinkType string

const (
	LinkTypeLink   LinkType = "Link"
	LinkTypeParent LinkType = "Parent"
	LinkTypeChild  LinkType = "Child"
	LinkTypeDepend LinkType = "Depend"
)

// ParseLinkType maps the wire value onto a LinkType.
func ParseLinkType(s string) (LinkType, error) {
	switch LinkType(s) {
	case LinkTypeLink, LinkTypeParent, LinkTypeChild, LinkTypeDepend:
		return LinkType(s), nil
	}
	return "", fmt.Errorf("unknown link type: %q", s)
}

// TaskLink is one direction of a task relation. Every relation is
// materialized as a pair of rows so either endpoint can be queried
// without a join-direction case split.
type TaskLink struct {
	LinkID        int64    `gorm:"column:link_id;primaryKey;autoIncrement" json:"link_id"`
	ProjectID     int64    `gorm:"column:project_id;not null;index" json:"project_id"`
	FromTaskID    int64    `gorm:"column:from_task_id;not null;index" json:"from_task_id"`
	ToTaskID      *int64   `gorm:"column:to_task_id" json:"to_task_id"`
	ParentID      *int64   `gorm:"column:parent_id" json:"parent_id"`
	ChildID       *int64   `gorm:"column:child_id" json:"child_id"`
	BlockedTaskID *int64   `gorm:"column:blocked_task_id;index" json:"blocked_task_id"`
	LinkType      LinkType `gorm:"column:link_type;type:text;not null" json:"link_type"`
	IsBlocked     bool     `gorm:"column:is_blocked;not null;default:false" json:"is_blocked"`
}

func (TaskLink) TableName() string { return "project_management.task_links" }

// EdgeRole names the column the counterpart task id is written to.
type EdgeRole string

const (
	RoleTo      EdgeRole = "to_task_id"
	RoleParent  EdgeRole = "parent_id"
	RoleChild   EdgeRole = "child_id"
	RoleBlocked EdgeRole = "blocked_task_id"
)

// EdgeSpec describes one row of a mirrored link pair: which column the
// counterpart goes to, which link type the row carries, and whether
// the row marks a blocking relation.
type EdgeSpec struct {
	Role      EdgeRole
	LinkType  LinkType
	IsBlocked bool
	// Reversed swaps from/other for this row (the mirror row is always
	// written from the counterpart's point of view).
	Reversed bool
}

// LinkMirrors drives the mirrored-edge writer: for each link kind, the
// forward row and its mandatory mirror. Breaking this symmetry
// corrupts bidirectional queries.
var LinkMirrors = map[LinkType][2]EdgeSpec{
	LinkTypeLink: {
		{Role: RoleTo, LinkType: LinkTypeLink},
		{Role: RoleTo, LinkType: LinkTypeLink, Reversed: true},
	},
	LinkTypeParent: {
		{Role: RoleParent, LinkType: LinkTypeParent},
		{Role: RoleChild, LinkType: LinkTypeChild, Reversed: true},
	},
	LinkTypeChild: {
		{Role: RoleChild, LinkType: LinkTypeChild},
		{Role: RoleParent, LinkType: LinkTypeParent, Reversed: true},
	},
	LinkTypeDepend: {
		{Role: RoleTo, LinkType: LinkTypeDepend},
		{Role: RoleBlocked, LinkType: LinkTypeDepend, IsBlocked: true, Reversed: true},
	},
}

// BuildLinkPair materializes both rows of a relation of the given kind
// between fromTask and otherTask.
func BuildLinkPair(kind LinkType, projectID, fromTask, otherTask int64) ([2]TaskLink, error) {
	specs, ok := LinkMirrors[kind]
	if !ok {
		return [2]TaskLink{}, fmt.Errorf("unknown link type: %q", kind)
	}

	var pair [2]TaskLink
	for i, spec := range specs {
		from, other := fromTask, otherTask
		if spec.Reversed {
			from, other = otherTask, fromTask
		}
		row := TaskLink{
			ProjectID:  projectID,
			FromTaskID: from,
			LinkType:   spec.LinkType,
			IsBlocked:  spec.IsBlocked,
		}
		v := other
		switch spec.Role {
		case RoleTo:
			row.ToTaskID = &v
		case RoleParent:
			row.ParentID = &v
		case RoleChild:
			row.ChildID = &v
		case RoleBlocked:
			row.BlockedTaskID = &v
		}
		pair[i] = row
	}
	return pair, nil
}
