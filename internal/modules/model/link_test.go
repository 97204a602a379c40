package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLinkType(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    LinkType
		expectError bool
	}{
		{name: "link", input: "Link", expected: LinkTypeLink},
		{name: "parent", input: "Parent", expected: LinkTypeParent},
		{name: "child", input: "Child", expected: LinkTypeChild},
		{name: "depend", input: "Depend", expected: LinkTypeDepend},
		{name: "unknown value", input: "Blocker", expectError: true},
		{name: "empty value", input: "", expectError: true},
		{name: "wrong case", input: "link", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := ParseLinkType(tt.input)

			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "unknown link type")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, kind)
			}
		})
	}
}

func TestBuildLinkPair_Link(t *testing.T) {
	pair, err := BuildLinkPair(LinkTypeLink, 7, 10, 20)
	require.NoError(t, err)

	forward, mirror := pair[0], pair[1]

	assert.Equal(t, int64(10), forward.FromTaskID)
	require.NotNil(t, forward.ToTaskID)
	assert.Equal(t, int64(20), *forward.ToTaskID)
	assert.Equal(t, LinkTypeLink, forward.LinkType)
	assert.False(t, forward.IsBlocked)

	// The mirror row must point back the other way.
	assert.Equal(t, int64(20), mirror.FromTaskID)
	require.NotNil(t, mirror.ToTaskID)
	assert.Equal(t, int64(10), *mirror.ToTaskID)
	assert.Equal(t, LinkTypeLink, mirror.LinkType)
	assert.False(t, mirror.IsBlocked)
}

func TestBuildLinkPair_ParentChild(t *testing.T) {
	tests := []struct {
		name string
		kind LinkType
	}{
		{name: "parent kind", kind: LinkTypeParent},
		{name: "child kind", kind: LinkTypeChild},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair, err := BuildLinkPair(tt.kind, 7, 10, 20)
			require.NoError(t, err)

			var parentRow, childRow TaskLink
			if tt.kind == LinkTypeParent {
				parentRow, childRow = pair[0], pair[1]
			} else {
				childRow, parentRow = pair[0], pair[1]
			}

			require.NotNil(t, parentRow.ParentID)
			assert.Equal(t, LinkTypeParent, parentRow.LinkType)
			require.NotNil(t, childRow.ChildID)
			assert.Equal(t, LinkTypeChild, childRow.LinkType)

			// Whichever direction was requested, the two rows describe the
			// same relation from opposite endpoints.
			assert.Equal(t, parentRow.FromTaskID, *childRow.ChildID)
			assert.Equal(t, childRow.FromTaskID, *parentRow.ParentID)
			assert.False(t, parentRow.IsBlocked)
			assert.False(t, childRow.IsBlocked)
		})
	}
}

func TestBuildLinkPair_Depend(t *testing.T) {
	pair, err := BuildLinkPair(LinkTypeDepend, 7, 10, 20)
	require.NoError(t, err)

	forward, mirror := pair[0], pair[1]

	// Forward row: 10 depends on 20.
	assert.Equal(t, int64(10), forward.FromTaskID)
	require.NotNil(t, forward.ToTaskID)
	assert.Equal(t, int64(20), *forward.ToTaskID)
	assert.False(t, forward.IsBlocked)

	// Mirror row: 20 blocks 10.
	assert.Equal(t, int64(20), mirror.FromTaskID)
	require.NotNil(t, mirror.BlockedTaskID)
	assert.Equal(t, int64(10), *mirror.BlockedTaskID)
	assert.True(t, mirror.IsBlocked)
	assert.Equal(t, LinkTypeDepend, mirror.LinkType)
}

func TestBuildLinkPair_ProjectScope(t *testing.T) {
	for kind := range LinkMirrors {
		pair, err := BuildLinkPair(kind, 42, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(42), pair[0].ProjectID)
		assert.Equal(t, int64(42), pair[1].ProjectID)
	}
}

func TestBuildLinkPair_UnknownKind(t *testing.T) {
	_, err := BuildLinkPair(LinkType("Blocker"), 7, 10, 20)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown link type")
}
