package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanAccessOpportunity(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		userID   int
		ownerID  int
		linked   []int
		expected bool
	}{
		{
			name:     "admin always allowed",
			role:     RoleAdmin,
			userID:   1,
			ownerID:  99,
			expected: true,
		},
		{
			name:     "admin allowed on unassigned lead",
			role:     RoleAdmin,
			userID:   1,
			ownerID:  0,
			expected: true,
		},
		{
			name:     "agent owns the lead",
			role:     RoleAgent,
			userID:   7,
			ownerID:  7,
			expected: true,
		},
		{
			name:     "agent does not own the lead",
			role:     RoleAgent,
			userID:   7,
			ownerID:  8,
			expected: false,
		},
		{
			name:     "staff with owner in roster",
			role:     RoleStaff,
			userID:   3,
			ownerID:  7,
			linked:   []int{5, 7, 9},
			expected: true,
		},
		{
			name:     "staff with owner not in roster",
			role:     RoleStaff,
			userID:   3,
			ownerID:  8,
			linked:   []int{5, 7, 9},
			expected: false,
		},
		{
			name:     "staff with empty roster",
			role:     RoleStaff,
			userID:   3,
			ownerID:  7,
			linked:   nil,
			expected: false,
		},
		{
			name:     "unknown role denied",
			role:     Role("superuser"),
			userID:   1,
			ownerID:  1,
			expected: false,
		},
		{
			name:     "empty role denied",
			role:     Role(""),
			userID:   1,
			ownerID:  1,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Principal{ID: tt.userID, Role: tt.role}
			got := CanAccessOpportunity(p, tt.ownerID, tt.linked)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleStaff.Valid())
	assert.True(t, RoleAgent.Valid())
	assert.False(t, Role("intern").Valid())
	assert.False(t, Role("").Valid())
}
