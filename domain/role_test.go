package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleContributor.Valid())
	assert.True(t, RoleAdmin.Valid())

	assert.False(t, Role("").Valid())
	assert.False(t, Role("superadmin").Valid())
	assert.False(t, Role("Admin").Valid())
}

func TestRoleAtLeast(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		required Role
		want     bool
	}{
		{"user satisfies user", RoleUser, RoleUser, true},
		{"user lacks contributor", RoleUser, RoleContributor, false},
		{"user lacks admin", RoleUser, RoleAdmin, false},
		{"contributor satisfies user", RoleContributor, RoleUser, true},
		{"contributor satisfies contributor", RoleContributor, RoleContributor, true},
		{"contributor lacks admin", RoleContributor, RoleAdmin, false},
		{"admin satisfies user", RoleAdmin, RoleUser, true},
		{"admin satisfies contributor", RoleAdmin, RoleContributor, true},
		{"admin satisfies admin", RoleAdmin, RoleAdmin, true},
		{"unknown role satisfies nothing", Role("moderator"), RoleUser, false},
		{"empty role satisfies nothing", Role(""), RoleUser, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.AtLeast(tt.required))
		})
	}
}
