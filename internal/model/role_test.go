package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/teamdock/teamdock/internal/model"
)

func TestParseRole(t *testing.T) {
	assert.Equal(t, model.RoleAdmin, model.ParseRole(1))
	assert.Equal(t, model.RoleMember, model.ParseRole(2))
	assert.Equal(t, model.RoleRestricted, model.ParseRole(3))
	assert.Equal(t, model.RoleSuperAdmin, model.ParseRole(4))

	// Everything outside the known codes collapses to the sentinel.
	assert.Equal(t, model.RoleNone, model.ParseRole(0))
	assert.Equal(t, model.RoleNone, model.ParseRole(-1))
	assert.Equal(t, model.RoleNone, model.ParseRole(42))
}

func TestRoleIsCompanyMember(t *testing.T) {
	assert.True(t, model.RoleAdmin.IsCompanyMember())
	assert.True(t, model.RoleMember.IsCompanyMember())
	assert.True(t, model.RoleRestricted.IsCompanyMember())

	// Super-admin is a global attribute, not a company membership.
	assert.False(t, model.RoleSuperAdmin.IsCompanyMember())
	assert.False(t, model.RoleNone.IsCompanyMember())
}

func TestRoleIsAssignable(t *testing.T) {
	assert.True(t, model.RoleAdmin.IsAssignable())
	assert.True(t, model.RoleMember.IsAssignable())
	assert.True(t, model.RoleRestricted.IsAssignable())
	assert.False(t, model.RoleSuperAdmin.IsAssignable())
	assert.False(t, model.RoleNone.IsAssignable())
}

func TestDocumentObjectKey(t *testing.T) {
	doc := model.Document{ID: 42, Name: "quarterly report.pdf", Type: model.DocumentFile}
	assert.Equal(t, "42.pdf", doc.ObjectKey())

	// Only the last dot counts as the extension separator.
	doc = model.Document{ID: 7, Name: "archive.tar.gz"}
	assert.Equal(t, "7.gz", doc.ObjectKey())
}
