package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedirectFor(t *testing.T) {
	cases := []struct {
		role     string
		redirect string
		allowed  bool
	}{
		{RoleAdmin, "/admin", true},
		{RoleReception, "/", true},
		{RoleSeller, "/sale", true},
		{RoleAuditor, "/verification", true},
		{"intern", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		dest, ok := RedirectFor(tc.role)
		assert.Equal(t, tc.allowed, ok, "role %q", tc.role)
		assert.Equal(t, tc.redirect, dest, "role %q", tc.role)
	}
}

func TestAuthorize(t *testing.T) {
	allCaps := []Capability{CapSubmitSale, CapManageStock, CapManagePersonnel, CapViewLogs, CapManageSettings}

	for _, cap := range allCaps {
		assert.True(t, Authorize(RoleAdmin, cap), "admin should hold %s", cap)
	}

	assert.True(t, Authorize(RoleSeller, CapSubmitSale))
	assert.False(t, Authorize(RoleSeller, CapManageStock))
	assert.False(t, Authorize(RoleSeller, CapManagePersonnel))

	assert.True(t, Authorize(RoleReception, CapManageStock))
	assert.False(t, Authorize(RoleReception, CapSubmitSale))

	for _, cap := range allCaps {
		assert.False(t, Authorize(RoleAuditor, cap), "auditor should not hold %s", cap)
		assert.False(t, Authorize("intern", cap), "unknown role should not hold %s", cap)
	}
}
