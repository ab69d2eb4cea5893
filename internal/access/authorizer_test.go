package access_test

import (
	"testing"

	"github.com/pantgram/homidirect/internal/access"
	"github.com/pantgram/homidirect/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize_NilPrincipal(t *testing.T) {
	err := access.Authorize(nil, domain.RoleLandlord)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestAuthorize_AdminBypassesAnyRequirement(t *testing.T) {
	admin := &domain.Principal{ID: 1, Role: domain.RoleAdmin}

	sets := [][]domain.Role{
		{domain.RoleLandlord},
		{domain.RoleTenant},
		{domain.RoleLandlord, domain.RoleBoth},
		{domain.RoleTenant, domain.RoleBoth},
	}
	for _, required := range sets {
		assert.NoError(t, access.Authorize(admin, required...))
	}
}

func TestAuthorize_RoleMatrix(t *testing.T) {
	landlordOnly := []domain.Role{domain.RoleLandlord}
	tenantOnly := []domain.Role{domain.RoleTenant}
	either := []domain.Role{domain.RoleLandlord, domain.RoleTenant}
	landlordGate := []domain.Role{domain.RoleLandlord, domain.RoleBoth}
	tenantGate := []domain.Role{domain.RoleTenant, domain.RoleBoth}

	cases := []struct {
		name     string
		role     domain.Role
		required []domain.Role
		allowed  bool
	}{
		{"landlord on landlord only", domain.RoleLandlord, landlordOnly, true},
		{"landlord on tenant only", domain.RoleLandlord, tenantOnly, false},
		{"landlord on either", domain.RoleLandlord, either, true},
		{"landlord on landlord gate", domain.RoleLandlord, landlordGate, true},
		{"landlord on tenant gate", domain.RoleLandlord, tenantGate, false},
		{"tenant on landlord only", domain.RoleTenant, landlordOnly, false},
		{"tenant on tenant only", domain.RoleTenant, tenantOnly, true},
		{"tenant on either", domain.RoleTenant, either, true},
		{"tenant on tenant gate", domain.RoleTenant, tenantGate, true},
		{"tenant on landlord gate", domain.RoleTenant, landlordGate, false},
		{"both on landlord only", domain.RoleBoth, landlordOnly, false},
		{"both on tenant only", domain.RoleBoth, tenantOnly, false},
		{"both on either", domain.RoleBoth, either, false},
		{"both on landlord gate", domain.RoleBoth, landlordGate, true},
		{"both on tenant gate", domain.RoleBoth, tenantGate, true},
		{"admin on landlord only", domain.RoleAdmin, landlordOnly, true},
		{"admin on tenant only", domain.RoleAdmin, tenantOnly, true},
		{"admin on either", domain.RoleAdmin, either, true},
		{"admin on landlord gate", domain.RoleAdmin, landlordGate, true},
		{"admin on tenant gate", domain.RoleAdmin, tenantGate, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &domain.Principal{ID: 42, Role: tc.role}
			err := access.Authorize(p, tc.required...)
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrForbidden)
			}
		})
	}
}

func TestAuthorize_ForbiddenNamesRequiredRoles(t *testing.T) {
	p := &domain.Principal{ID: 5, Role: domain.RoleTenant}
	err := access.Authorize(p, domain.RoleLandlord, domain.RoleBoth)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "landlord")
	assert.Contains(t, err.Error(), "both")
}
