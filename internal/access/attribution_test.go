package access_test

import (
	"testing"

	"github.com/pantgram/homidirect/internal/access"
	"github.com/pantgram/homidirect/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v int64) *int64 { return &v }

func TestResolveLandlord_NonAdminDefaultsToSelf(t *testing.T) {
	p := &domain.Principal{ID: 3, Role: domain.RoleLandlord}

	id, err := access.ResolveLandlord(p, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)

	id, err = access.ResolveLandlord(p, ptr(3))
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
}

func TestResolveLandlord_NonAdminCannotAttributeToOthers(t *testing.T) {
	p := &domain.Principal{ID: 3, Role: domain.RoleLandlord}

	_, err := access.ResolveLandlord(p, ptr(9))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestResolveLandlord_AdminAttributesFreely(t *testing.T) {
	admin := &domain.Principal{ID: 1, Role: domain.RoleAdmin}

	id, err := access.ResolveLandlord(admin, ptr(9))
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)

	id, err = access.ResolveLandlord(admin, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestResolveLandlord_NilPrincipal(t *testing.T) {
	_, err := access.ResolveLandlord(nil, ptr(9))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
