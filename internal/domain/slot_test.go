package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSlotInput_Validate(t *testing.T) {
	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	ok := CreateSlotInput{StartTime: start, EndTime: start.Add(time.Hour)}
	assert.NoError(t, ok.Validate())

	empty := CreateSlotInput{StartTime: start, EndTime: start}
	err := empty.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	inverted := CreateSlotInput{StartTime: start, EndTime: start.Add(-time.Minute)}
	err = inverted.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParseRole(t *testing.T) {
	for _, s := range []string{"landlord", "tenant", "both", "admin"} {
		r, ok := ParseRole(s)
		assert.True(t, ok)
		assert.Equal(t, Role(s), r)
	}

	_, ok := ParseRole("superuser")
	assert.False(t, ok)
}
