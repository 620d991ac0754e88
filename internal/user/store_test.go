package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movie-ticket-booking/internal/utils"
)

func TestStoreCreateAndLookup(t *testing.T) {
	s := NewStore()

	u, err := s.Create("Alice", "Alice@Example.com", "s3cret", "CUSTOMER", 4)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), u.ID)
	assert.Equal(t, "alice@example.com", u.Email, "emails are normalized")
	assert.True(t, utils.VerifyPassword(u.PasswordHash, "s3cret"))
	assert.False(t, utils.VerifyPassword(u.PasswordHash, "wrong"))

	byEmail, err := s.GetByEmail("  ALICE@example.com ")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	byID, err := s.GetByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, byID.Email)
}

func TestStoreDuplicateEmail(t *testing.T) {
	s := NewStore()

	_, err := s.Create("Alice", "alice@example.com", "s3cret", "CUSTOMER", 4)
	require.NoError(t, err)

	_, err = s.Create("Impostor", "ALICE@example.com", "other", "OWNER", 4)
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestStoreNotFound(t *testing.T) {
	s := NewStore()

	_, err := s.GetByEmail("ghost@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = s.GetByID(42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
