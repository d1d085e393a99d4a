package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/midas/internal/auth"
)

const secret = "test-secret"

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newIssuer(c *clock) *auth.Issuer {
	return auth.NewIssuer(secret, "MIDAS", time.Hour, 3*time.Hour, auth.WithClock(c.now))
}

func TestIssuer_PairAndParse(t *testing.T) {
	c := &clock{t: time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)}
	iss := newIssuer(c)
	userID := uuid.New()

	pair, err := iss.Pair(userID, true)
	require.NoError(t, err)

	claims, err := iss.Parse(pair.Access, auth.TokenAccess)
	require.NoError(t, err)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, userID, id)
	assert.True(t, claims.Staff)
	assert.Equal(t, auth.TokenAccess, claims.TokenType)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, c.t.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())

	_, err = iss.Parse(pair.Refresh, auth.TokenAccess)
	assert.ErrorIs(t, err, auth.ErrInvalidToken, "refresh token must not pass as access")

	_, err = iss.Parse(pair.Refresh, "")
	assert.NoError(t, err)
}

func TestIssuer_Parse_Rejects(t *testing.T) {
	c := &clock{t: time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)}
	iss := newIssuer(c)

	pair, err := iss.Pair(uuid.New(), false)
	require.NoError(t, err)

	t.Run("Expired", func(t *testing.T) {
		later := &clock{t: c.t.Add(2 * time.Hour)}

		_, err := newIssuer(later).Parse(pair.Access, auth.TokenAccess)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("WrongAudience", func(t *testing.T) {
		other := auth.NewIssuer(secret, "OTHER", time.Hour, time.Hour, auth.WithClock(c.now))

		_, err := other.Parse(pair.Access, auth.TokenAccess)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := auth.NewIssuer("another-secret", "MIDAS", time.Hour, time.Hour, auth.WithClock(c.now))

		_, err := other.Parse(pair.Access, auth.TokenAccess)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := iss.Parse("not.a.token", auth.TokenAccess)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func TestIssuer_Refresh(t *testing.T) {
	c := &clock{t: time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)}
	iss := newIssuer(c)
	userID := uuid.New()

	pair, err := iss.Pair(userID, true)
	require.NoError(t, err)

	// access expired, refresh still valid
	c.t = c.t.Add(2 * time.Hour)

	stillStaff := func(id uuid.UUID) (bool, error) {
		assert.Equal(t, userID, id)
		return true, nil
	}

	access, err := iss.Refresh(pair.Refresh, stillStaff)
	require.NoError(t, err)

	claims, err := iss.Parse(access, auth.TokenAccess)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.True(t, claims.Staff)

	t.Run("Demoted", func(t *testing.T) {
		access, err := iss.Refresh(pair.Refresh, func(uuid.UUID) (bool, error) { return false, nil })
		require.NoError(t, err)

		claims, err := iss.Parse(access, auth.TokenAccess)
		require.NoError(t, err)
		assert.False(t, claims.Staff)
	})

	t.Run("LookupFails", func(t *testing.T) {
		gone := errors.New("user gone")

		_, err := iss.Refresh(pair.Refresh, func(uuid.UUID) (bool, error) { return false, gone })
		assert.ErrorIs(t, err, gone)
	})

	t.Run("AccessTokenRejected", func(t *testing.T) {
		_, err := iss.Refresh(pair.Access, stillStaff)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
