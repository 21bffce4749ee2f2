package jwt

import (
	"testing"
	"time"

	"recipe-share/domain"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("secret", "RECIPE-SHARE")

	token, err := svc.GenerateTokenUser("42")
	require.NoError(t, err)

	userID, err := svc.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "42", userID)
}

func TestTokenRejected(t *testing.T) {
	svc := NewJWTService("secret", "RECIPE-SHARE")

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewJWTService("other", "RECIPE-SHARE").GenerateTokenUser("1")
		require.NoError(t, err)
		_, err = svc.GetUserIDByToken(token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := NewJWTService("secret", "SOMEONE-ELSE").GenerateTokenUser("1")
		require.NoError(t, err)
		_, err = svc.GetUserIDByToken(token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("expired", func(t *testing.T) {
		claims := jwtUserClaim{
			"1",
			jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
				Issuer:    "RECIPE-SHARE",
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = svc.GetUserIDByToken(token)
		assert.ErrorIs(t, err, domain.ErrTokenExpired)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.GetUserIDByToken("not-a-token")
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})
}
