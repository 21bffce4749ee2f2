package user

import (
	"context"
	"testing"

	"recipe-share/domain"
	"recipe-share/internal/testutil"
	"recipe-share/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (UserService, jwt.JWTService) {
	t.Helper()
	jwtService := jwt.NewJWTService("secret", "RECIPE-SHARE")
	return NewUserService(NewUserRepository(testutil.NewDB(t)), jwtService), jwtService
}

func TestRegister(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, domain.RegisterRequest{Username: " ChefJo ", Password: "password1"})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "chefjo", user.Username)

	_, err = svc.Register(ctx, domain.RegisterRequest{Username: "CHEFJO", Password: "password2"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestLogin(t *testing.T) {
	svc, jwtService := newTestService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, domain.RegisterRequest{Username: "chefjo", Password: "password1"})
	require.NoError(t, err)

	res, err := svc.Login(ctx, domain.LoginRequest{Username: "ChefJo", Password: "password1"})
	require.NoError(t, err)
	userID, err := jwtService.GetUserIDByToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "1", userID)
	assert.Equal(t, uint(1), user.ID)

	_, err = svc.Login(ctx, domain.LoginRequest{Username: "chefjo", Password: "wrong-password"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, domain.LoginRequest{Username: "nobody", Password: "password1"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestGetUserByUsername(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterRequest{Username: "chefjo", Password: "password1"})
	require.NoError(t, err)

	user, err := svc.GetUserByUsername(ctx, "CHEFJO")
	require.NoError(t, err)
	assert.Equal(t, "chefjo", user.Username)

	_, err = svc.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
