package user

import (
	"context"
	"testing"

	"scopex/config"
	"scopex/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *DefaultUserService {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	config.AppConfig.RootAdminEmail = "admin@scopex.com"
	config.AppConfig.RootAdminPassword = "2240@SCOPEX"

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return &DefaultUserService{Directory: client, Sessions: client}
}

func TestAuthenticate_SeedAdmin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	usr, err := svc.Authenticate(ctx, "Admin@Scopex.com", "2240@SCOPEX")
	require.NoError(t, err)
	assert.Equal(t, models.RootAdminID, usr.ID)
	assert.Equal(t, models.RoleSuperAdmin, usr.Role)

	_, err = svc.Authenticate(ctx, "admin@scopex.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody@scopex.com", "2240@SCOPEX")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestInitialize_ResyncsRootPassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.Initialize(ctx))

	// Simulate a redeploy with a rotated default password.
	config.AppConfig.RootAdminPassword = "ROTATED"
	require.NoError(t, svc.Initialize(ctx))

	usr, err := svc.Authenticate(ctx, "admin@scopex.com", "ROTATED")
	require.NoError(t, err)
	assert.Equal(t, models.RootAdminID, usr.ID)

	_, err = svc.Authenticate(ctx, "admin@scopex.com", "2240@SCOPEX")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateUser_RejectsDuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.True(t, svc.CreateUser(ctx, "viewer@scopex.com", "pass1", models.RoleViewer, "View Only"))
	assert.False(t, svc.CreateUser(ctx, " Viewer@Scopex.COM ", "pass2", models.RoleManager, "Dup"))

	usr, err := svc.Authenticate(ctx, "viewer@scopex.com", "pass1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleViewer, usr.Role)
}

func TestRemoveUser_ProtectsRootAdmin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.Initialize(ctx))

	assert.False(t, svc.RemoveUser(ctx, models.RootAdminID))

	require.True(t, svc.CreateUser(ctx, "viewer@scopex.com", "pass1", models.RoleViewer, "View Only"))
	usr, err := svc.Authenticate(ctx, "viewer@scopex.com", "pass1")
	require.NoError(t, err)

	assert.True(t, svc.RemoveUser(ctx, usr.ID))
	_, err = svc.Authenticate(ctx, "viewer@scopex.com", "pass1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSession_RoundTripAndRevalidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	usr, err := svc.Authenticate(ctx, "admin@scopex.com", "2240@SCOPEX")
	require.NoError(t, err)

	token, err := svc.CreateSession(ctx, *usr)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.ValidateSession(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, usr.ID, got.ID)

	// A changed directory password silently invalidates the session.
	config.AppConfig.RootAdminPassword = "ROTATED"
	require.NoError(t, svc.Initialize(ctx))

	_, err = svc.ValidateSession(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSession_ClearForcesRelogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	usr, err := svc.Authenticate(ctx, "admin@scopex.com", "2240@SCOPEX")
	require.NoError(t, err)

	token, err := svc.CreateSession(ctx, *usr)
	require.NoError(t, err)
	require.NoError(t, svc.ClearSession(ctx, token))

	_, err = svc.ValidateSession(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateSession_GarbageToken(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.ValidateSession(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
