package auth

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notes-calendar/internal/model"
	"notes-calendar/internal/query"
	"notes-calendar/internal/repository"
	"notes-calendar/internal/repository/memory"
	svc "notes-calendar/internal/service"
)

var cheapHash = HashParams{Memory: 1024, Iterations: 1, Threads: 1, SaltLength: 8, KeyLength: 16}

type testEnv struct {
	auth  svc.AuthService
	store repository.Store
	now   time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	env := &testEnv{
		store: memory.NewRepository(),
		now:   time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC),
	}
	env.auth = NewAuthService(env.store, Options{
		SessionTTL: time.Hour,
		Hash:       cheapHash,
		Clock:      query.ClockFunc(func() time.Time { return env.now }),
		Logger:     log,
	})
	return env
}

func TestPassword_HashAndVerify(t *testing.T) {
	hash, err := HashPassword("correct horse", cheapHash)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=1024,t=1,p=1$"))

	ok, err := VerifyPassword("correct horse", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("wrong horse", hash)
	require.NoError(t, err)
	assert.False(t, ok)

	other, err := HashPassword("correct horse", cheapHash)
	require.NoError(t, err)
	assert.NotEqual(t, hash, other, "salt must differ")
}

func TestPassword_VerifyRejectsMalformed(t *testing.T) {
	for _, encoded := range []string{
		"",
		"plain",
		"$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$c3Vt",
		"$argon2id$v=18$m=1024,t=1,p=1$c2FsdA$c3Vt",
		"$argon2id$v=19$m=x,t=1,p=1$c2FsdA$c3Vt",
		"$argon2id$v=19$m=1024,t=1,p=1$!!!$c3Vt",
	} {
		_, err := VerifyPassword("password", encoded)
		assert.Error(t, err, encoded)
	}

	_, err := HashPassword("", cheapHash)
	assert.Error(t, err)
}

func TestAuth_SignUpNormalizesEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.auth.SignUp(ctx, "  Alice@Example.COM ", "password1")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEmpty(t, user.ID)
	assert.NotContains(t, user.PasswordHash, "password1")

	_, err = env.auth.SignUp(ctx, "alice@example.com", "password2")
	assert.ErrorIs(t, err, repository.ErrUserExists)
}

func TestAuth_SignUpValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.auth.SignUp(ctx, "", "password1")
	assert.ErrorIs(t, err, model.ErrInvalidArgument)

	_, err = env.auth.SignUp(ctx, "not-an-email", "password1")
	assert.ErrorIs(t, err, model.ErrInvalidArgument)

	_, err = env.auth.SignUp(ctx, "bob@example.com", "short")
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestAuth_SignInAndAuthenticate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.auth.SignUp(ctx, "alice@example.com", "password1")
	require.NoError(t, err)

	_, err = env.auth.SignIn(ctx, "alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, svc.ErrInvalidCredentials)

	_, err = env.auth.SignIn(ctx, "nobody@example.com", "password1")
	assert.ErrorIs(t, err, svc.ErrInvalidCredentials)

	session, err := env.auth.SignIn(ctx, "ALICE@example.com", "password1")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, user.ID, session.UserID)
	assert.True(t, session.ExpiresAt.Equal(env.now.Add(time.Hour)))

	got, err := env.auth.Authenticate(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = env.auth.Authenticate(ctx, "unknown-token")
	assert.ErrorIs(t, err, svc.ErrUnauthenticated)

	_, err = env.auth.Authenticate(ctx, "")
	assert.ErrorIs(t, err, svc.ErrUnauthenticated)
}

func TestAuth_ExpiredSessionIsRemoved(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.auth.SignUp(ctx, "alice@example.com", "password1")
	require.NoError(t, err)
	session, err := env.auth.SignIn(ctx, "alice@example.com", "password1")
	require.NoError(t, err)

	env.now = env.now.Add(time.Hour)

	_, err = env.auth.Authenticate(ctx, session.Token)
	assert.ErrorIs(t, err, svc.ErrUnauthenticated)

	_, err = env.store.GetSession(ctx, session.Token)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestAuth_SignOut(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.auth.SignUp(ctx, "alice@example.com", "password1")
	require.NoError(t, err)
	session, err := env.auth.SignIn(ctx, "alice@example.com", "password1")
	require.NoError(t, err)

	require.NoError(t, env.auth.SignOut(ctx, session.Token))
	require.NoError(t, env.auth.SignOut(ctx, session.Token))

	_, err = env.auth.Authenticate(ctx, session.Token)
	assert.ErrorIs(t, err, svc.ErrUnauthenticated)

	assert.ErrorIs(t, env.auth.SignOut(ctx, ""), svc.ErrUnauthenticated)
}
