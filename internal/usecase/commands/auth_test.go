//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"rental-booking/internal/domain/user"
	"rental-booking/internal/infra"
	"rental-booking/internal/pkg/clock"
	"rental-booking/internal/pkg/jwt"
	"rental-booking/internal/pkg/password"
	"rental-booking/internal/usecase/commands"
	"rental-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type authFixture struct {
	m      *txMocks
	jwt    *jwt.Service
	hasher *password.Hasher
	uc     commands.AuthCommands
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	m := newTxMocks(t)
	jwtSvc := jwt.NewService("test-secret", time.Hour)
	hasher := password.NewHasher(bcrypt.MinCost)
	return &authFixture{
		m:      m,
		jwt:    jwtSvc,
		hasher: hasher,
		uc:     commands.NewAuthCommands(m.uow, jwtSvc, hasher, clock.NewMockClock(testNow)),
	}
}

func TestAuthCommands_Register(t *testing.T) {
	t.Run("success: host account with hashed password", func(t *testing.T) {
		f := newAuthFixture(t)
		f.m.users.EXPECT().Create(gomock.Any(), f.m.db, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, u *user.User) error {
				assert.Equal(t, "host@example.com", u.Email().Value())
				assert.Equal(t, user.RoleHost, u.Role())
				assert.NoError(t, f.hasher.Compare(u.PasswordHash(), "password123"))
				return nil
			})

		id, err := f.uc.Register(context.Background(), commands.RegisterInput{
			Email: "Host@Example.com", Password: "password123", FullName: "Hana Host", Role: "host",
		})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
	})

	t.Run("error: admin role is not self-assignable", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.uc.Register(context.Background(), commands.RegisterInput{
			Email: "root@example.com", Password: "password123", FullName: "Root", Role: "admin",
		})

		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("error: short password", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.uc.Register(context.Background(), commands.RegisterInput{
			Email: "guest@example.com", Password: "short", FullName: "Gil Guest", Role: "guest",
		})

		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("error: email already registered", func(t *testing.T) {
		f := newAuthFixture(t)
		dup := infra.WrapRepoErr("insert user", &pgconn.PgError{Code: "23505"})
		f.m.users.EXPECT().Create(gomock.Any(), f.m.db, gomock.Any()).Return(dup)

		_, err := f.uc.Register(context.Background(), commands.RegisterInput{
			Email: "guest@example.com", Password: "password123", FullName: "Gil Guest", Role: "guest",
		})

		assert.ErrorIs(t, err, commands.ErrEmailTaken)
		assert.ErrorIs(t, err, shared.ErrConflict)
	})
}

func TestAuthCommands_Login(t *testing.T) {
	creds := func(t *testing.T, f *authFixture, active bool) *shared.UserCredentials {
		t.Helper()
		hash, err := f.hasher.Hash("password123")
		require.NoError(t, err)
		return &shared.UserCredentials{
			ID:           uuid.New(),
			Email:        "guest@example.com",
			PasswordHash: hash,
			Role:         "guest",
			IsActive:     active,
		}
	}

	t.Run("success: token carries user and role", func(t *testing.T) {
		f := newAuthFixture(t)
		c := creds(t, f, true)
		f.m.reads.EXPECT().UserByEmail(gomock.Any(), "guest@example.com").Return(c, nil)
		f.m.users.EXPECT().UpdateLastLogin(gomock.Any(), f.m.db, c.ID, testNow).Return(nil)

		res, err := f.uc.Login(context.Background(), commands.LoginInput{Email: "guest@example.com", Password: "password123"})

		require.NoError(t, err)
		assert.Equal(t, c.ID, res.UserID)
		claims, err := f.jwt.ValidateToken(res.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, c.ID, claims.UserID)
		assert.Equal(t, user.RoleGuest.String(), claims.Role)
	})

	t.Run("success: last login failure does not block login", func(t *testing.T) {
		f := newAuthFixture(t)
		c := creds(t, f, true)
		f.m.reads.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(c, nil)
		f.m.users.EXPECT().UpdateLastLogin(gomock.Any(), f.m.db, c.ID, testNow).Return(errors.New("db down"))

		res, err := f.uc.Login(context.Background(), commands.LoginInput{Email: "guest@example.com", Password: "password123"})

		require.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)
	})

	t.Run("error: wrong password", func(t *testing.T) {
		f := newAuthFixture(t)
		f.m.reads.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(creds(t, f, true), nil)

		_, err := f.uc.Login(context.Background(), commands.LoginInput{Email: "guest@example.com", Password: "wrong-password"})

		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("error: unknown email looks like a wrong password", func(t *testing.T) {
		f := newAuthFixture(t)
		f.m.reads.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(nil, notFoundErr())

		_, err := f.uc.Login(context.Background(), commands.LoginInput{Email: "nobody@example.com", Password: "password123"})

		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("error: inactive account", func(t *testing.T) {
		f := newAuthFixture(t)
		f.m.reads.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(creds(t, f, false), nil)

		_, err := f.uc.Login(context.Background(), commands.LoginInput{Email: "guest@example.com", Password: "password123"})

		assert.ErrorIs(t, err, commands.ErrUserInactive)
	})
}
