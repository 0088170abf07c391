//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"rental-booking/internal/infra"
	"rental-booking/internal/infra/repository"
	sqlc "rental-booking/internal/infra/sqlc/generated"
	"rental-booking/internal/pkg/pgconv"
	"rental-booking/tests/common/builder"
	repositorymock "rental-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: params mapped from aggregate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockUserWriteQueries(ctrl)
		repo := repository.NewUserRepository(q)

		u, err := builder.NewUserBuilder().AsHost().BuildDomain()
		require.NoError(t, err)

		q.EXPECT().CreateUser(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error) {
				assert.Equal(t, u.ID(), arg.ID)
				assert.Equal(t, "host", arg.Role)
				assert.True(t, arg.IsActive)
				return sqlc.Users{ID: arg.ID}, nil
			})

		require.NoError(t, repo.Create(ctx, nil, u))
	})

	t.Run("error: email already taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockUserWriteQueries(ctrl)
		repo := repository.NewUserRepository(q)

		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		q.EXPECT().CreateUser(ctx, gomock.Any(), gomock.Any()).
			Return(sqlc.Users{}, &pgconn.PgError{Code: "23505"})

		err = repo.Create(ctx, nil, u)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}

func TestUserRepository_UpdateLastLogin(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	q := repositorymock.NewMockUserWriteQueries(ctrl)
	repo := repository.NewUserRepository(q)

	id := uuid.New()
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	q.EXPECT().UpdateLastLogin(ctx, gomock.Any(), sqlc.UpdateLastLoginParams{
		ID:        id,
		LastLogin: pgconv.TimeToPgtype(at),
	}).Return(nil)

	require.NoError(t, repo.UpdateLastLogin(ctx, nil, id, at))
}
