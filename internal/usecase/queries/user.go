package queries

import (
	"context"

	"github.com/google/uuid"

	"rental-booking/internal/pkg/errs"
	"rental-booking/internal/usecase/shared"
)

var ErrUserInactive = errs.New("user inactive")

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	user, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.Classify(err)
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	return user, nil
}
