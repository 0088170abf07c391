package usecase

import (
	"context"

	"rental-booking/internal/domain/user"
	"rental-booking/internal/pkg/errs"
	"rental-booking/internal/pkg/jwt"
	"rental-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrAccountDisabled = errs.New("account disabled")

// Identity is the caller an access token resolves to.
type Identity struct {
	UserID uuid.UUID
	Role   user.Role
}

type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (Identity, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
	users      queries.UserReadStore
}

func NewTokenValidator(jwtService *jwt.Service, users queries.UserReadStore) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService, users: users}
}

// ValidateToken checks signature and expiry, then takes the role from the stored
// account. A deactivated or re-roled user loses access before the token expires.
func (v *tokenValidatorImpl) ValidateToken(ctx context.Context, token string) (Identity, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return Identity{}, err
	}

	account, err := v.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return Identity{}, errs.Wrap(err, "load token subject")
	}
	if !account.IsActive {
		return Identity{}, ErrAccountDisabled
	}

	role, err := user.NewRole(account.Role)
	if err != nil {
		return Identity{}, err
	}
	return Identity{UserID: account.ID, Role: role}, nil
}
