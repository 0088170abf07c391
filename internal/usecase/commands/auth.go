package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"rental-booking/internal/domain/user"
	"rental-booking/internal/infra"
	"rental-booking/internal/pkg/clock"
	"rental-booking/internal/pkg/errs"
	"rental-booking/internal/pkg/jwt"
	"rental-booking/internal/pkg/password"
	"rental-booking/internal/usecase/shared"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrEmailTaken           = errs.New("email already registered")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Role     string
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID      uuid.UUID
	Role        string
	AccessToken string
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (uuid.UUID, error)
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	hasher     *password.Hasher
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, hasher *password.Hasher, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		hasher:     hasher,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (uuid.UUID, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return uuid.Nil, shared.Classify(err)
	}
	pw, err := user.NewPassword(in.Password)
	if err != nil {
		return uuid.Nil, shared.Classify(err)
	}
	fullName, err := user.NewFullName(in.FullName)
	if err != nil {
		return uuid.Nil, shared.Classify(err)
	}
	role, err := user.NewRole(in.Role)
	if err != nil {
		return uuid.Nil, shared.Classify(err)
	}

	hash, err := a.hasher.Hash(pw.Value())
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "hash password")
	}

	u, err := user.Register(email, hash, fullName, role, a.clock.Now())
	if err != nil {
		return uuid.Nil, shared.Classify(err)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, tx.DB(), u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(ErrEmailTaken, shared.ErrConflict)
		}
		return uuid.Nil, shared.Classify(err)
	}
	return u.ID(), nil
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	creds, err := a.uow.CommandReads().UserByEmail(ctx, email.Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as a wrong password so emails cannot be enumerated
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}
	if err := a.hasher.Compare(creds.PasswordHash, in.Password); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !creds.IsActive {
		return nil, ErrUserInactive
	}

	role, err := user.NewRole(creds.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}
	token, err := a.jwtService.GenerateToken(creds.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), creds.ID, a.clock.Now())
	})
	if err != nil {
		slog.Warn("failed to update last login", "user_id", creds.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:      creds.ID,
		Role:        role.String(),
		AccessToken: token,
	}, nil
}
