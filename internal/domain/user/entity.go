package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	fullName     FullName
	role         Role
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, passwordHash string, fullName FullName, role Role) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		fullName:     fullName,
		role:         role,
		isActive:     true,
	}
}

// Register creates a user through the public sign-up flow, where admin is not allowed.
func Register(email Email, passwordHash string, fullName FullName, role Role, now time.Time) (*User, error) {
	if !role.SelfAssignable() {
		return nil, ErrRoleNotSelfAssignable
	}
	u := NewUser(email, passwordHash, fullName, role)
	u.createdAt = now
	u.updatedAt = now
	return u, nil
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) FullName() FullName    { return u.fullName }
func (u *User) Role() Role            { return u.role }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
