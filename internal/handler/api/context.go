package api

import (
	"rental-booking/internal/domain/user"
	"rental-booking/internal/handler/httperr"
	"rental-booking/internal/handler/middleware"
	"rental-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// actor reads the identity set by RequireAuth. It aborts with 401 when missing.
func actor(c *gin.Context) (uuid.UUID, user.Role, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithUsecaseError(c, httperr.ErrUnauthenticated)
		return uuid.Nil, "", false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		httperr.AbortWithUsecaseError(c, httperr.ErrUnauthenticated)
		return uuid.Nil, "", false
	}
	return id, role, true
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithUsecaseError(c, errs.Mark(errs.Wrapf(err, "parse %s", name), httperr.ErrInvalidID))
		return uuid.Nil, false
	}
	return id, true
}
