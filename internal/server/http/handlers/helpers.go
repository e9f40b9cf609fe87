package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/strungco/stringmart/internal/domain/errors"
	"github.com/strungco/stringmart/internal/domain/model"
	"github.com/strungco/stringmart/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// CurrentRole extracts the authenticated role from context.
func CurrentRole(c *gin.Context) model.Role {
	val, ok := c.Get(middleware.UserRoleContextKey)
	if !ok {
		return model.RoleUser
	}
	role, _ := val.(model.Role)
	return role
}

// pathID parses a positive integer path parameter; zero means invalid.
func pathID(c *gin.Context, name string) int64 {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

// statusFromError maps domain error kinds to HTTP status codes.
func statusFromError(err error) int {
	switch domainErrors.KindOf(err) {
	case domainErrors.KindValidation:
		return http.StatusUnprocessableEntity
	case domainErrors.KindNotFound:
		return http.StatusNotFound
	case domainErrors.KindConflict, domainErrors.KindState:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
