package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vforit/ticktrack/internal/shared/errors"
)

// ParseUintParam parses a positive integer path parameter.
func ParseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, errors.NewValidationError("invalid " + name + " parameter")
	}
	return uint(value), nil
}

// GetUserID returns the authenticated user id stored by the auth middleware.
func GetUserID(c *gin.Context) (uint, error) {
	value, exists := c.Get("user_id")
	if !exists {
		return 0, errors.NewUnauthorizedError("missing authentication context")
	}
	userID, ok := value.(uint)
	if !ok || userID == 0 {
		return 0, errors.NewUnauthorizedError("invalid authentication context")
	}
	return userID, nil
}
