package handler

import (
	"github.com/appdotbuilder/pos-system-9aa7/internal/domain/enum"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetUserID extracts the authenticated user's ID from the context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	value, ok := c.Get("user_id")
	if !ok {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}

// GetUserRole extracts the authenticated user's role from the context
func GetUserRole(c *gin.Context) enum.Role {
	return enum.Role(c.GetString("user_role"))
}

// parseUUIDParam parses a path parameter as a UUID
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
