package handler

import (
	"strconv"

	"planhub/internal/config"

	"github.com/gin-gonic/gin"
)

// parseListQuery reads skip/limit pagination parameters, clamping negatives
// to the defaults.
func parseListQuery(c *gin.Context) (skip, limit int64) {
	skip = parseQueryInt(c, "skip", 0)
	limit = parseQueryInt(c, "limit", config.DefaultListLimit)
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = config.DefaultListLimit
	}
	return skip, limit
}

func parseQueryInt(c *gin.Context, key string, defaultValue int64) int64 {
	raw := c.Query(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}
