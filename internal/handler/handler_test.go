package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"planhub/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestParseListQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		query     string
		wantSkip  int64
		wantLimit int64
	}{
		{"defaults", "", 0, config.DefaultListLimit},
		{"explicit", "skip=10&limit=5", 10, 5},
		{"negative clamps", "skip=-3&limit=-1", 0, config.DefaultListLimit},
		{"garbage falls back", "skip=abc&limit=xyz", 0, config.DefaultListLimit},
		{"zero limit allowed", "limit=0", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)

			skip, limit := parseListQuery(c)
			assert.Equal(t, tt.wantSkip, skip)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}
