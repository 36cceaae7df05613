package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func queryFor(t *testing.T, rawQuery string) Query {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return FromContext(c)
}

func TestFromContext(t *testing.T) {
	tests := []struct {
		name, query         string
		wantSkip, wantLimit int64
	}{
		{"defaults", "", 0, 10},
		{"explicit values", "skip=20&limit=5", 20, 5},
		{"negative skip clamped", "skip=-3", 0, 10},
		{"zero limit falls back", "limit=0", 0, 10},
		{"limit capped", "limit=5000", 0, 100},
		{"garbage ignored", "skip=abc&limit=xyz", 0, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := queryFor(t, tc.query)
			assert.Equal(t, tc.wantSkip, q.Skip)
			assert.Equal(t, tc.wantLimit, q.Limit)
		})
	}
}
