package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit = 10
	// MaxLimit caps a single history page. The store would otherwise fetch an
	// unbounded number of documents for an arbitrarily large limit.
	MaxLimit = 100
)

// Query holds parsed offset pagination parameters.
type Query struct {
	Skip  int64
	Limit int64
}

// FromContext extracts and clamps skip/limit from the request. Garbage or
// out-of-range values fall back to the defaults rather than erroring.
func FromContext(c *gin.Context) Query {
	skip := parseInt64Or(c.DefaultQuery("skip", "0"), 0)
	limit := parseInt64Or(c.DefaultQuery("limit", "10"), DefaultLimit)

	if skip < 0 {
		skip = 0
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Query{Skip: skip, Limit: limit}
}

func parseInt64Or(s string, def int64) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return def
	}
	return v
}
