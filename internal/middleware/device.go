package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/medscribe/core/internal/pkg/response"
)

const (
	// HeaderDeviceID carries the self-asserted device identity on every
	// history call. It is an opaque string, not validated beyond non-empty,
	// and is the only tenancy boundary for history records.
	HeaderDeviceID = "X-Device-Id"

	ContextKeyDeviceID = "device_id"
)

// DeviceID returns a middleware that requires the device identity header and
// stashes it in the request context. Requests without it never reach the
// repository.
func DeviceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(HeaderDeviceID))
		if id == "" {
			response.BadRequest(c, "X-Device-Id header is required")
			return
		}
		c.Set(ContextKeyDeviceID, id)
		c.Next()
	}
}

// CurrentDeviceID extracts the device identity from context.
func CurrentDeviceID(c *gin.Context) string {
	v, _ := c.Get(ContextKeyDeviceID)
	id, _ := v.(string)
	return id
}
