package http_access_middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/popcorn/core/internal/delivery/http/common"
)

const ModeReadOnly = "RO"

// ReadOnly rejects every non-GET request when the instance runs in RO mode,
// e.g. a replica pointed at a read-only database.
func ReadOnly(mode string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if mode != ModeReadOnly {
			c.Next()
			return
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusServiceUnavailable, http_common.ErrorResponse{
			Message: "write operations are not allowed on a read-only instance",
		})
	}
}
