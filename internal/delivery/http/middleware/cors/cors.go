package http_cors_middleware

import (
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/popcorn/core/internal/delivery/http/common"
)

// CORS allows the configured origins; "*" or an empty list opens the API to
// any origin, which is how the browser clients are served in development.
func CORS(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "X-Requested-With", http_common.UserTokenHeader},
		ExposeHeaders: []string{http_common.UserTokenHeader},
	}

	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}

	return cors.New(cfg)
}
