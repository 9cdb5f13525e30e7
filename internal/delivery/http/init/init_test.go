//go:build !integration

package http_init

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/humanbelnik/popcorn/core/internal/config"
	http_metrics "github.com/humanbelnik/popcorn/core/internal/delivery/http/metrics"
	"github.com/humanbelnik/popcorn/core/internal/metrics"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

type ControllerPoolSuite struct {
	suite.Suite
}

type pingController struct{}

func (pingController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
}

func newPool(mode string) (*ControllerPool, *prometheus.Registry) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	metrics.NewSelectionMetrics(reg).IncSelection("suite2", "ranker")

	pool := NewControllerPool(config.HTTPServer{
		Mode:           mode,
		AllowedOrigins: []string{"http://localhost:5173"},
	}, slog.Default())
	pool.Add(pingController{})
	pool.AddRoot(http_metrics.New(reg))
	pool.Register()
	return pool, reg
}

func (s *ControllerPoolSuite) TestRoutesAreMounted(t provider.T) {
	pool, _ := newPool("RW")

	w := httptest.NewRecorder()
	pool.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/ping", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	pool.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `selection_total{source="ranker",suite="suite2"} 1`)
}

func (s *ControllerPoolSuite) TestReadOnlyBlocksAPIWrites(t provider.T) {
	pool, _ := newPool("RO")

	w := httptest.NewRecorder()
	pool.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/ping", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func (s *ControllerPoolSuite) TestCORSPreflight(t provider.T) {
	pool, _ := newPool("RW")

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/ping", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "X-user-token")
	w := httptest.NewRecorder()
	pool.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestControllerPoolSuite(t *testing.T) {
	suite.RunSuite(t, new(ControllerPoolSuite))
}
