package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCollector_Endpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	collector := NewCollector()
	collector.RecordGeneration("success", 2*time.Second)
	collector.RecordGeneration("failure", time.Second)

	router := gin.New()
	router.Use(collector.Middleware())
	router.GET("/metrics", collector.Handler())
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "pokeforge_generation_total")
	assert.Contains(t, body, `outcome="success"`)
	assert.Contains(t, body, `outcome="failure"`)
	assert.Contains(t, body, "pokeforge_http_requests_total")
	assert.Contains(t, body, "pokeforge_generation_latency_seconds")
}
