package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"pokeforge/src/cache"
	"pokeforge/src/generator"
	"pokeforge/src/logx"
	"pokeforge/src/metrics"
	"pokeforge/src/models"
)

// GenerateHandler validates a creation request, builds the prompt, forwards it
// to the external image service and relays the result. The cache is optional;
// a nil cache disables it.
type GenerateHandler struct {
	generator models.ImageGenerator
	cache     models.CacheStore
	collector *metrics.Collector
}

func NewGenerateHandler(g models.ImageGenerator, c models.CacheStore, m *metrics.Collector) *GenerateHandler {
	return &GenerateHandler{
		generator: g,
		cache:     c,
		collector: m,
	}
}

func (h *GenerateHandler) HandleGenerate(c *gin.Context) {
	var req models.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if msg := validate(&req); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	prompt := generator.BuildPrompt(req.Name, req.AnimalTypes, req.Abilities, req.Description)

	if h.cache != nil {
		cached, err := h.cache.Get(c.Request.Context(), cache.Key(prompt))
		if err == nil && cached != nil {
			cached.CacheHit = true
			h.record("cache_hit", 0)
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	startTime := time.Now()

	result, err := h.generator.Generate(c.Request.Context(), prompt)
	if err != nil {
		logx.Error(err, "image generation failed", "name", req.Name)
		h.record("failure", time.Since(startTime))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Image generation failed"})
		return
	}

	h.record("success", time.Since(startTime))

	response := &models.GenerateResponse{
		Success:  true,
		ImageURL: result.ImageURL,
		Prompt:   result.Prompt,
	}

	if h.cache != nil {
		_ = h.cache.Set(c.Request.Context(), cache.Key(prompt), response)
	}

	c.JSON(http.StatusOK, response)
}

// validate returns a distinct message per failed condition, empty when the
// request is acceptable. Validation failures never reach the external service.
func validate(req *models.GenerateRequest) string {
	if strings.TrimSpace(req.Name) == "" {
		return "Name is required"
	}
	if len(req.Name) > models.MaxNameLength {
		return "Name is too long"
	}
	if len(req.AnimalTypes) == 0 {
		return "Select at least one animal type"
	}
	if len(req.AnimalTypes) > models.MaxAnimalTypes {
		return "You can select at most 2 animal types"
	}
	if len(req.Abilities) == 0 {
		return "Select at least one ability"
	}
	if len(req.Abilities) > models.MaxAbilities {
		return "You can select at most 3 abilities"
	}
	return ""
}

func (h *GenerateHandler) record(outcome string, latency time.Duration) {
	if h.collector != nil {
		h.collector.RecordGeneration(outcome, latency)
	}
}

func (h *GenerateHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now(),
	})
}
