package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokeforge/src/config"
	"pokeforge/src/models"
)

func testGeneratorConfig(endpoint string) *config.GeneratorConfig {
	return &config.GeneratorConfig{
		Endpoint: endpoint,
		Steps:    30,
		Width:    512,
		Height:   512,
		CFGScale: 7,
		Sampler:  "DPM++ 2M Karras",
		Timeout:  5 * time.Second,
	}
}

func TestClient_Generate_Success(t *testing.T) {
	var received txt2imgRequest
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/sdapi/v1/txt2img", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		json.NewEncoder(w).Encode(txt2imgResponse{Images: []string{"aW1hZ2VieXRlcw=="}})
	}))
	defer upstream.Close()

	client := NewClient(testGeneratorConfig(upstream.URL))

	result, err := client.Generate(context.Background(), "a prompt")
	require.NoError(t, err)

	assert.Equal(t, "data:image/png;base64,aW1hZ2VieXRlcw==", result.ImageURL)
	assert.Equal(t, "a prompt", result.Prompt)

	assert.Equal(t, "a prompt", received.Prompt)
	assert.Equal(t, NegativePrompt, received.NegativePrompt)
	assert.Equal(t, 30, received.Steps)
	assert.Equal(t, 512, received.Width)
	assert.Equal(t, 512, received.Height)
	assert.Equal(t, float64(7), received.CFGScale)
	assert.Equal(t, "DPM++ 2M Karras", received.SamplerName)
}

func TestClient_Generate_UpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer upstream.Close()

	client := NewClient(testGeneratorConfig(upstream.URL))

	_, err := client.Generate(context.Background(), "a prompt")
	assert.ErrorIs(t, err, models.ErrGenerationFailed)
}

func TestClient_Generate_EmptyImageList(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(txt2imgResponse{Images: []string{}})
	}))
	defer upstream.Close()

	client := NewClient(testGeneratorConfig(upstream.URL))

	_, err := client.Generate(context.Background(), "a prompt")
	assert.ErrorIs(t, err, models.ErrGenerationFailed)
}

func TestClient_Generate_Unreachable(t *testing.T) {
	client := NewClient(testGeneratorConfig("http://127.0.0.1:1"))

	_, err := client.Generate(context.Background(), "a prompt")
	assert.ErrorIs(t, err, models.ErrGenerationFailed)
}
