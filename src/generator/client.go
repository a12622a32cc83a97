package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"pokeforge/src/config"
	"pokeforge/src/models"
)

const txt2imgPath = "/sdapi/v1/txt2img"

// Client calls a Stable-Diffusion-compatible txt2img endpoint. Generation
// parameters are fixed per instance; only the prompt varies per call. One
// synchronous HTTP call per request, bounded by the configured timeout, with
// no automatic retry.
type Client struct {
	config     *config.GeneratorConfig
	httpClient *http.Client
}

type txt2imgRequest struct {
	Prompt         string  `json:"prompt"`
	NegativePrompt string  `json:"negative_prompt"`
	Steps          int     `json:"steps"`
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	CFGScale       float64 `json:"cfg_scale"`
	SamplerName    string  `json:"sampler_name"`
}

type txt2imgResponse struct {
	Images []string `json:"images"`
}

func NewClient(cfg *config.GeneratorConfig) *Client {
	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Generate submits the prompt and returns the first image as a data URI.
// A non-success status or an empty image list yields ErrGenerationFailed.
func (c *Client) Generate(ctx context.Context, prompt string) (*models.ImageResult, error) {
	payload := txt2imgRequest{
		Prompt:         prompt,
		NegativePrompt: NegativePrompt,
		Steps:          c.config.Steps,
		Width:          c.config.Width,
		Height:         c.config.Height,
		CFGScale:       c.config.CFGScale,
		SamplerName:    c.config.Sampler,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal generation request: %w", err)
	}

	url := strings.TrimSuffix(c.config.Endpoint, "/") + txt2imgPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d, body: %s",
			models.ErrGenerationFailed, resp.StatusCode, string(respBody))
	}

	var result txt2imgResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", models.ErrGenerationFailed, err)
	}

	if len(result.Images) == 0 {
		return nil, fmt.Errorf("%w: upstream returned no images", models.ErrGenerationFailed)
	}

	return &models.ImageResult{
		ImageURL: "data:image/png;base64," + result.Images[0],
		Prompt:   prompt,
	}, nil
}
