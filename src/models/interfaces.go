package models

import (
	"context"
	"errors"
)

// ErrGenerationFailed is returned when the upstream image service reports a
// non-success status or an empty image list. The call is never retried
// automatically; the caller may resubmit.
var ErrGenerationFailed = errors.New("image generation failed")

// ImageGenerator defines the interface for the external image-generation client
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) (*ImageResult, error)
}

// CacheStore defines the interface for caching generation responses
type CacheStore interface {
	Get(ctx context.Context, key string) (*GenerateResponse, error)
	Set(ctx context.Context, key string, response *GenerateResponse) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// GenerateCaller is the client-side view of the generation endpoint.
type GenerateCaller interface {
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)
}

// Notifier receives user-facing notifications from the client workflow.
type Notifier interface {
	Success(msg string)
	Warn(msg string)
	Error(msg string)
}
