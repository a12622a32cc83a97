package models

// GenerateRequest is the body of POST /api/generate-pokemon. Field names match
// the frontend payload.
type GenerateRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	AnimalTypes []string `json:"animalTypes"`
	Abilities   []string `json:"abilities"`
}

type GenerateResponse struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"imageUrl"`
	Prompt   string `json:"prompt"`
	CacheHit bool   `json:"cacheHit,omitempty"`
}

// ImageResult is what the image generator returns for one prompt: the first
// upstream image as a displayable data URI, plus the prompt that produced it.
type ImageResult struct {
	ImageURL string
	Prompt   string
}

// Selection caps enforced on generation requests and mirrored by the client
// pickers.
const (
	MaxAnimalTypes = 2
	MaxAbilities   = 3
	MaxNameLength  = 50
)
