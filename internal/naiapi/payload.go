package naiapi

import (
	"encoding/json"
	"fmt"
	"strings"
)

type GenerationRequest struct {
	Prompt string

	NegativePrompt string

	Width int

	Height int

	Steps int

	Scale float64

	Sampler string

	Seed int64 // -1 lets the service pick a random seed

	// DirectorJSON holds the raw json object text of the director tool
	// params, their wire shape is not publicly documented so they are
	// passed through as an opaque map
	DirectorJSON string
}

// generationPayload is the speculative wire shape of the generate-image
// endpoint, parameters stays a map so director params can shadow any
// builtin key
type generationPayload struct {
	Input      string                 `json:"input"`
	Model      string                 `json:"model"`
	Action     string                 `json:"action"`
	Parameters map[string]interface{} `json:"parameters"`
}

func (r *GenerationRequest) applyDefaults() {
	if r.Width <= 0 {
		r.Width = 832
	}
	if r.Height <= 0 {
		r.Height = 1216
	}
	if r.Steps <= 0 {
		r.Steps = 28
	}
	if r.Scale <= 0 {
		r.Scale = 6.0
	}
	if r.Sampler == "" {
		r.Sampler = DefaultSampler
	}
}

func parseDirectorParams(raw string) (map[string]interface{}, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var decoded interface{}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDirectorJSON, err)
	}
	params, ok := decoded.(map[string]interface{})
	if !ok {
		return nil, ErrDirectorParamsNotObject
	}
	return params, nil
}

func (c *Client) buildPayload(request *GenerationRequest, directorParams map[string]interface{}) *generationPayload {
	parameters := map[string]interface{}{
		"negative_prompt": request.NegativePrompt,
		"width":           request.Width,
		"height":          request.Height,
		"steps":           request.Steps,
		"scale":           request.Scale,
		"sampler":         request.Sampler,
		"seed":            request.Seed,
		"qualityToggle":   true,
		"ucPreset":        0,
	}
	// last write wins, director params may overwrite any builtin parameter
	for key, value := range directorParams {
		parameters[key] = value
	}
	return &generationPayload{
		Input:      request.Prompt,
		Model:      c.model,
		Action:     "generate",
		Parameters: parameters,
	}
}
