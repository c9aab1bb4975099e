package model

type GenerationRequest struct {
	Enabled bool `json:"enabled"`

	APIKey string `json:"api_key"` // NovelAI bearer token, passed through, never logged

	Prompt string `json:"prompt"`

	NegativePrompt string `json:"negative_prompt"`

	Width int `json:"width"`

	Height int `json:"height"`

	Steps int `json:"steps"`

	Scale float64 `json:"scale"`

	Sampler string `json:"sampler"`

	Seed *int64 `json:"seed"` // nil or -1 lets the remote service pick one

	DirectorParams string `json:"director_params"` // raw JSON object text, merged into the outbound parameters
}

type GenerationResponse struct {
	RequestId string `json:"request_id"`

	Status string `json:"status"` // completed, failed, skipped

	Message string `json:"message,omitempty"`

	Images []ImagePayload `json:"images,omitempty"`
}

type ImagePayload struct {
	Format string `json:"format"` // png, jpeg...

	Width int `json:"width"`

	Height int `json:"height"`

	Data string `json:"data"` // base64 encoded image bytes
}

type SamplersResponse struct {
	Samplers []string `json:"samplers"`

	Default string `json:"default"`
}
