package naiapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ameyasu/novelai-http/internal/logger"
)

const (
	// the endpoint is unofficial and may change without notice
	DefaultEndpoint = "https://api.novelai.net/ai/generate-image"
	DefaultModel    = "nai-diffusion-3"
)

type ClientConfig struct {
	Endpoint string `mapstructure:"endpoint"`

	Model string `mapstructure:"model"`

	TimeoutSeconds int `mapstructure:"timeoutSeconds"`
}

type Client struct {
	endpoint   string
	model      string
	httpClient *http.Client
}

func NewClient(config ClientConfig) *Client {
	if config.Endpoint == "" {
		config.Endpoint = DefaultEndpoint
	}
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if config.TimeoutSeconds <= 0 {
		config.TimeoutSeconds = 180 // image generation is slow
	}
	return &Client{
		endpoint: config.Endpoint,
		model:    config.Model,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
	}
}

// Generate sends one synchronous generation request, no retries. Every
// failure comes back as an error, the caller turns it into a zero-image
// result for the host.
func (c *Client) Generate(apiKey string, request *GenerationRequest) (*GenerationResult, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	directorParams, err := parseDirectorParams(request.DirectorJSON)
	if err != nil {
		return nil, err
	}
	request.applyDefaults()
	if !IsValidSampler(request.Sampler) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSampler, request.Sampler)
	}

	payload := c.buildPayload(request, directorParams)
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	// full payload is logged for debugging, the api key only ever lives in the header
	logger.Infof("sending generation payload to %s: %s", c.endpoint, payloadBytes)

	httpRequest, err := http.NewRequest(http.MethodPost, c.endpoint, bytes.NewReader(payloadBytes))
	if err != nil {
		return nil, err
	}
	httpRequest.Header.Set("Authorization", "Bearer "+apiKey)
	httpRequest.Header.Set("Content-Type", "application/json")
	httpRequest.Header.Set("Accept", "application/json")

	response, err := c.httpClient.Do(httpRequest)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			return nil, ErrRequestTimeout
		}
		return nil, fmt.Errorf("%w: %s", ErrNetwork, err)
	}
	defer response.Body.Close()

	return c.decodeResponse(response, request.Seed)
}
