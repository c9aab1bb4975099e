package naiapi

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"strings"

	"github.com/ameyasu/novelai-http/internal/logger"
)

type GeneratedImage struct {
	Format string

	Width int

	Height int

	Data []byte
}

type GenerationResult struct {
	Images []GeneratedImage

	Info string
}

// decodeResponse classifies the response by content type. The real wire
// format is unverified, zip and json bodies fail with explicit errors
// instead of guessing a structure.
func (c *Client) decodeResponse(response *http.Response, requestedSeed int64) (*GenerationResult, error) {
	rawBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNetwork, err)
	}
	contentType := response.Header.Get("Content-Type")
	logger.Infof("novelai response status: %d, content type: %s", response.StatusCode, contentType)

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, newAPIError(response.StatusCode, rawBody)
	}

	switch {
	case strings.Contains(contentType, "application/zip"):
		return nil, ErrZipResponseNotImplemented
	case strings.Contains(contentType, "text/event-stream") || strings.HasPrefix(strings.TrimSpace(string(rawBody)), "event:"):
		return c.decodeEventStream(response, rawBody, requestedSeed)
	case strings.Contains(contentType, "application/json"):
		return nil, ErrJSONResponseNotImplemented
	default:
		return nil, fmt.Errorf("%w: %q, status %d", ErrUnexpectedContentType, contentType, response.StatusCode)
	}
}

// decodeEventStream scavenges the first data: line for a base64 image.
func (c *Client) decodeEventStream(response *http.Response, rawBody []byte, requestedSeed int64) (*GenerationResult, error) {
	var b64Data string
	for _, line := range strings.Split(strings.TrimSpace(string(rawBody)), "\n") {
		if strings.HasPrefix(line, "data:") {
			b64Data = strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			break // assume the first data line carries the image
		}
	}
	if b64Data == "" {
		return nil, fmt.Errorf("%w: no data line found, status %d", ErrStreamDecodeFailed, response.StatusCode)
	}

	imageBytes, err := base64.StdEncoding.DecodeString(b64Data)
	if err != nil {
		return nil, fmt.Errorf("%w: bad base64 data: %s, status %d", ErrStreamDecodeFailed, err, response.StatusCode)
	}
	imageConfig, format, err := image.DecodeConfig(bytes.NewReader(imageBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: undecodable image bytes: %s, status %d", ErrStreamDecodeFailed, err, response.StatusCode)
	}

	return &GenerationResult{
		Images: []GeneratedImage{{
			Format: format,
			Width:  imageConfig.Width,
			Height: imageConfig.Height,
			Data:   imageBytes,
		}},
		Info: buildResultInfo(response.Header, requestedSeed),
	}, nil
}

func buildResultInfo(header http.Header, requestedSeed int64) string {
	info := fmt.Sprintf("generated image via novelai, requested seed: %d", requestedSeed)
	if actualSeed := header.Get("actual-seed"); actualSeed != "" {
		info += ", actual seed: " + actualSeed
	}
	if anlasCost := header.Get("anlas-cost"); anlasCost != "" {
		info += ", anlas cost: " + anlasCost
	}
	return info
}

func newAPIError(statusCode int, body []byte) *APIError {
	var errorBody struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errorBody); err == nil && errorBody.Message != "" {
		return &APIError{StatusCode: statusCode, Message: errorBody.Message}
	}
	return &APIError{StatusCode: statusCode, Message: truncate(string(body), 200)}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
