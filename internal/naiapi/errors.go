package naiapi

import "fmt"

var (
	ErrMissingAPIKey              = fmt.Errorf("novelai api key is missing")
	ErrInvalidDirectorJSON        = fmt.Errorf("invalid json in director params")
	ErrDirectorParamsNotObject    = fmt.Errorf("director params must decode to a json object")
	ErrUnknownSampler             = fmt.Errorf("unknown sampler")
	ErrZipResponseNotImplemented  = fmt.Errorf("zip response handling not implemented yet")
	ErrJSONResponseNotImplemented = fmt.Errorf("json response handling not implemented yet, structure unknown")
	ErrUnexpectedContentType      = fmt.Errorf("unexpected content type")
	ErrStreamDecodeFailed         = fmt.Errorf("could not parse image data from event stream")
	ErrRequestTimeout             = fmt.Errorf("request to novelai timed out")
	ErrNetwork                    = fmt.Errorf("network error connecting to novelai")
)

// APIError carries a non-2xx response from the generate-image endpoint.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("novelai api error, status %d: %s", e.StatusCode, e.Message)
}
