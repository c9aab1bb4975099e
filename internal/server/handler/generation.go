package handler

import (
	"encoding/base64"
	"errors"

	"github.com/ameyasu/novelai-http/internal/logger"
	"github.com/ameyasu/novelai-http/internal/model"
	"github.com/ameyasu/novelai-http/internal/naiapi"
	"github.com/ameyasu/novelai-http/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NewGenerationHandler translates one host request into one synchronous
// novelai call. The host always gets a well formed response back, every
// adapter failure turns into a zero-image response with a message.
func NewGenerationHandler(client *naiapi.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req model.GenerationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.GinFailedWithMessage(c, 400, err.Error())
			return
		}
		requestId := uuid.New().String()
		if !req.Enabled {
			logger.Infof("generation %s: novelai override disabled, skipping", requestId)
			c.JSON(200, model.GenerationResponse{
				RequestId: requestId,
				Status:    "skipped",
				Message:   "novelai override disabled",
			})
			return
		}

		seed := int64(-1)
		if req.Seed != nil {
			seed = *req.Seed
		}
		result, err := client.Generate(req.APIKey, &naiapi.GenerationRequest{
			Prompt:         req.Prompt,
			NegativePrompt: req.NegativePrompt,
			Width:          req.Width,
			Height:         req.Height,
			Steps:          req.Steps,
			Scale:          req.Scale,
			Sampler:        req.Sampler,
			Seed:           seed,
			DirectorJSON:   req.DirectorParams,
		})
		if err != nil {
			logger.Errorf("generation %s failed: %s", requestId, err)
			utils.GinFailedWithMessageAndRequestId(c, statusForError(err), requestId, err.Error())
			return
		}

		images := make([]model.ImagePayload, 0, len(result.Images))
		for _, img := range result.Images {
			images = append(images, model.ImagePayload{
				Format: img.Format,
				Width:  img.Width,
				Height: img.Height,
				Data:   base64.StdEncoding.EncodeToString(img.Data),
			})
		}
		logger.Infof("generation %s completed with %d image(s)", requestId, len(images))
		c.JSON(200, model.GenerationResponse{
			RequestId: requestId,
			Status:    "completed",
			Message:   result.Info,
			Images:    images,
		})
	}
}

func statusForError(err error) int {
	var apiErr *naiapi.APIError
	switch {
	case errors.Is(err, naiapi.ErrMissingAPIKey),
		errors.Is(err, naiapi.ErrInvalidDirectorJSON),
		errors.Is(err, naiapi.ErrDirectorParamsNotObject),
		errors.Is(err, naiapi.ErrUnknownSampler):
		return 400
	case errors.Is(err, naiapi.ErrRequestTimeout):
		return 504
	case errors.As(err, &apiErr):
		return 502
	default:
		return 502
	}
}
