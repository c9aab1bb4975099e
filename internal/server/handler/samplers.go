package handler

import (
	"github.com/ameyasu/novelai-http/internal/model"
	"github.com/ameyasu/novelai-http/internal/naiapi"
	"github.com/gin-gonic/gin"
)

func ListSamplers(c *gin.Context) {
	c.JSON(200, model.SamplersResponse{
		Samplers: naiapi.Samplers,
		Default:  naiapi.DefaultSampler,
	})
}
