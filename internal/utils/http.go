package utils

import (
	"github.com/ameyasu/novelai-http/internal/model"
	"github.com/gin-gonic/gin"
)

func GinFailedWithMessage(c *gin.Context, status int, message string) {
	c.JSON(status, model.GenerationResponse{
		Status:  "failed",
		Message: message,
	})
}

func GinFailedWithMessageAndRequestId(c *gin.Context, status int, requestId string, message string) {
	c.JSON(status, model.GenerationResponse{
		RequestId: requestId,
		Status:    "failed",
		Message:   message,
	})
}
