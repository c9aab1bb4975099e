package server

import (
	"net/http"
	"time"

	"github.com/ameyasu/novelai-http/internal/logger"
	"github.com/ameyasu/novelai-http/internal/naiapi"
	"github.com/ameyasu/novelai-http/internal/server/handler"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
)

func Start(host, port, apiKey string, client *naiapi.Client) {
	router := InitRouter(apiKey, client)
	if err := router.Run(host + ":" + port); err != nil {
		panic(err)
	}
}

// PermissionCheckMiddleware guards the bridge itself, an empty key
// disables the check for loopback-only deployments.
func PermissionCheckMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}
		requestKey := c.GetHeader("API-KEY")
		if requestKey != apiKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Invalid API key",
			})
			return
		}
		c.Next()
	}
}

func InitRouter(apiKey string, client *naiapi.Client) *gin.Engine {
	router := gin.New()
	router.Use(ginzap.RecoveryWithZap(logger.ZapLogger, true))
	router.Use(ginzap.Ginzap(logger.ZapLogger, time.RFC3339Nano, true))
	router.Use(cors.Default())
	pprof.Register(router)

	apiGroup := router.Group("", PermissionCheckMiddleware(apiKey))
	apiGroup.POST("/generation", handler.NewGenerationHandler(client))
	apiGroup.GET("/samplers", handler.ListSamplers)
	return router
}
