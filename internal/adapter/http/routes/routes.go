package routes

import (
	"context"
	"os"
	"strings"

	_ "academy_payments/docs" // generated by swag init
	"academy_payments/internal/adapter/http/dto/request"
	"academy_payments/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const DefaultPort = "8080"

// Run builds every component from the environment and serves the API until
// the listener fails.
func Run() error {
	ctx := context.Background()

	app, err := buildApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	router := gin.New()
	setMiddlewares(router)
	request.RegisterValidators()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	v1.Use(sessionMiddleware(app))
	addPingRoutes(v1)
	addPaymentRoutes(v1, app.paymentHandler, app.callbackHandler)
	addActivityRoutes(v1, app.activityHandler, app.emailHandler, app.sessionHandler)

	port := getenvDefault("PORT", DefaultPort)
	logger.Info("[http][server] listening", zap.String("port", port))
	return router.Run(":" + port)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("[http][server] recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(500)
	}))
	router.Use(corsMiddleware(corsOrigins()))
	router.Use(rateLimitMiddleware(rateLimitPerMinute()))
}

func corsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ALLOW_ORIGINS"))
	if raw == "" || raw == "*" {
		return nil
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
