package routes

import (
	"encoding/json"
	"time"

	"academy_payments/internal/adapter/http/handlers"

	"github.com/didip/tollbooth"
	"github.com/didip/tollbooth/limiter"
	"github.com/didip/tollbooth_gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const defaultRateLimitPerMinute = 120

// corsMiddleware allows every origin when origins is empty; the payment
// endpoints are called from the storefront and from gateway servers.
func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Authorization",
			handlers.HeaderSessionID, handlers.HeaderCallbackSignature,
			handlers.HeaderMercadoPagoSig, handlers.HeaderMercadoPagoReqID,
		},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}

// rateLimitMiddleware is a per-IP token bucket refilled perMinute times a minute.
func rateLimitMiddleware(perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		perMinute = defaultRateLimitPerMinute
	}
	message, _ := json.Marshal(map[string]any{
		"success": false,
		"error":   "Too many requests. Please slow down.",
		"code":    "RATE_LIMITED",
	})

	lmt := tollbooth.NewLimiter(float64(perMinute)/60, &limiter.ExpirableOptions{
		DefaultExpirationTTL: time.Hour,
	})
	lmt.SetBurst(perMinute)
	lmt.SetMessageContentType("application/json")
	lmt.SetMessage(string(message))
	return tollbooth_gin.LimitHandler(lmt)
}

func sessionMiddleware(app *app) gin.HandlerFunc {
	return handlers.SessionMiddleware(app.sessions)
}
