package routes

import (
	"academy_payments/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathSessions = "/sessions"

func addActivityRoutes(rg *gin.RouterGroup, activityHandler *handlers.ActivityHandler, emailHandler *handlers.EmailHandler, sessionHandler *handlers.SessionHandler) {
	rg.POST("/send-email", emailHandler.SendEmail)
	rg.POST("/send-contact-email", activityHandler.SubmitContact)
	rg.POST("/send-webinar-registration", activityHandler.RegisterWebinar)
	rg.POST("/log-activity", activityHandler.LogActivity)
	rg.POST("/track-analytics", activityHandler.TrackAnalytics)

	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", sessionHandler.StartSession)
		sessions.DELETE("/:id", sessionHandler.EndSession)
	}
}
