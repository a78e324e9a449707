package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"supportdesk/controllers"
	"supportdesk/middleware"
)

// Initialize attaches middleware and every route to the engine.
func Initialize(r *gin.Engine, log *zap.Logger) {
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(Logger(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.POST("/chat", controllers.Chat)
		api.POST("/tickets", controllers.CreateTicket)
		api.GET("/tickets", controllers.GetTickets)
		api.PATCH("/tickets/:id", controllers.UpdateTicket)
		api.GET("/conversations/:id", controllers.GetConversationByID)
		api.GET("/notifications", controllers.GetNotifications)
	}

	log.Info("routes initialized")
}
