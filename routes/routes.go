package routes

import (
	"incorpx-backend/config"
	"incorpx-backend/controllers"
	"incorpx-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:   []string{"Content-Length", "Content-Disposition"},
	}))

	r.Use(config.PerformanceLogger())

	// Uploaded documents are served back by path
	r.Static("/files", config.UploadDir())

	r.GET("/api/health", controllers.Health)

	admin := r.Group("/api/admin")
	{
		admin.POST("/login", controllers.AdminLogin)

		admin.Use(utils.AuthMiddleware())

		// Client account routes
		clients := admin.Group("/clients")
		{
			clients.GET("", controllers.GetClients)
			clients.POST("", controllers.CreateClient)
			clients.PATCH("/:id", controllers.UpdateClient)
			clients.DELETE("/:id", controllers.DeleteClient)
			clients.POST("/:id/docs", controllers.AttachDocument)
			clients.POST("/:id/payments", controllers.AddPayment)
		}

		// Data management routes
		admin.GET("/export", controllers.ExportClients)
		admin.POST("/import", controllers.ImportClients)
		admin.POST("/wipe", controllers.WipeClients)
	}

	client := r.Group("/api/client")
	{
		client.POST("/login", controllers.ClientLogin)
		client.GET("/portal", controllers.GetPortal)
		client.POST("/:id/tickets", controllers.CreateTicket)
	}

	return r
}
