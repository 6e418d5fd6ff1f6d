package main

import (
	"fmt"
	"log"
	"os"

	"incorpx-backend/config"
	"incorpx-backend/controllers"
	"incorpx-backend/routes"
	"incorpx-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.InitStore()
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	notifier := services.NewNotifyService()
	if notifier.Enabled() {
		controllers.Notifier = notifier
		log.Println("Ticket alerts enabled")
	}

	backup := services.NewBackupService(config.StorePath, os.Getenv("BACKUP_DIR"))
	backup.StartScheduler()

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
