package main

import (
	"context"
	"net/http"
	"os"

	controller "fittrack-backend/controllers"
	"fittrack-backend/database"
	middleware "fittrack-backend/middleware"
	routes "fittrack-backend/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file found, relying on process environment")
	}
}

func main() {
	if err := database.Ping(context.Background()); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}
	log.Info("connected to MongoDB")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "hi developers"})
	})

	// Public routes
	publicRoutes := router.Group("/")
	{
		publicRoutes.POST("/user/signup", controller.SignUp())
		publicRoutes.POST("/user/signin", controller.SignIn())
		publicRoutes.POST("/user/refresh", controller.RefreshToken()) // Refresh token doesn't need auth middleware
	}

	// Private routes
	privateRoutes := router.Group("/")
	privateRoutes.Use(middleware.Authentication())
	{
		routes.UserRoutes(privateRoutes)
		routes.WorkoutRoutes(privateRoutes)
		routes.ChatRoutes(privateRoutes)
	}

	router.Run(":" + port)
}
