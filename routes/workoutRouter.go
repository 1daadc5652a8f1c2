package routes

import (
	controller "fittrack-backend/controllers"

	"github.com/gin-gonic/gin"
)

func WorkoutRoutes(incomingRoutes *gin.RouterGroup) {
	incomingRoutes.GET("/user/workout", controller.GetWorkoutsByDate())
	incomingRoutes.POST("/user/workout", controller.AddWorkout())
	incomingRoutes.PUT("/user/workout/:id", controller.UpdateWorkout())
	incomingRoutes.DELETE("/user/workout/:id", controller.DeleteWorkout())
}
