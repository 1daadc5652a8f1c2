package routes

import (
	controller "fittrack-backend/controllers"

	"github.com/gin-gonic/gin"
)

func UserRoutes(incomingRoutes *gin.RouterGroup) {
	incomingRoutes.GET("/user/dashboard", controller.GetUserDashboard())
	incomingRoutes.GET("/user/profile", controller.GetProfile())
	incomingRoutes.POST("/user/profile/image", controller.UploadProfileImage())
	incomingRoutes.GET("/user/profile/image-url", controller.GetProfileImageURL())
}
