package routes

import (
	controller "fittrack-backend/controllers"

	"github.com/gin-gonic/gin"
)

func ChatRoutes(incomingRoutes *gin.RouterGroup) {
	incomingRoutes.POST("/user/chat", controller.ChatWithAssistant())
}
