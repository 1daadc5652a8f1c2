package controllers

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"fittrack-backend/helpers"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

var geminiClient = helpers.NewGeminiClient(os.Getenv("GEMINI_API_KEY"))

func ChatWithAssistant() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		var req struct {
			Message string             `json:"message"`
			History []helpers.ChatTurn `json:"history"`
		}
		if err := c.BindJSON(&req); err != nil {
			helpers.RespondError(c, helpers.NewValidationError("Invalid input"))
			return
		}
		if strings.TrimSpace(req.Message) == "" {
			helpers.RespondError(c, helpers.NewValidationError("Message is required"))
			return
		}

		reply, err := geminiClient.GenerateReply(ctx, req.Message, req.History)
		if err != nil {
			// The assistant never hard-fails the conversation: canned advice
			// answers when the upstream model is unreachable, times out, or
			// no API key is configured.
			if !errors.Is(err, helpers.ErrGeminiUnconfigured) {
				log.WithError(err).Warn("assistant upstream failed, using fallback responder")
			}
			c.JSON(http.StatusOK, gin.H{
				"message":  helpers.FitBotFallbackReply(req.Message),
				"success":  true,
				"fallback": true,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": reply, "success": true})
	}
}
