package handlers

import (
	"log"
	"net/http"
	"tripgenix/services"

	"github.com/gin-gonic/gin"
)

type ChatRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

// ChatHandler wires one chat turn through the orchestrator. The session
// store is created in main and owns all conversation state.
func ChatHandler(sessions *services.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		orchestrator := services.NewOrchestrator(services.GetAIClient())
		state := sessions.Get(req.SessionID)

		reply, err := orchestrator.Step(c.Request.Context(), state, req.Message)
		if err != nil {
			log.Printf("⚠️  Chat step failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Itinerary generation failed, please try again"})
			return
		}

		c.JSON(http.StatusOK, ChatResponse{Reply: reply})
	}
}

// ResetChatHandler clears one conversation. Explicit user action, mirrors
// the original "clear chat" control.
func ResetChatHandler(sessions *services.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Query("session_id")
		if sessionID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing session_id"})
			return
		}

		sessions.Reset(sessionID)
		c.JSON(http.StatusOK, gin.H{"message": "Chat cleared"})
	}
}
