package handlers

import (
	"log"
	"net/http"
	"tripgenix/database"

	"github.com/gin-gonic/gin"
)

// HistoryHandler lists a session's generated trips, newest first.
func HistoryHandler(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing session_id"})
		return
	}

	trips, err := database.ListTrips(sessionID)
	if err != nil {
		log.Printf("❌ Failed to list trips: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load trip history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"trips": trips})
}

// ClearHistoryHandler wipes a session's trip history.
func ClearHistoryHandler(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing session_id"})
		return
	}

	if err := database.ClearTrips(sessionID); err != nil {
		log.Printf("❌ Failed to clear trips: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear trip history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trip history cleared"})
}
