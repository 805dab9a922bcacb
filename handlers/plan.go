package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
	"tripgenix/database"
	"tripgenix/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PlanRequest struct {
	SessionID   string  `json:"session_id" binding:"required"`
	Source      string  `json:"source" binding:"required"`
	Destination string  `json:"destination" binding:"required"`
	FromDate    string  `json:"from_date"`
	ToDate      string  `json:"to_date"`
	Days        int     `json:"days"`
	Budget      float64 `json:"budget" binding:"required,gt=0"`
}

type PlanResponse struct {
	TripID     string                     `json:"trip_id"`
	Itinerary  string                     `json:"itinerary"`
	DistanceKm int                        `json:"distance_km"`
	Transport  []services.TransportOption `json:"transport"`
	Weather    string                     `json:"weather"`
	PDFURL     string                     `json:"pdf_url"`
}

// resolveDays turns the request's date range (or explicit day count) into a
// trip length. Date mode counts both endpoints, so from == to is one day.
func resolveDays(req *PlanRequest) (int, error) {
	if req.FromDate == "" && req.ToDate == "" {
		if req.Days <= 0 {
			return 0, fmt.Errorf("provide either a positive days count or a from_date/to_date range")
		}
		return req.Days, nil
	}

	from, err := time.Parse("2006-01-02", req.FromDate)
	if err != nil {
		return 0, fmt.Errorf("invalid from_date format, use YYYY-MM-DD")
	}
	to, err := time.Parse("2006-01-02", req.ToDate)
	if err != nil {
		return 0, fmt.Errorf("invalid to_date format, use YYYY-MM-DD")
	}
	if to.Before(from) {
		return 0, fmt.Errorf("to_date must not be before from_date")
	}

	return int(to.Sub(from).Hours()/24) + 1, nil
}

// PlanHandler is the single-shot form-mode pipeline: validate, resolve
// distance, derive transport and weather, generate the itinerary and append
// it to the session's history. Any validation or resolution failure aborts
// before the model is invoked.
func PlanHandler(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	req.Source = strings.TrimSpace(req.Source)
	req.Destination = strings.TrimSpace(req.Destination)
	if req.Source == "" || req.Destination == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill source and destination"})
		return
	}

	days, err := resolveDays(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// ── Distance ──────────────────────────────────────────────────────────────
	distanceKm, rerr := services.GetGeoClient().ResolveDistance(req.Source, req.Destination)
	if rerr != nil {
		switch rerr.Kind {
		case services.SourceNotFound, services.DestinationNotFound:
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": rerr.Error(), "code": string(rerr.Kind)})
		default:
			log.Printf("⚠️  Distance resolution failed: %v", rerr)
			c.JSON(http.StatusBadGateway, gin.H{"error": rerr.Error(), "code": string(rerr.Kind)})
		}
		return
	}

	// ── Transport + Weather ───────────────────────────────────────────────────
	transport := services.TransportOptions(distanceKm)
	weather := services.GetWeatherClient().SummaryOrFallback(req.Destination)

	// ── Itinerary ─────────────────────────────────────────────────────────────
	itinerary, err := services.GenerateItinerary(c.Request.Context(), services.GetAIClient(), services.TripContext{
		Source:      req.Source,
		Destination: req.Destination,
		Days:        days,
		Budget:      req.Budget,
		DistanceKm:  distanceKm,
		Transport:   transport,
		Weather:     weather,
	})
	if err != nil {
		log.Printf("⚠️  Itinerary generation failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Itinerary generation failed, please try again"})
		return
	}

	// ── PDF + Persist ─────────────────────────────────────────────────────────
	tripID := uuid.New().String()

	pdfBytes, err := services.GeneratePDFBytes(services.PDFData{
		Source:      req.Source,
		Destination: req.Destination,
		Days:        days,
		Budget:      req.Budget,
		DistanceKm:  distanceKm,
		Weather:     weather,
		Itinerary:   itinerary,
	})
	if err != nil {
		// Download degrades; the itinerary itself is still delivered.
		log.Printf("⚠️  PDF generation failed: %v", err)
		pdfBytes = nil
	}

	if err := database.SaveTrip(&database.Trip{
		ID:          tripID,
		SessionID:   req.SessionID,
		Source:      req.Source,
		Destination: req.Destination,
		Itinerary:   itinerary,
		PDFData:     pdfBytes,
	}); err != nil {
		log.Printf("❌ Failed to save trip: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save trip"})
		return
	}

	c.JSON(http.StatusOK, PlanResponse{
		TripID:     tripID,
		Itinerary:  itinerary,
		DistanceKm: distanceKm,
		Transport:  transport,
		Weather:    weather,
		PDFURL:     "/api/download/" + tripID,
	})
}
