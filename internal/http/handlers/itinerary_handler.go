// README: Itinerary generation and edit endpoints.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/googleapi"

	"tripwise/internal/modules/itinerary"
)

// ItineraryService is implemented by itinerary.Service; tests stub it.
type ItineraryService interface {
	Generate(ctx context.Context, tc itinerary.TravelContext) ([]itinerary.DayPlan, error)
	Edit(ctx context.Context, prior []itinerary.DayPlan, userMessage string, tc itinerary.TravelContext) (*itinerary.EditResult, error)
}

type ItineraryHandler struct {
	svc ItineraryService
}

func NewItineraryHandler(svc ItineraryService) *ItineraryHandler {
	return &ItineraryHandler{svc: svc}
}

// Generate handles POST /api/itinerary/generate.
func (h *ItineraryHandler) Generate(c *gin.Context) {
	var tc itinerary.TravelContext
	if err := c.ShouldBindJSON(&tc); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(tc.Destination) == "" {
		writeError(c, http.StatusBadRequest, "missing destination")
		return
	}
	if tc.NumberOfDays < 1 {
		writeError(c, http.StatusBadRequest, "numberOfDays must be at least 1")
		return
	}

	days, err := h.svc.Generate(c.Request.Context(), tc)
	if err != nil {
		writeGenerationError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"itinerary": days})
}

type editRequest struct {
	CurrentItinerary []itinerary.DayPlan     `json:"currentItinerary"`
	UserMessage      string                  `json:"userMessage"`
	TravelContext    itinerary.TravelContext `json:"travelContext"`
}

// Edit handles POST /api/itinerary/edit.
func (h *ItineraryHandler) Edit(c *gin.Context) {
	var req editRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.UserMessage) == "" {
		writeError(c, http.StatusBadRequest, "missing userMessage")
		return
	}
	if len(req.CurrentItinerary) == 0 {
		writeError(c, http.StatusBadRequest, "missing currentItinerary")
		return
	}

	result, err := h.svc.Edit(c.Request.Context(), req.CurrentItinerary, req.UserMessage, req.TravelContext)
	if err != nil {
		writeGenerationError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, result)
}

// writeGenerationError maps model-side failures onto the error envelope,
// propagating the upstream status and body when the AI backend reported one.
func writeGenerationError(c *gin.Context, err error) {
	if errors.Is(err, itinerary.ErrNoGenerator) {
		writeError(c, http.StatusInternalServerError, "text generation is not configured")
		return
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		status := gerr.Code
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		details := strings.TrimSpace(gerr.Body)
		if details == "" {
			details = gerr.Message
		}
		writeErrorDetails(c, status, "text generation failed", details)
		return
	}

	writeErrorDetails(c, http.StatusBadGateway, "text generation failed", err.Error())
}
