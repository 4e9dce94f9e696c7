// README: Orchestrates generation and edit flows: prompt → model → extract → merge → enrich.
package itinerary

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"tripwise/internal/ai"
)

// ErrNoGenerator is returned when no text-generation credential is configured.
var ErrNoGenerator = errors.New("itinerary: text generator not configured")

// textGenTimeout is the outer deadline on a single model call.
const textGenTimeout = 10 * time.Second

const (
	editFallbackMessage = "Sorry, I couldn't apply that change. Your itinerary is unchanged — please try rephrasing your request."
	editDefaultMessage  = "Here is your updated itinerary."
)

// Service turns model text into validated, image-enriched itineraries.
// It holds no mutable state; every request is independent.
type Service struct {
	llm    ai.TextGenerator
	images ImageResolver
}

func NewService(llm ai.TextGenerator, images ImageResolver) *Service {
	return &Service{llm: llm, images: images}
}

// Generate produces a fresh itinerary for the trip described by tc.
// Malformed model output degrades to heuristic parsing and then to an
// all-placeholder itinerary; only upstream model failures are errors.
func (s *Service) Generate(ctx context.Context, tc TravelContext) ([]DayPlan, error) {
	if s.llm == nil {
		return nil, ErrNoGenerator
	}

	gctx, cancel := context.WithTimeout(ctx, textGenTimeout)
	defer cancel()
	raw, err := s.llm.GenerateText(gctx, buildGeneratePrompt(tc))
	if err != nil {
		return nil, fmt.Errorf("generate itinerary: %w", err)
	}

	days, err := ExtractItinerary(raw)
	if err != nil {
		log.Printf("itinerary extraction failed, falling back to placeholders: %v", err)
		days = nil
	}
	days = Normalize(days, tc.NumberOfDays)
	enrichImages(ctx, s.images, days, tc)
	return days, nil
}

// Edit applies a free-text user instruction to the prior itinerary.
// A missing model reply is a hard error; an unparseable reply is a soft
// no-op that returns the prior itinerary unchanged.
func (s *Service) Edit(ctx context.Context, prior []DayPlan, userMessage string, tc TravelContext) (*EditResult, error) {
	if s.llm == nil {
		return nil, ErrNoGenerator
	}

	gctx, cancel := context.WithTimeout(ctx, textGenTimeout)
	defer cancel()
	raw, err := s.llm.GenerateText(gctx, buildEditPrompt(prior, userMessage, tc))
	if err != nil {
		return nil, fmt.Errorf("edit itinerary: %w", err)
	}

	payload, err := ExtractEdit(raw)
	if err != nil || payload.Itinerary == nil {
		// Never return a partial or corrupt mutation.
		msg := editFallbackMessage
		if err == nil && strings.TrimSpace(payload.Message) != "" {
			msg = payload.Message
		}
		return &EditResult{Message: msg, Itinerary: prior}, nil
	}

	merged := MergeEdit(prior, payload.Itinerary)
	enrichImages(ctx, s.images, merged, tc)

	msg := strings.TrimSpace(payload.Message)
	if msg == "" {
		msg = editDefaultMessage
	}
	return &EditResult{Message: msg, Itinerary: merged}, nil
}
