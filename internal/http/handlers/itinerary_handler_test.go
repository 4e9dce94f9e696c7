// README: Endpoint tests for the itinerary handlers.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"tripwise/internal/http/handlers"
	"tripwise/internal/modules/itinerary"
)

// stubItineraryService is a test double for handlers.ItineraryService.
type stubItineraryService struct {
	days       []itinerary.DayPlan
	genErr     error
	editResult *itinerary.EditResult
	editErr    error
}

func (s *stubItineraryService) Generate(_ context.Context, _ itinerary.TravelContext) ([]itinerary.DayPlan, error) {
	return s.days, s.genErr
}

func (s *stubItineraryService) Edit(_ context.Context, _ []itinerary.DayPlan, _ string, _ itinerary.TravelContext) (*itinerary.EditResult, error) {
	return s.editResult, s.editErr
}

func buildTestRouter(svc handlers.ItineraryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handlers.NewItineraryHandler(svc)
	r.POST("/api/itinerary/generate", h.Generate)
	r.POST("/api/itinerary/edit", h.Edit)
	return r
}

func doRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerate_OK(t *testing.T) {
	svc := &stubItineraryService{days: []itinerary.DayPlan{
		{Day: 1, Title: "Arrival", Activities: []string{"Land"}, ImageURL: "img://1"},
	}}
	r := buildTestRouter(svc)

	w := doRequest(r, http.MethodPost, "/api/itinerary/generate", map[string]any{
		"destination":  "Lisbon",
		"numberOfDays": 1,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Itinerary []itinerary.DayPlan `json:"itinerary"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(resp.Itinerary) != 1 || resp.Itinerary[0].Title != "Arrival" {
		t.Errorf("got %+v", resp.Itinerary)
	}
}

func TestGenerate_MissingDestination(t *testing.T) {
	r := buildTestRouter(&stubItineraryService{})
	w := doRequest(r, http.MethodPost, "/api/itinerary/generate", map[string]any{
		"numberOfDays": 3,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestGenerate_InvalidDayCount(t *testing.T) {
	r := buildTestRouter(&stubItineraryService{})
	w := doRequest(r, http.MethodPost, "/api/itinerary/generate", map[string]any{
		"destination": "Lisbon",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestGenerate_GeneratorNotConfigured(t *testing.T) {
	r := buildTestRouter(&stubItineraryService{genErr: itinerary.ErrNoGenerator})
	w := doRequest(r, http.MethodPost, "/api/itinerary/generate", map[string]any{
		"destination":  "Lisbon",
		"numberOfDays": 2,
	})
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}

func TestEdit_OK(t *testing.T) {
	svc := &stubItineraryService{editResult: &itinerary.EditResult{
		Message:   "Added a cooking class to day 2",
		Itinerary: []itinerary.DayPlan{{Day: 1, Title: "Arrival", Activities: []string{"Land"}}},
	}}
	r := buildTestRouter(svc)

	w := doRequest(r, http.MethodPost, "/api/itinerary/edit", map[string]any{
		"currentItinerary": []map[string]any{{"day": 1, "title": "Arrival", "activities": []string{"Land"}}},
		"userMessage":      "add a cooking class to day 2",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp itinerary.EditResult
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Message != "Added a cooking class to day 2" {
		t.Errorf("got message %q", resp.Message)
	}
}

func TestEdit_MissingUserMessage(t *testing.T) {
	r := buildTestRouter(&stubItineraryService{})
	w := doRequest(r, http.MethodPost, "/api/itinerary/edit", map[string]any{
		"currentItinerary": []map[string]any{{"day": 1, "title": "Arrival"}},
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestEdit_MissingItinerary(t *testing.T) {
	r := buildTestRouter(&stubItineraryService{})
	w := doRequest(r, http.MethodPost, "/api/itinerary/edit", map[string]any{
		"userMessage": "add a spa day",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
