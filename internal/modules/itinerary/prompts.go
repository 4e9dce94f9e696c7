// README: Prompt construction for itinerary generation and edits.
package itinerary

import (
	"encoding/json"
	"fmt"
	"strings"
)

// buildGeneratePrompt embeds the trip parameters and the required JSON shape.
// The model is asked for a bare JSON array; the extractor still tolerates
// fences and prose around it.
func buildGeneratePrompt(tc TravelContext) string {
	travelers := fmt.Sprintf("%d adult(s)", tc.Adults)
	if tc.Children > 0 {
		travelers += fmt.Sprintf(" and %d child(ren)", tc.Children)
	}

	var prefs []string
	if tc.TravelStyle != "" {
		prefs = append(prefs, "Travel style: "+tc.TravelStyle)
	}
	if tc.HotelPreferences != "" {
		prefs = append(prefs, "Hotel preferences: "+tc.HotelPreferences)
	}
	if tc.ActivityPreferences != "" {
		prefs = append(prefs, "Activity preferences: "+tc.ActivityPreferences)
	}
	prefsBlock := "None specified."
	if len(prefs) > 0 {
		prefsBlock = strings.Join(prefs, "\n")
	}

	return fmt.Sprintf(`Role: You are a travel planner creating a day-by-day itinerary.

Trip:
- From: %s
- Destination: %s
- Dates: %s to %s (%d days)
- Travelers: %s

Preferences:
%s

Produce exactly %d days. Each day needs a short title, 3-5 concrete
activities, and a comma-separated "imageKeywords" string of 2-3 visual
concepts for that day (landmarks, scenery, food).

Respond with ONLY a JSON array in this shape, no prose before or after:
[{"day": 1, "title": "...", "activities": ["...", "..."], "imageKeywords": "..."}]
`,
		tc.DepartureCity, tc.Destination, tc.StartDate, tc.EndDate,
		tc.NumberOfDays, travelers, prefsBlock, tc.NumberOfDays)
}

// buildEditPrompt serializes the current itinerary so the model can return a
// full replacement plus a one-line summary of what it changed.
func buildEditPrompt(current []DayPlan, userMessage string, tc TravelContext) string {
	serialized, err := json.Marshal(current)
	if err != nil {
		serialized = []byte("[]")
	}

	return fmt.Sprintf(`Role: You are a travel planner revising an existing itinerary.

Trip context: departing %s for %s, %s to %s, travel style %q.

Current itinerary (JSON):
%s

User request: %s

Apply the request to the itinerary. Keep every day the user did not ask to
change exactly as it is, including each day's "imageKeywords". Return the
FULL revised itinerary, not a diff.

Respond with ONLY a JSON object in this shape, no prose before or after:
{"message": "one-sentence summary of the change", "itinerary": [{"day": 1, "title": "...", "activities": ["..."], "imageKeywords": "..."}]}
`,
		tc.DepartureCity, tc.Destination, tc.StartDate, tc.EndDate, tc.TravelStyle,
		serialized, userMessage)
}
