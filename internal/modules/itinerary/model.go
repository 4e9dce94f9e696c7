// README: Itinerary domain model shared by extraction, merge, and HTTP layers.
package itinerary

// DayPlan is one day of a trip. Day numbers come from the model and are
// nominally contiguous starting at 1, but uniqueness is not enforced.
type DayPlan struct {
	Day           int      `json:"day"`
	Title         string   `json:"title"`
	Activities    []string `json:"activities"`
	ImageKeywords string   `json:"imageKeywords,omitempty"`
	ImageURL      string   `json:"imageUrl,omitempty"`
}

// EditPayload is the object shape expected from the model on an edit request.
// Itinerary stays nil when the model omitted the array, which callers treat
// as a parse failure.
type EditPayload struct {
	Message   string    `json:"message"`
	Itinerary []DayPlan `json:"itinerary"`
}

// EditResult is the caller-facing outcome of an edit. Message is always
// non-empty and Itinerary is always well formed, falling back to the pre-edit
// itinerary when the model reply is unusable.
type EditResult struct {
	Message   string    `json:"message"`
	Itinerary []DayPlan `json:"itinerary"`
}

// TravelContext carries the trip parameters used to build prompts and derive
// fallback keywords. The core reads it and never mutates it.
type TravelContext struct {
	DepartureCity       string `json:"departureCity"`
	Destination         string `json:"destination"`
	TravelStyle         string `json:"travelStyle"`
	StartDate           string `json:"startDate"`
	EndDate             string `json:"endDate"`
	NumberOfDays        int    `json:"numberOfDays"`
	Adults              int    `json:"adults"`
	Children            int    `json:"children"`
	HotelPreferences    string `json:"hotelPreferences"`
	ActivityPreferences string `json:"activityPreferences"`
}
