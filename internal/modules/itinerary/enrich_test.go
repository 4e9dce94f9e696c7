package itinerary

import (
	"context"
	"sync"
	"testing"
)

// countingResolver is a thread-safe ImageResolver stub.
type countingResolver struct {
	mu      sync.Mutex
	queries []string
}

func (r *countingResolver) Resolve(_ context.Context, keywords, _ string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries = append(r.queries, keywords)
	return "resolved://" + keywords
}

func TestSearchKeywords(t *testing.T) {
	tests := []struct {
		name string
		day  DayPlan
		tc   TravelContext
		want string
	}{
		{
			name: "explicit keywords win",
			day:  DayPlan{Title: "Day 1: Arrival", ImageKeywords: "eiffel tower, paris"},
			want: "eiffel tower, paris",
		},
		{
			name: "derived from title and first activity, stop words dropped",
			day: DayPlan{
				Title:      "Day 1: Arrival and Exploration",
				Activities: []string{"Visit the Grand Palace"},
			},
			want: "grand,palace",
		},
		{
			name: "title tokens come first, capped at three",
			day: DayPlan{
				Title:      "Snorkeling Coral Reefs Adventure",
				Activities: []string{"Sunset dinner cruise"},
			},
			want: "snorkeling,coral,reefs",
		},
		{
			name: "short words are discarded",
			day:  DayPlan{Title: "Go up Mt Fuji", Activities: []string{"Hike"}},
			want: "fuji,hike",
		},
		{
			name: "fallback uses departure city",
			day:  DayPlan{Title: "Day 2", Activities: []string{"Visit a tour"}},
			tc:   TravelContext{DepartureCity: "Lisbon"},
			want: "travel,Lisbon",
		},
		{
			name: "fallback without departure city",
			day:  DayPlan{Title: "Day 2"},
			want: "travel,destination",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := searchKeywords(tt.day, tt.tc); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEnrichImages_FillsEveryMissingImage(t *testing.T) {
	days := []DayPlan{
		{Day: 1, Title: "Harbor Cruise", Activities: []string{"Boat ride"}},
		{Day: 2, Title: "Old Town", Activities: []string{"Walk"}, ImageURL: "already://set"},
		{Day: 3, Title: "Mountain Hike", Activities: []string{"Climb"}},
	}
	resolver := &countingResolver{}

	enrichImages(context.Background(), resolver, days, TravelContext{Destination: "Bergen"})

	for i, d := range days {
		if d.ImageURL == "" {
			t.Errorf("day %d: image url not populated", i+1)
		}
	}
	if days[1].ImageURL != "already://set" {
		t.Errorf("day with an image should be left alone, got %q", days[1].ImageURL)
	}
	if len(resolver.queries) != 2 {
		t.Errorf("expected 2 resolver calls, got %d (%v)", len(resolver.queries), resolver.queries)
	}
}
