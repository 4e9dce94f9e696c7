package itinerary

import "testing"

func TestMergeEdit(t *testing.T) {
	prior := []DayPlan{
		{Day: 1, Title: "Arrival", Activities: []string{"Land"}, ImageKeywords: "airport, skyline", ImageURL: "cached://1"},
		{Day: 2, Title: "Beach", Activities: []string{"Swim"}, ImageKeywords: "beach, sunset", ImageURL: "cached://2"},
		{Day: 3, Title: "Museums", Activities: []string{"Louvre"}, ImageKeywords: "museum, art"},
	}

	tests := []struct {
		name      string
		candidate []DayPlan
		wantURLs  []string
	}{
		{
			name: "unchanged keywords reuse cached image",
			candidate: []DayPlan{
				{Day: 1, Title: "Arrival", ImageKeywords: "airport, skyline"},
				{Day: 2, Title: "Beach and cooking class", ImageKeywords: "beach, sunset"},
			},
			wantURLs: []string{"cached://1", "cached://2"},
		},
		{
			name: "changed keywords force re-resolution",
			candidate: []DayPlan{
				{Day: 1, Title: "Arrival", ImageKeywords: "harbor, boats"},
			},
			wantURLs: []string{""},
		},
		{
			name: "new day number has no cache to reuse",
			candidate: []DayPlan{
				{Day: 4, Title: "Departure", ImageKeywords: "airport, skyline"},
			},
			wantURLs: []string{""},
		},
		{
			name: "prior day without a resolved image is not reused",
			candidate: []DayPlan{
				{Day: 3, Title: "Museums", ImageKeywords: "museum, art"},
			},
			wantURLs: []string{""},
		},
		{
			name: "model-invented image urls are discarded",
			candidate: []DayPlan{
				{Day: 2, Title: "Beach", ImageKeywords: "something else", ImageURL: "https://fabricated.example/x.jpg"},
			},
			wantURLs: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeEdit(prior, tt.candidate)
			if len(got) != len(tt.candidate) {
				t.Fatalf("day count changed: got %d, want %d", len(got), len(tt.candidate))
			}
			for i, want := range tt.wantURLs {
				if got[i].ImageURL != want {
					t.Errorf("day %d: got url %q, want %q", got[i].Day, got[i].ImageURL, want)
				}
			}
		})
	}
}

func TestMergeEdit_PreservesCandidateOrder(t *testing.T) {
	prior := []DayPlan{{Day: 1, Title: "A", ImageKeywords: "k", ImageURL: "u"}}
	candidate := []DayPlan{
		{Day: 2, Title: "B"},
		{Day: 1, Title: "A", ImageKeywords: "k"},
	}

	got := MergeEdit(prior, candidate)
	if got[0].Day != 2 || got[1].Day != 1 {
		t.Errorf("order not preserved: %+v", got)
	}
	if got[1].ImageURL != "u" {
		t.Errorf("reuse should follow day number, not position: %+v", got)
	}
}
