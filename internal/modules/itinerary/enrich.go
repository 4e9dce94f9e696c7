// README: Concurrent per-day image enrichment and keyword derivation.
package itinerary

import (
	"context"
	"regexp"
	"strings"
	"sync"
)

// ImageResolver is the images-module contract the enricher depends on.
// Resolve never fails; worst case it returns a placeholder URL.
type ImageResolver interface {
	Resolve(ctx context.Context, keywords, destinationHint string) string
}

const maxDerivedKeywords = 3

var stopWords = map[string]struct{}{
	"day": {}, "arrival": {}, "exploration": {}, "visit": {}, "tour": {},
	"the": {}, "and": {}, "or": {}, "at": {}, "to": {}, "a": {}, "an": {},
}

var nonAlnumRe = regexp.MustCompile(`[^a-z0-9\s]`)

// enrichImages resolves an image for every day that does not have one yet.
// All lookups run concurrently and the call returns once each day has a
// result; one day's provider failures never delay another day.
func enrichImages(ctx context.Context, resolver ImageResolver, days []DayPlan, tc TravelContext) {
	var wg sync.WaitGroup
	for i := range days {
		if days[i].ImageURL != "" {
			continue
		}
		wg.Add(1)
		go func(d *DayPlan) {
			defer wg.Done()
			d.ImageURL = resolver.Resolve(ctx, searchKeywords(*d, tc), tc.Destination)
		}(&days[i])
	}
	wg.Wait()
}

// searchKeywords picks the lookup text for a day: its own imageKeywords when
// present, otherwise up to three tokens derived from the title and first
// activity, otherwise a travel fallback.
func searchKeywords(d DayPlan, tc TravelContext) string {
	if strings.TrimSpace(d.ImageKeywords) != "" {
		return d.ImageKeywords
	}

	var tokens []string
	appendTokens := func(text string) {
		cleaned := nonAlnumRe.ReplaceAllString(strings.ToLower(text), "")
		for _, w := range strings.Fields(cleaned) {
			if len(tokens) >= maxDerivedKeywords {
				return
			}
			if len(w) <= 2 {
				continue
			}
			if _, stop := stopWords[w]; stop {
				continue
			}
			tokens = append(tokens, w)
		}
	}
	appendTokens(d.Title)
	if len(d.Activities) > 0 {
		appendTokens(d.Activities[0])
	}

	if len(tokens) == 0 {
		if tc.DepartureCity != "" {
			return "travel," + tc.DepartureCity
		}
		return "travel,destination"
	}
	return strings.Join(tokens, ",")
}
