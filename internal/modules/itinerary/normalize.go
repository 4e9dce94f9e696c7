// README: Day-count normalization of extracted itineraries.
package itinerary

import "fmt"

const placeholderKeywords = "travel, destination"

// Normalize returns an itinerary with at least numberOfDays entries.
// A short extraction is padded with placeholder days numbered from the
// current length; excess days are deliberately kept, never truncated, so
// model-generated content is not silently dropped. Day numbers from the
// extractor are trusted as-is.
func Normalize(days []DayPlan, numberOfDays int) []DayPlan {
	if numberOfDays < 1 {
		numberOfDays = 1
	}

	if len(days) == 0 {
		out := make([]DayPlan, 0, numberOfDays)
		for i := 0; i < numberOfDays; i++ {
			out = append(out, DayPlan{
				Day:           i + 1,
				Title:         fmt.Sprintf("Day %d Itinerary", i+1),
				Activities:    []string{"Itinerary details are being prepared for this day."},
				ImageKeywords: placeholderKeywords,
			})
		}
		return out
	}

	out := make([]DayPlan, len(days), max(len(days), numberOfDays))
	copy(out, days)

	// A day must not leave normalization with no activities at all.
	for i := range out {
		if len(out[i].Activities) == 0 {
			out[i].Activities = []string{"More details coming soon."}
		}
	}

	for n := len(out); n < numberOfDays; n++ {
		out = append(out, DayPlan{
			Day:           n + 1,
			Title:         fmt.Sprintf("Day %d Itinerary", n+1),
			Activities:    []string{"More details coming soon."},
			ImageKeywords: placeholderKeywords,
		})
	}
	return out
}
