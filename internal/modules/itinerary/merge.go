// README: Cache-aware merge of a model-proposed edit over the prior itinerary.
package itinerary

// MergeEdit adopts the candidate itinerary as returned by the model — its day
// count and ordering are preserved, no normalization — while carrying forward
// a previously resolved image for any day whose number existed before and
// whose imageKeywords are unchanged. Every other day has its image cleared so
// the enricher resolves it fresh.
func MergeEdit(prior, candidate []DayPlan) []DayPlan {
	prev := make(map[int]DayPlan, len(prior))
	for _, d := range prior {
		prev[d.Day] = d
	}

	out := make([]DayPlan, len(candidate))
	for i, d := range candidate {
		if p, ok := prev[d.Day]; ok && p.ImageURL != "" && p.ImageKeywords == d.ImageKeywords {
			d.ImageURL = p.ImageURL
		} else {
			d.ImageURL = ""
		}
		out[i] = d
	}
	return out
}
