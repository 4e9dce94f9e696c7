package images

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
)

// Pixabay queries the Pixabay image API with the primary keyword.
// Same query discipline as Pexels; it sits second in the chain.
type Pixabay struct {
	apiKey string
	httpc  *http.Client
}

func NewPixabay(apiKey string) *Pixabay {
	return &Pixabay{apiKey: apiKey, httpc: &http.Client{}}
}

func (p *Pixabay) TryResolve(ctx context.Context, q Query) (string, bool) {
	if q.Primary == "" {
		return "", false
	}

	// Pixabay rejects per_page below 3.
	endpoint := "https://pixabay.com/api/?key=" + url.QueryEscape(p.apiKey) +
		"&q=" + url.QueryEscape(q.Primary) +
		"&image_type=photo&orientation=horizontal&per_page=3"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", false
	}

	resp, err := p.httpc.Do(req)
	if err != nil {
		log.Printf("pixabay search error: %v", err)
		return "", false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Printf("pixabay search returned status %d", resp.StatusCode)
		return "", false
	}

	var out struct {
		Hits []struct {
			LargeImageURL string `json:"largeImageURL"`
			WebformatURL  string `json:"webformatURL"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || len(out.Hits) == 0 {
		return "", false
	}

	hit := out.Hits[0]
	if hit.LargeImageURL != "" {
		return hit.LargeImageURL, true
	}
	if hit.WebformatURL != "" {
		return hit.WebformatURL, true
	}
	return "", false
}
