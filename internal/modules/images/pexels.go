package images

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
)

// Pexels queries the Pexels photo search API with the primary keyword.
type Pexels struct {
	apiKey string
	httpc  *http.Client
}

func NewPexels(apiKey string) *Pexels {
	return &Pexels{apiKey: apiKey, httpc: &http.Client{}}
}

func (p *Pexels) TryResolve(ctx context.Context, q Query) (string, bool) {
	if q.Primary == "" {
		return "", false
	}

	endpoint := "https://api.pexels.com/v1/search?query=" + url.QueryEscape(q.Primary) +
		"&per_page=1&orientation=landscape"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", false
	}
	req.Header.Set("Authorization", p.apiKey)

	resp, err := p.httpc.Do(req)
	if err != nil {
		log.Printf("pexels search error: %v", err)
		return "", false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Printf("pexels search returned status %d", resp.StatusCode)
		return "", false
	}

	var out struct {
		Photos []struct {
			Src struct {
				Large    string `json:"large"`
				Medium   string `json:"medium"`
				Original string `json:"original"`
			} `json:"src"`
		} `json:"photos"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || len(out.Photos) == 0 {
		return "", false
	}

	// Prefer the "large" variant, then the next best size.
	src := out.Photos[0].Src
	for _, u := range []string{src.Large, src.Medium, src.Original} {
		if u != "" {
			return u, true
		}
	}
	return "", false
}
