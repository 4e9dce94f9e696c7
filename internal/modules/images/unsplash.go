package images

import (
	"context"
	"log"
	"net/http"
	"net/url"
)

// UnsplashRedirect probes the deprecated source.unsplash.com redirect service
// with the full keyword string. Best effort only; the service can disappear.
type UnsplashRedirect struct {
	httpc *http.Client
}

func NewUnsplashRedirect() *UnsplashRedirect {
	return &UnsplashRedirect{httpc: &http.Client{
		// Capture the redirect target instead of following it.
		CheckRedirect: func(_ *http.Request, _ []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}}
}

func (u *UnsplashRedirect) TryResolve(ctx context.Context, q Query) (string, bool) {
	if q.Keywords == "" {
		return "", false
	}

	target := "https://source.unsplash.com/featured/800x600/?" + url.QueryEscape(q.Keywords)
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return "", false
	}

	resp, err := u.httpc.Do(req)
	if err != nil {
		log.Printf("unsplash redirect error: %v", err)
		return "", false
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 300 && resp.StatusCode < 400:
		if loc := resp.Header.Get("Location"); loc != "" {
			return loc, true
		}
		return "", false
	case resp.StatusCode == http.StatusOK:
		return target, true
	default:
		return "", false
	}
}
