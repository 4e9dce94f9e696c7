// README: Priority-chain image resolver; always returns some URL.
package images

import (
	"context"
	"strings"
	"time"
)

// providerTimeout bounds each chain step so one slow provider cannot stall
// the whole resolution.
const providerTimeout = 3 * time.Second

// Resolver walks an ordered chain of providers until one yields a usable URL.
// The chain is expected to end with Placeholder, which cannot fail, so
// Resolve never returns an empty string.
type Resolver struct {
	cache     *Cache
	providers []Provider
}

// NewResolver builds a resolver over the given chain. cache may be nil.
func NewResolver(cache *Cache, providers ...Provider) *Resolver {
	return &Resolver{cache: cache, providers: providers}
}

// Resolve returns a best-effort image URL for the keyword text, optionally
// biased by a destination name. It never fails.
func (r *Resolver) Resolve(ctx context.Context, keywords, destinationHint string) string {
	q := Query{
		Keywords:    strings.TrimSpace(keywords),
		Destination: strings.TrimSpace(destinationHint),
	}
	q.Primary = firstKeyword(q.Keywords)

	cacheKey := q.Keywords + "|" + q.Destination
	if url, ok := r.cache.Get(ctx, cacheKey); ok {
		return url
	}

	for _, p := range r.providers {
		pctx, cancel := context.WithTimeout(ctx, providerTimeout)
		url, ok := p.TryResolve(pctx, q)
		cancel()
		if !ok || url == "" {
			continue
		}
		// Placeholder hits are not cached: a later run with providers
		// configured should get a real photo.
		if _, isPlaceholder := p.(*Placeholder); !isPlaceholder {
			r.cache.Put(ctx, cacheKey, url)
		}
		return url
	}

	return placeholderURL(q)
}

func firstKeyword(keywords string) string {
	first, _, _ := strings.Cut(keywords, ",")
	return strings.TrimSpace(first)
}
