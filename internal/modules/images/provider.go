// README: Image provider contract shared by the fallback chain.
package images

import "context"

// Query carries the different lookup hints a provider may use. Stock-photo
// providers search by the primary keyword, the curated table matches on the
// destination, and the redirect fallback uses the full keyword string.
type Query struct {
	// Keywords is the full comma-separated keyword text.
	Keywords string
	// Primary is the first comma-separated token of Keywords.
	Primary string
	// Destination is an optional destination name hint.
	Destination string
}

// Provider is one capability in the fallback chain. TryResolve reports a
// usable image URL for the query, or ok=false when this provider has nothing.
// Implementations must treat their context deadline as a hard budget.
type Provider interface {
	TryResolve(ctx context.Context, q Query) (url string, ok bool)
}
