package images

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
)

// Placeholder builds a deterministic seeded picsum.photos URL. It constructs
// a URL string only, so it cannot fail; it terminates every chain.
type Placeholder struct{}

func NewPlaceholder() *Placeholder {
	return &Placeholder{}
}

func (*Placeholder) TryResolve(_ context.Context, q Query) (string, bool) {
	return placeholderURL(q), true
}

// placeholderURL seeds the image with the primary keyword plus a token hashed
// from the full query, so distinct queries get distinct but stable images.
func placeholderURL(q Query) string {
	seed := slugify(q.Primary)
	if seed == "" {
		seed = "travel"
	}
	return fmt.Sprintf("https://picsum.photos/seed/%s-%x/800/600", seed, queryToken(q))
}

func queryToken(q Query) uint32 {
	h := fnv.New32a()
	h.Write([]byte(q.Keywords))
	h.Write([]byte{'|'})
	h.Write([]byte(q.Destination))
	return h.Sum32()
}

func slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
