package images

import (
	"context"
	"strings"
)

// CuratedTable maps well-known destinations to locally hosted assets.
// Used when both network providers fail or are unconfigured.
type CuratedTable struct {
	paths map[string]string
}

func NewCuratedTable() *CuratedTable {
	return &CuratedTable{paths: map[string]string{
		"paris":     "/assets/destinations/paris.jpg",
		"london":    "/assets/destinations/london.jpg",
		"rome":      "/assets/destinations/rome.jpg",
		"tokyo":     "/assets/destinations/tokyo.jpg",
		"kyoto":     "/assets/destinations/kyoto.jpg",
		"new york":  "/assets/destinations/new-york.jpg",
		"barcelona": "/assets/destinations/barcelona.jpg",
		"bali":      "/assets/destinations/bali.jpg",
		"sydney":    "/assets/destinations/sydney.jpg",
		"dubai":     "/assets/destinations/dubai.jpg",
		"bangkok":   "/assets/destinations/bangkok.jpg",
		"singapore": "/assets/destinations/singapore.jpg",
		"amsterdam": "/assets/destinations/amsterdam.jpg",
		"istanbul":  "/assets/destinations/istanbul.jpg",
		"santorini": "/assets/destinations/santorini.jpg",
		"taipei":    "/assets/destinations/taipei.jpg",
	}}
}

// TryResolve matches the destination hint case-insensitively against the
// table, so "Paris, France" still hits the "paris" entry.
func (t *CuratedTable) TryResolve(_ context.Context, q Query) (string, bool) {
	if q.Destination == "" {
		return "", false
	}
	dest := strings.ToLower(q.Destination)
	for name, path := range t.paths {
		if strings.Contains(dest, name) {
			return path, true
		}
	}
	return "", false
}
