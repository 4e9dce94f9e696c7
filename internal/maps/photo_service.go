package maps

import (
	"context"
	"fmt"
	"io"

	"googlemaps.github.io/maps"
)

// Photo is a fetched Places photo ready to stream to the client.
type Photo struct {
	ContentType string
	Data        io.ReadCloser
}

// PhotoService fetches Places photos server-side so the API key never
// reaches the browser.
type PhotoService struct {
	client *maps.Client
}

// NewPhotoService creates a PhotoService with the given API Key.
func NewPhotoService(apiKey string) (*PhotoService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PhotoService{client: client}, nil
}

// FetchPhoto resolves a provider-issued photo reference into image bytes.
// The caller owns closing Photo.Data.
func (s *PhotoService) FetchPhoto(ctx context.Context, photoRef string, maxWidth uint) (*Photo, error) {
	r := &maps.PlacePhotoRequest{
		PhotoReference: photoRef,
		MaxWidth:       maxWidth,
	}
	resp, err := s.client.PlacePhoto(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places photo api error: %w", err)
	}
	return &Photo{ContentType: resp.ContentType, Data: resp.Data}, nil
}
