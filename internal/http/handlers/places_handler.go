// README: Places photo proxy endpoint; keeps the maps credential server-side.
package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"tripwise/internal/infra"
	"tripwise/internal/maps"
)

const (
	photoFetchTimeout   = 10 * time.Second
	defaultPhotoWidth   = 400
	photoCacheDirective = "public, max-age=86400"
)

type PlacesHandler struct {
	photos *infra.Lazy[*maps.PhotoService]
}

// NewPlacesHandler takes a lazily initialised photo service so a missing
// MAPS_API_KEY disables the endpoint without failing startup.
func NewPlacesHandler(photos *infra.Lazy[*maps.PhotoService]) *PlacesHandler {
	return &PlacesHandler{photos: photos}
}

// Photo handles GET /api/places/photo?ref=...&maxwidth=...
func (h *PlacesHandler) Photo(c *gin.Context) {
	ref := c.Query("ref")
	if ref == "" {
		writeError(c, http.StatusBadRequest, "missing ref")
		return
	}
	maxWidth := defaultPhotoWidth
	if v := c.Query("maxwidth"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(c, http.StatusBadRequest, "invalid maxwidth")
			return
		}
		maxWidth = n
	}

	svc, err := h.photos.Get()
	if err != nil {
		writeError(c, http.StatusInternalServerError, "places photo proxy is not configured")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), photoFetchTimeout)
	defer cancel()

	photo, err := svc.FetchPhoto(ctx, ref, uint(maxWidth))
	if err != nil {
		writeErrorDetails(c, http.StatusBadGateway, "places photo fetch failed", err.Error())
		return
	}
	defer photo.Data.Close()

	c.Header("Cache-Control", photoCacheDirective)
	c.DataFromReader(http.StatusOK, -1, photo.ContentType, photo.Data, nil)
}
