// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripwise/internal/http/handlers"
	"tripwise/internal/http/middleware"
	"tripwise/internal/infra"
	"tripwise/internal/maps"
)

func NewRouter(
	itinerarySvc handlers.ItineraryService,
	photos *infra.Lazy[*maps.PhotoService],
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	itineraryHandler := handlers.NewItineraryHandler(itinerarySvc)
	r.POST("/api/itinerary/generate", itineraryHandler.Generate)
	r.POST("/api/itinerary/edit", itineraryHandler.Edit)

	placesHandler := handlers.NewPlacesHandler(photos)
	r.GET("/api/places/photo", placesHandler.Photo)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
