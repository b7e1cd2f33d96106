package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ridehail/internal/domain/entities"
	"ridehail/internal/services"
)

type LocationHandler struct {
	search *services.LocationSearchService
}

func NewLocationHandler(search *services.LocationSearchService) *LocationHandler {
	return &LocationHandler{search: search}
}

// Search handles GET /api/locations/search?q=. Never fails: malformed or
// unmatched queries yield an empty list.
func (h *LocationHandler) Search(c *gin.Context) {
	locations := h.search.Search(c.Request.Context(), c.Query("q"))
	c.JSON(http.StatusOK, entities.OK("Locations retrieved", entities.LocationsData{Locations: locations}))
}
