package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ridehail/internal/api/middleware"
	"ridehail/internal/domain/entities"
	"ridehail/internal/services"
	"ridehail/pkg/apierror"
)

type DriverHandler struct {
	drivers *services.DriverService
	errs    *apierror.Handler
}

func NewDriverHandler(drivers *services.DriverService, errs *apierror.Handler) *DriverHandler {
	return &DriverHandler{drivers: drivers, errs: errs}
}

// UpdateAvailability handles PATCH /api/drivers/availability.
func (h *DriverHandler) UpdateAvailability(c *gin.Context) {
	var req entities.AvailabilityUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		failWith(c, h.errs, http.StatusBadRequest, err, "drivers.availability", "Could not read the availability update")
		return
	}

	resp, err := h.drivers.UpdateAvailability(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		failWith(c, h.errs, http.StatusInternalServerError, err, "drivers.availability", "Could not update availability")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// IncomingRequests handles GET /api/drivers/requests.
func (h *DriverHandler) IncomingRequests(c *gin.Context) {
	resp, err := h.drivers.IncomingRequests(c.Request.Context())
	if err != nil {
		failWith(c, h.errs, http.StatusInternalServerError, err, "drivers.requests", "Could not load incoming requests")
		return
	}

	c.JSON(http.StatusOK, resp)
}
