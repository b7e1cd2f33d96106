// Package handlers contains the gin handlers of the demo backend. Every
// failure path goes through the error-classification chokepoint so the user
// sees a classified message and the operator gets a structured record.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ridehail/internal/api/middleware"
	"ridehail/internal/domain/entities"
	"ridehail/internal/services"
	"ridehail/pkg/apierror"
)

type RideHandler struct {
	rides *services.RideService
	errs  *apierror.Handler
}

func NewRideHandler(rides *services.RideService, errs *apierror.Handler) *RideHandler {
	return &RideHandler{rides: rides, errs: errs}
}

// CreateRide handles POST /api/rides/request.
func (h *RideHandler) CreateRide(c *gin.Context) {
	var req entities.CreateRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failWith(c, h.errs, http.StatusBadRequest, err, "rides.create", "Could not read the ride request")
		return
	}

	resp, err := h.rides.CreateRide(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		failWith(c, h.errs, http.StatusInternalServerError, err, "rides.create", "Could not request the ride")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// RiderHistory handles GET /api/rides/me.
func (h *RideHandler) RiderHistory(c *gin.Context) {
	resp, err := h.rides.RiderHistory(c.Request.Context())
	if err != nil {
		failWith(c, h.errs, http.StatusInternalServerError, err, "rides.history", "Could not load ride history")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AvailableRides handles GET /api/rides/available.
func (h *RideHandler) AvailableRides(c *gin.Context) {
	resp, err := h.rides.AvailableRides(c.Request.Context())
	if err != nil {
		failWith(c, h.errs, http.StatusInternalServerError, err, "rides.available", "Could not load available rides")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AcceptRide handles PUT /api/rides/:id/accept.
func (h *RideHandler) AcceptRide(c *gin.Context) {
	resp, err := h.rides.AcceptRide(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		failWith(c, h.errs, http.StatusInternalServerError, err, "rides.accept", "Could not accept the ride")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Estimate handles POST /api/rides/estimate: the live fare/distance/route
// preview the request form renders while the rider types.
func (h *RideHandler) Estimate(c *gin.Context) {
	var req services.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failWith(c, h.errs, http.StatusBadRequest, err, "rides.estimate", "Could not read the estimate request")
		return
	}

	resp, err := h.rides.Estimate(req)
	if err != nil {
		failWith(c, h.errs, http.StatusInternalServerError, err, "rides.estimate", "Could not calculate the estimate")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// failWith classifies the failure, records it, and replies with a failure
// envelope. The status comes from the normalized error when it carries one.
func failWith(c *gin.Context, errs *apierror.Handler, defaultStatus int, v any, context, fallback string) {
	message := errs.Handle(v, context, fallback)
	c.JSON(apierror.StatusCode(v, defaultStatus), entities.Fail(message))
}
