// Package api wires the demo backend's routes. The paths match the declared
// real-backend contract so the browser client is transport-agnostic: point it
// here in demo mode, at the deployed API otherwise.
package api

import (
	"github.com/gin-gonic/gin"

	"ridehail/internal/api/handlers"
	"ridehail/internal/api/middleware"
	"ridehail/internal/domain/entities"
	"ridehail/internal/repository"
)

type Router struct {
	rideHandler     *handlers.RideHandler
	driverHandler   *handlers.DriverHandler
	locationHandler *handlers.LocationHandler
	authHandler     *handlers.AuthHandler
	users           repository.UserRepository
}

func NewRouter(
	rideHandler *handlers.RideHandler,
	driverHandler *handlers.DriverHandler,
	locationHandler *handlers.LocationHandler,
	authHandler *handlers.AuthHandler,
	users repository.UserRepository,
) *Router {
	return &Router{
		rideHandler:     rideHandler,
		driverHandler:   driverHandler,
		locationHandler: locationHandler,
		authHandler:     authHandler,
		users:           users,
	}
}

func (r *Router) Setup(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")

	api.POST("/auth/login", r.authHandler.Login)
	api.GET("/locations/search", r.locationHandler.Search)

	protected := api.Group("/")
	protected.Use(middleware.BearerAuth(r.users))
	{
		riderRoutes := protected.Group("/rides")
		riderRoutes.Use(middleware.RequireRole(entities.RoleRider))
		{
			riderRoutes.POST("/request", r.rideHandler.CreateRide)
			riderRoutes.GET("/me", r.rideHandler.RiderHistory)
			riderRoutes.POST("/estimate", r.rideHandler.Estimate)
		}

		driverRideRoutes := protected.Group("/rides")
		driverRideRoutes.Use(middleware.RequireRole(entities.RoleDriver))
		{
			driverRideRoutes.GET("/available", r.rideHandler.AvailableRides)
			driverRideRoutes.PUT("/:id/accept", r.rideHandler.AcceptRide)
		}

		driverRoutes := protected.Group("/drivers")
		driverRoutes.Use(middleware.RequireRole(entities.RoleDriver))
		{
			driverRoutes.PATCH("/availability", r.driverHandler.UpdateAvailability)
			driverRoutes.GET("/requests", r.driverHandler.IncomingRequests)
		}
	}
}
