package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	agentRepo "fundihub/database/repository/agent"
	"fundihub/handlers"
	"fundihub/middleware"
	"fundihub/models"
)

// RegisterBookingRoutes sets up the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle, agents agentRepo.AgentRepository) {
	api := r.Group("/api/bookings")
	{
		api.POST("", middleware.JWTAuthMiddleware(agents, models.RoleCustomer), hb.Booking.CreateBooking)
		api.GET("", middleware.JWTAuthMiddleware(agents, models.RoleCustomer), hb.Booking.ListMyBookings)

		authed := api.Group("")
		authed.Use(middleware.JWTAuthMiddleware(agents))
		authed.GET("/:id", hb.Booking.GetBooking)
		authed.PATCH("/:id/status", hb.Booking.TransitionBooking)
		authed.PATCH("/:id/cancel", hb.Booking.CancelBooking)
		authed.PATCH("/:id/payment", middleware.JWTAuthMiddleware(agents, models.RoleWorker, models.RoleAgent), hb.Booking.RecordPayment)
	}
}

// RegisterWorkerRoutes sets up worker lookup and management endpoints.
func RegisterWorkerRoutes(r *gin.Engine, hb *handlers.HandlerBundle, agents agentRepo.AgentRepository) {
	api := r.Group("/api/workers")
	{
		// Slot listing is public: customers browse before authenticating.
		api.GET("/:id/free-slots", hb.Booking.FreeSlots)
		api.GET("/:id", hb.Worker.GetWorker)

		agentOnly := api.Group("")
		agentOnly.Use(middleware.JWTAuthMiddleware(agents, models.RoleAgent))
		agentOnly.POST("", hb.Worker.RegisterWorker)
		agentOnly.GET("", hb.Worker.ListMyWorkers)
		agentOnly.PATCH("/:id/suspend", hb.Worker.SuspendWorker)
		agentOnly.PATCH("/:id/reinstate", hb.Worker.ReinstateWorker)

		managed := api.Group("")
		managed.Use(middleware.JWTAuthMiddleware(agents, models.RoleWorker, models.RoleAgent))
		managed.PUT("/:id/timetable", hb.Worker.SetTimetable)
		managed.PUT("/:id/services", hb.Worker.UpdateServices)
		managed.POST("/:id/non-availability", hb.Worker.AddNonAvailability)
		managed.DELETE("/:id/non-availability/:date", hb.Worker.RemoveNonAvailability)
		managed.GET("/:id/bookings", hb.Booking.ListWorkerBookings)
	}
}

// RegisterAgentRoutes sets up service-agent endpoints.
func RegisterAgentRoutes(r *gin.Engine, hb *handlers.HandlerBundle, agents agentRepo.AgentRepository) {
	api := r.Group("/api/agents")
	{
		api.POST("/register", hb.Agent.RegisterAgent)
		api.POST("/login", hb.Agent.AuthenticateAgent)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(agents, models.RoleAgent))
		protected.GET("/:id", hb.Agent.GetAgent)
		protected.PUT("/:id/areas", hb.Agent.AssignAreas)
		protected.PATCH("/workers/:workerId/verify", hb.Agent.VerifyWorker)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.AdminAuthMiddleware())
		api.GET("/agents", hb.Admin.GetAllAgents)
		api.GET("/workers", hb.Admin.GetAllWorkers)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm FundiHub"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, agents agentRepo.AgentRepository) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb, agents)
	RegisterWorkerRoutes(r, hb, agents)
	RegisterAgentRoutes(r, hb, agents)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
