package routes

import (
	"net/http"
	"time"

	userRepoPkg "barberbook/database/repository/user"
	"barberbook/handlers"
	"barberbook/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers plus the user repository the
// auth middleware validates tokens against.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	Auth          *handlers.AuthHandler
	Establishment *handlers.EstablishmentHandler
	Availability  *handlers.AvailabilityHandler
	Appointments  *handlers.AppointmentHandler
	Subscriptions *handlers.SubscriptionHandler
	Public        *handlers.PublicHandler
	Webhook       *handlers.WebhookHandler
}

// RegisterAuthRoutes registers signup/signin endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signup", hb.Auth.Signup)
		api.POST("/signin", hb.Auth.Signin)

		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.Auth.Me)
	}
}

// RegisterEstablishmentRoutes registers the owner back office.
func RegisterEstablishmentRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/establishment")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		// Profile management is owner-only.
		owner := api.Group("")
		owner.Use(middleware.RequireOwner())
		owner.POST("", hb.Establishment.Create)
		owner.PUT("", hb.Establishment.Update)
		owner.GET("", hb.Establishment.Mine)

		owner.POST("/employees", hb.Establishment.CreateEmployee)
		owner.PUT("/employees/:employeeId", hb.Establishment.UpdateEmployee)
		owner.DELETE("/employees/:employeeId", hb.Establishment.DeleteEmployee)

		owner.POST("/services", hb.Establishment.CreateService)
		owner.PUT("/services/:serviceId", hb.Establishment.UpdateService)
		owner.DELETE("/services/:serviceId", hb.Establishment.DeleteService)

		// Reads are open to any staff account of the establishment.
		api.GET("/employees", hb.Establishment.ListEmployees)
		api.GET("/services", hb.Establishment.ListServices)
	}
}

// RegisterAvailabilityRoutes registers weekly-template management.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/availability")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		api.GET("/:employeeId", hb.Availability.GetTemplate)
		api.PUT("/:employeeId", hb.Availability.ReplaceTemplate)
	}
}

// RegisterAppointmentRoutes registers the staff appointment back office.
func RegisterAppointmentRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/appointments")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		api.GET("", hb.Appointments.List)
		api.PATCH("/:appointmentId/status", hb.Appointments.UpdateStatus)
	}
}

// RegisterSubscriptionRoutes registers plan checkout for owners.
func RegisterSubscriptionRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/subscriptions")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireOwner())
	{
		api.POST("/initiate", hb.Subscriptions.Initiate)
	}
}

// RegisterPublicRoutes registers the unauthenticated booking surface.
func RegisterPublicRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/public")
	{
		api.GET("/establishment/:establishmentId", hb.Public.Page)
		api.GET("/available-times/:employeeId/:date", hb.Public.AvailableTimes)
		api.POST("/appointments/initiate-payment", hb.Public.InitiatePayment)
	}
}

// RegisterWebhookRoute registers the payment notification endpoint.
func RegisterWebhookRoute(r *gin.Engine, hb *HandlerBundle) {
	r.POST("/api/mercadopago/webhook", hb.Webhook.Receive)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Barberbook"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterEstablishmentRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterSubscriptionRoutes(r, hb)
	RegisterPublicRoutes(r, hb)
	RegisterWebhookRoute(r, hb)
	RegisterHealthRoute(r)
}
