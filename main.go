package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"barberbook/config"
	"barberbook/cron"
	"barberbook/database"
	appointmentRepoPkg "barberbook/database/repository/appointment"
	availabilityRepoPkg "barberbook/database/repository/availability"
	employeeRepoPkg "barberbook/database/repository/employee"
	establishmentRepoPkg "barberbook/database/repository/establishment"
	serviceRepoPkg "barberbook/database/repository/service"
	userRepoPkg "barberbook/database/repository/user"
	"barberbook/handlers"
	"barberbook/middleware"
	"barberbook/routes"
	"barberbook/services/booking"
	"barberbook/services/establishment"
	"barberbook/services/payment"
	"barberbook/services/user"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	establishmentRepo := establishmentRepoPkg.NewMongoEstablishmentRepo()
	employeeRepo := employeeRepoPkg.NewMongoEmployeeRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	availabilityRepo := availabilityRepoPkg.NewMongoAvailabilityRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()

	// gateway.
	gateway := payment.NewMercadoPagoClient()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	establishmentService := &establishment.DefaultEstablishmentService{
		Establishments:   establishmentRepo,
		Employees:        employeeRepo,
		Services:         serviceRepo,
		Users:            userRepo,
		Gateway:          gateway,
		MonthlyPlanPrice: config.AppConfig.MonthlyPlanPrice,
		AnnualPlanPrice:  config.AppConfig.AnnualPlanPrice,
	}

	bookingEngine := &booking.Engine{
		Appointments:   appointmentRepo,
		Availabilities: availabilityRepo,
		Employees:      employeeRepo,
		Establishments: establishmentRepo,
		Services:       serviceRepo,
		Gateway:        gateway,
		LockClient:     utils.GetCacheClient(),
		Granularity:    time.Duration(config.AppConfig.SlotGranularityMin) * time.Minute,
	}

	reconciler := &payment.Reconciler{
		Appointments: appointmentRepo,
		Users:        userRepo,
		Gateway:      gateway,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		UserRepo: userRepo,

		Auth:          &handlers.AuthHandler{Users: userService},
		Establishment: &handlers.EstablishmentHandler{Service: establishmentService},
		Availability:  &handlers.AvailabilityHandler{Booking: bookingEngine},
		Appointments:  &handlers.AppointmentHandler{Booking: bookingEngine},
		Subscriptions: &handlers.SubscriptionHandler{Service: establishmentService},
		Public: &handlers.PublicHandler{
			Establishments: establishmentService,
			Booking:        bookingEngine,
		},
		Webhook: &handlers.WebhookHandler{
			Reconciler: reconciler,
			Secret:     config.AppConfig.MPWebhookSecret,
		},
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background sweeps.
	cron.InitSweepWorker(bookingEngine, establishmentService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("Starting server on %s...", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("Server error: %v", err)
		}
	}()

	// Wait for an interrupt and shut down gracefully.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("Forced shutdown: %v", err)
	}
	logger.Info("Server exited")
}
