// File: meetcure/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meetcure/config"
	"meetcure/cron"
	"meetcure/database"
	appointmentRepoPkg "meetcure/database/repository/appointment"
	availabilityRepoPkg "meetcure/database/repository/availability"
	doctorRepoPkg "meetcure/database/repository/doctor"
	patientRepoPkg "meetcure/database/repository/patient"
	"meetcure/handlers"
	"meetcure/middleware"
	"meetcure/routes"
	"meetcure/services/appointment"
	"meetcure/services/availability"
	"meetcure/services/doctor"
	"meetcure/services/patient"
	"meetcure/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.RegisterValidations()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	availRepo := availabilityRepoPkg.NewMongoAvailabilityRepo()
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	docRepo := doctorRepoPkg.NewMongoDoctorRepo()
	patRepo := patientRepoPkg.NewMongoPatientRepo()

	// reminder scheduling.
	reminders := cron.NewReminderScheduler()
	defer reminders.Close()
	cron.InitReminderWorker()

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		Repo:  availRepo,
		Cache: utils.GetCacheClient(),
	}
	appointmentService := &appointment.DefaultAppointmentService{
		Repo:         apptRepo,
		Availability: availRepo,
		Cache:        availabilityService,
		Reminders:    reminders,
	}
	doctorService := &doctor.DefaultDoctorService{Repo: docRepo}
	patientService := &patient.DefaultPatientService{Repo: patRepo}

	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	doctorHandler := handlers.NewDoctorHandler(doctorService)
	patientHandler := handlers.NewPatientHandler(patientService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		DoctorRepo:  docRepo,
		PatientRepo: patRepo,

		// Availability endpoints.
		SetAvailabilityHandler:    availabilityHandler.SetAvailabilityHandler,
		GetAvailabilityHandler:    availabilityHandler.GetAvailabilityHandler,
		DeleteAvailabilityHandler: availabilityHandler.DeleteAvailabilityHandler,

		// Doctor account endpoints.
		RegisterDoctorHandler: doctorHandler.RegisterDoctorHandler,
		LoginDoctorHandler:    doctorHandler.LoginDoctorHandler,
		GetDoctorByIDHandler:  doctorHandler.GetDoctorByIDHandler,
		ListDoctorsHandler:    doctorHandler.ListDoctorsHandler,

		// Patient account endpoints.
		RegisterPatientHandler: patientHandler.RegisterPatientHandler,
		LoginPatientHandler:    patientHandler.LoginPatientHandler,
		GetPatientHandler:      patientHandler.GetPatientHandler,

		// Appointment endpoints.
		BookAppointmentHandler:     appointmentHandler.BookAppointmentHandler,
		PatientAppointmentsHandler: appointmentHandler.PatientAppointmentsHandler,
		DoctorAppointmentsHandler:  appointmentHandler.DoctorAppointmentsHandler,
		CancelAppointmentHandler:   appointmentHandler.CancelAppointmentHandler,

		// Calendar endpoint.
		MonthGridHandler: handlers.MonthGridHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Periodic health snapshot for /health.
	utils.StartHealthMonitor(
		map[string]*redis.Client{
			"cache": utils.GetCacheClient(),
			"auth":  utils.GetAuthCacheClient(),
		},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
