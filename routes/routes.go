// File: routes/routes.go
package routes

import (
	"net/http"
	"time"

	"meetcure/handlers"
	"meetcure/middleware"
	"meetcure/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers the availability endpoints. All
// three writes share the same doctor auth middleware; the delete route
// is scoped to the authenticated doctor's own documents.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		// Public read for patients browsing a doctor's open slots.
		api.GET("/:doctorId", hb.GetAvailabilityHandler)

		protected := api.Group("")
		protected.Use(middleware.RequireDoctor(hb.DoctorRepo))
		protected.POST("/", hb.SetAvailabilityHandler)
		protected.DELETE("/:date", hb.DeleteAvailabilityHandler)
	}
}

// RegisterDoctorRoutes registers doctor account endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		api.POST("/register", hb.RegisterDoctorHandler)
		api.POST("/login", hb.LoginDoctorHandler)
		api.GET("", hb.ListDoctorsHandler)
		api.GET("/:id", hb.GetDoctorByIDHandler)
	}
}

// RegisterPatientRoutes registers patient account endpoints.
func RegisterPatientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/patients")
	{
		api.POST("/register", hb.RegisterPatientHandler)
		api.POST("/login", hb.LoginPatientHandler)

		api.GET("/me", middleware.RequirePatient(hb.PatientRepo), hb.GetPatientHandler)
	}
}

// RegisterAppointmentRoutes registers the booking endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.POST("", middleware.RequirePatient(hb.PatientRepo), hb.BookAppointmentHandler)
		api.GET("/patient", middleware.RequirePatient(hb.PatientRepo), hb.PatientAppointmentsHandler)
		api.GET("/doctor", middleware.RequireDoctor(hb.DoctorRepo), hb.DoctorAppointmentsHandler)

		// Either side of a booking may cancel it.
		api.DELETE("/:id", middleware.RequireAny(hb.DoctorRepo, hb.PatientRepo), hb.CancelAppointmentHandler)
	}
}

// RegisterCalendarRoute registers the month grid endpoint the client
// renders its calendar from.
func RegisterCalendarRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/calendar/:year/:month", hb.MonthGridHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAvailabilityRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterPatientRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterCalendarRoute(r, hb)
	RegisterHealthRoute(r)
}
