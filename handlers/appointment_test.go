package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"meetcure/services/appointment"
	"meetcure/utils"
)

func newBookingRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	utils.RegisterValidations()

	// The service rejects malformed input before touching storage, so
	// a zero-value service is enough here.
	h := NewAppointmentHandler(&appointment.DefaultAppointmentService{})

	r := gin.New()
	r.POST("/api/appointments",
		func(c *gin.Context) { c.Set("accountID", "pat-1") },
		h.BookAppointmentHandler)
	return r
}

// Bad booking input is the caller's fault and must answer 400, never
// fall through to the generic 500 response.
func TestBookAppointmentHandlerRejectsBadInput(t *testing.T) {
	router := newBookingRouter()

	tests := []struct {
		name string
		body string
	}{
		{name: "day-first date", body: `{"doctorId":"doc-1","date":"13/05/2026","time":"9:00 AM"}`},
		{name: "past date", body: `{"doctorId":"doc-1","date":"2020-01-01","time":"9:00 AM"}`},
		{name: "clock without meridiem", body: `{"doctorId":"doc-1","date":"2030-05-13","time":"9:00"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d (body %s)", w.Code, http.StatusBadRequest, w.Body.String())
			}
		})
	}
}
