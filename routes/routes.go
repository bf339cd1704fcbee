package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"medbook/handlers"
)

// RegisterBookingRoutes sets up the reservation endpoints.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	api := r.Group("/api")
	{
		api.GET("/slots", bh.GetSlots)
		api.POST("/booking", bh.SubmitBooking)
		api.GET("/booking/:reference", bh.GetReceipt)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	// The booking form is served from a separate origin, so CORS stays open.
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterBookingRoutes(r, bh)
	RegisterHealthRoute(r)
}
