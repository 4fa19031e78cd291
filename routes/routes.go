package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/lvnzip001/butterworth-bnb/controllers"
	"github.com/lvnzip001/butterworth-bnb/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controller instances onto the public and admin route
// groups.
func SetupRouter(
	bc *controllers.BookingController,
	cc *controllers.CheckinController,
	ac *controllers.AvailabilityController,
	sc *controllers.StatsController,
	ctc *controllers.CustomerController,
	rc *controllers.RoomTypeController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Public booking surface
		api.GET("/bnb", controllers.GetBnbs)
		api.GET("/bnb/:id", controllers.GetBnbByID)
		api.GET("/room-types", rc.GetRoomTypes)
		api.GET("/room-types/:id", rc.GetRoomType)
		api.GET("/availability", ac.GetRange)
		api.POST("/bookings", bc.CreateBooking)

		auth := api.Group("/auth")
		{
			auth.POST("/register", controllers.Register)
			auth.POST("/login", controllers.Login)
		}

		// Back office
		admin := api.Group("/admin")
		{
			bookings := admin.Group("/bookings")
			{
				bookings.GET("", bc.GetBookings)
				bookings.GET("/:id", bc.GetBooking)
				bookings.PATCH("/:id/status", bc.UpdateStatus)
				bookings.PATCH("/:id/room", bc.UpdateRoom)
				bookings.DELETE("/:id", bc.DeleteBooking)
			}

			checkins := admin.Group("/checkins")
			{
				checkins.GET("", cc.GetCheckins)
				checkins.POST("", cc.CheckIn)
				checkins.POST("/undo", cc.UndoCheckin)
				checkins.POST("/checkout", cc.Checkout)
				checkins.GET("/history/:code", cc.History)
			}

			admin.PUT("/room-types/:id/pricing", rc.UpdatePricing)

			customers := admin.Group("/customers")
			{
				customers.GET("", ctc.GetCustomers)
				customers.POST("/email", ctc.EmailCustomer)
				customers.POST("/sms", ctc.SMSCustomer)
			}

			stats := admin.Group("/stats")
			{
				stats.GET("/kpis", sc.GetKPIs)
				stats.GET("/usage", sc.GetUsage)
				stats.GET("/archive", sc.GetArchive)
				stats.GET("/summary", sc.GetMonthlySummary)
			}
		}
	}

	return r
}
