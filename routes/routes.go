package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hostel-backend/controllers"
	"hostel-backend/middleware"
	"hostel-backend/services"
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

// SetupRouter wires controllers onto the route table. The resident surface
// sits behind the auth gate; everything under /api/admin additionally
// passes the admin gate.
func SetupRouter(
	db *gorm.DB,
	jwtSecret string,
	ac *controllers.AuthController,
	dc *controllers.DashboardController,
	bc *controllers.BookingController,
	tc *controllers.TicketController,
	anc *controllers.AnnouncementController,
	rc *controllers.RoomController,
	mc *controllers.MessController,
	sc *controllers.SettingsController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

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
		auth := api.Group("/auth")
		{
			auth.POST("/signup", ac.Signup)
			auth.POST("/login", ac.Login)
			auth.GET("/login", func(c *gin.Context) {
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "login required"})
			})
		}

		authed := api.Group("")
		authed.Use(middleware.RequireAuth(db, jwtSecret))
		{
			authed.GET("/auth/logout", ac.Logout)
			authed.GET("/dashboard", dc.Dashboard)

			bookings := authed.Group("/bookings")
			{
				bookings.GET("", bc.Overview)
				bookings.POST("/rooms/:id", bc.BookRoom)
				bookings.POST("/mess/:id", bc.BookMess)
				bookings.POST("/rooms/delete", bc.CancelRoom)
				bookings.POST("/mess/delete", bc.CancelMess)
			}

			tickets := authed.Group("/tickets")
			{
				tickets.GET("", tc.ListOwn)
				tickets.POST("", tc.Create)
				tickets.DELETE("/:id", tc.Delete)
			}

			authed.GET("/announcements", anc.List)

			admin := authed.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/dashboard", dc.AdminDashboard)

				adminBookings := admin.Group("/bookings")
				{
					adminBookings.GET("", bc.Review)
					adminBookings.POST("/rooms/:username/approve", bc.Decide(services.ResourceRoom, services.DecisionApprove))
					adminBookings.POST("/rooms/:username/reject", bc.Decide(services.ResourceRoom, services.DecisionReject))
					adminBookings.POST("/mess/:username/approve", bc.Decide(services.ResourceMess, services.DecisionApprove))
					adminBookings.POST("/mess/:username/reject", bc.Decide(services.ResourceMess, services.DecisionReject))
				}

				adminTickets := admin.Group("/tickets")
				{
					adminTickets.GET("", tc.ListAll)
					adminTickets.POST("/:id/reply", tc.Reply)
					adminTickets.DELETE("/:id", tc.Delete)
				}

				adminAnnouncements := admin.Group("/announcements")
				{
					adminAnnouncements.GET("", anc.List)
					adminAnnouncements.POST("", anc.Create)
					adminAnnouncements.DELETE("/:id", anc.Delete)
				}

				rooms := admin.Group("/rooms")
				{
					rooms.GET("", rc.GetAll)
					rooms.POST("", rc.Create)
					rooms.PATCH("/:id", rc.Update)
					rooms.PUT("/:id", rc.Update)
					rooms.DELETE("/:id", rc.Delete)
				}

				mess := admin.Group("/mess")
				{
					mess.GET("", mc.GetAll)
					mess.POST("", mc.Create)
					mess.PATCH("/:id", mc.Update)
					mess.PUT("/:id", mc.Update)
					mess.DELETE("/:id", mc.Delete)
				}

				admin.GET("/users", ac.Users)

				settings := admin.Group("/settings")
				{
					settings.GET("", sc.Get)
					settings.PUT("", sc.Update)
				}
			}
		}
	}

	return r
}
