package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	dashboardController "akademiku_backend/internals/features/dashboard/controller"
	sessionService "akademiku_backend/internals/features/sessions/service"
)

// DashboardParentRoutes mounts the landing aggregation endpoint.
func DashboardParentRoutes(r fiber.Router, db *gorm.DB, rdb *redis.Client) {
	sessions := sessionService.NewUnifiedSessionService(db, rdb)
	ctl := dashboardController.NewDashboardController(db, sessions)

	r.Get("/dashboard", ctl.Show)
}
