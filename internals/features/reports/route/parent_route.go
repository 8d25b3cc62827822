package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	reportController "akademiku_backend/internals/features/reports/controller"
	sessionService "akademiku_backend/internals/features/sessions/service"
)

// ReportParentRoutes mounts the aggregation endpoints.
func ReportParentRoutes(r fiber.Router, db *gorm.DB, rdb *redis.Client) {
	sessions := sessionService.NewUnifiedSessionService(db, rdb)
	ctl := reportController.NewReportController(db, sessions)

	reports := r.Group("/reports")
	reports.Get("/progress", ctl.Progress)
	reports.Get("/progress/:childId", ctl.Progress)
	reports.Get("/attendance", ctl.Attendance)
	reports.Get("/attendance/:childId", ctl.Attendance)
	reports.Get("/subscription/:type/:id", ctl.Subscription)
}
