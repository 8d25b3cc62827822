package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	calendarController "akademiku_backend/internals/features/calendar/controller"
	sessionService "akademiku_backend/internals/features/sessions/service"
)

// CalendarParentRoutes mounts the month-view endpoints.
func CalendarParentRoutes(r fiber.Router, db *gorm.DB, rdb *redis.Client) {
	sessions := sessionService.NewUnifiedSessionService(db, rdb)
	ctl := calendarController.NewCalendarController(db, sessions)

	r.Get("/calendar", ctl.Month)
	r.Get("/calendar/:year/:month", ctl.Month)
}
