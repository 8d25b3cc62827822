package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	sessionController "akademiku_backend/internals/features/sessions/controller"
	sessionService "akademiku_backend/internals/features/sessions/service"
)

// SessionParentRoutes mounts the unified session endpoints for parents.
func SessionParentRoutes(r fiber.Router, db *gorm.DB, rdb *redis.Client) {
	unified := sessionService.NewUnifiedSessionService(db, rdb)
	ctl := sessionController.NewSessionController(db, unified)

	sessions := r.Group("/sessions")
	sessions.Get("/", ctl.Index)
	sessions.Get("/today", ctl.Today)
	sessions.Get("/upcoming", ctl.Upcoming)
	sessions.Get("/:type/:id", ctl.Show)
}
