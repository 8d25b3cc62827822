package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subscriptionController "akademiku_backend/internals/features/subscriptions/controller"
)

// SubscriptionParentRoutes mounts the unified subscription endpoints.
func SubscriptionParentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := subscriptionController.NewSubscriptionController(db)

	subs := r.Group("/subscriptions")
	subs.Get("/", ctl.Index)
	subs.Get("/:type/:id", ctl.Show)
}
