package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "akademiku_backend/internals/features/auth/controller"
)

// AuthRoutes mounts the public authentication endpoints.
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	auth := r.Group("/auth")
	auth.Post("/login", ctl.Login)
}
