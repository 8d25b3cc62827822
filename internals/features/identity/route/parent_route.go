package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	childCtrl "akademiku_backend/internals/features/identity/controller"
)

func ChildrenParentRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := childCtrl.NewChildrenController(db)

	g := r.Group("/children")
	g.Get("/", ctrl.List)
	g.Post("/link", ctrl.Link)
	g.Get("/:id", ctrl.Show)
	g.Delete("/:id", ctrl.Unlink)
}
