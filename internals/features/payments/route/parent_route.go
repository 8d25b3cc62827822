package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "akademiku_backend/internals/features/payments/controller"
)

// PaymentParentRoutes mounts the renewal payment endpoints.
func PaymentParentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := paymentController.NewPaymentController(db)

	payments := r.Group("/payments")
	payments.Get("/", ctl.Index)
	payments.Post("/initiate", ctl.Initiate)
	payments.Get("/:id", ctl.Show)
}
