package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	certificateController "akademiku_backend/internals/features/certificates/controller"
)

// CertificateParentRoutes mounts the certificate endpoints.
func CertificateParentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := certificateController.NewCertificateController(db)

	certs := r.Group("/certificates")
	certs.Get("/", ctl.Index)
	certs.Get("/child/:childId", ctl.ByChild)
	certs.Get("/:id", ctl.Show)
}
