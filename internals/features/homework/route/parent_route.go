package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	homeworkController "akademiku_backend/internals/features/homework/controller"
)

// HomeworkParentRoutes mounts the homework projection endpoints.
func HomeworkParentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := homeworkController.NewHomeworkController(db)

	hw := r.Group("/homework")
	hw.Get("/", ctl.Index)
	hw.Get("/child/:childId", ctl.ByChild)
	hw.Get("/:type/:id", ctl.Show)
}
