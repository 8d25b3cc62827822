package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	quizController "akademiku_backend/internals/features/quizzes/controller"
)

// QuizParentRoutes mounts the quiz result endpoints.
func QuizParentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := quizController.NewQuizController(db)

	quizzes := r.Group("/quizzes")
	quizzes.Get("/", ctl.Index)
	quizzes.Get("/child/:childId", ctl.ByChild)
	quizzes.Get("/:id", ctl.Show)
}
