package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	identity "akademiku_backend/internals/features/identity/service"
	"akademiku_backend/internals/features/quizzes/dto"
	"akademiku_backend/internals/features/quizzes/model"
	helper "akademiku_backend/internals/helpers"
)

// QuizController surfaces quizzes the parent's children have attempted.
type QuizController struct {
	DB       *gorm.DB
	Resolver *identity.Resolver
}

func NewQuizController(db *gorm.DB) *QuizController {
	return &QuizController{DB: db, Resolver: identity.NewResolver(db)}
}

func (ctl *QuizController) resolveContext(c *fiber.Ctx) (uuid.UUID, []identity.Child, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return uuid.Nil, nil, err
	}
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return uuid.Nil, nil, err
	}
	children, err := ctl.Resolver.ResolveChildren(c.Context(), userID, academyID)
	if err != nil {
		return uuid.Nil, nil, err
	}
	return academyID, children, nil
}

// fetchAttempted loads attempts for the given profile keys plus the quizzes
// they belong to; two queries regardless of child count.
func (ctl *QuizController) fetchAttempted(c *fiber.Ctx, academyID uuid.UUID, keys identity.ProfileKeys) ([]model.QuizModel, map[uuid.UUID][]model.QuizAttemptModel, error) {
	if len(keys) == 0 {
		return []model.QuizModel{}, map[uuid.UUID][]model.QuizAttemptModel{}, nil
	}

	var attempts []model.QuizAttemptModel
	err := ctl.DB.WithContext(c.Context()).
		Where("quiz_attempt_student_profile_id IN ?", []uuid.UUID(keys)).
		Order("quiz_attempt_attempted_at DESC").
		Find(&attempts).Error
	if err != nil {
		return nil, nil, err
	}
	if len(attempts) == 0 {
		return []model.QuizModel{}, map[uuid.UUID][]model.QuizAttemptModel{}, nil
	}

	byQuiz := map[uuid.UUID][]model.QuizAttemptModel{}
	quizIDs := make([]uuid.UUID, 0, len(attempts))
	for _, a := range attempts {
		if _, seen := byQuiz[a.QuizAttemptQuizID]; !seen {
			quizIDs = append(quizIDs, a.QuizAttemptQuizID)
		}
		byQuiz[a.QuizAttemptQuizID] = append(byQuiz[a.QuizAttemptQuizID], a)
	}

	var quizzes []model.QuizModel
	err = ctl.DB.WithContext(c.Context()).
		Where("quiz_academy_id = ?", academyID).
		Where("quiz_id IN ?", quizIDs).
		Find(&quizzes).Error
	if err != nil {
		return nil, nil, err
	}
	return quizzes, byQuiz, nil
}

// GET /parent/quizzes
func (ctl *QuizController) Index(c *fiber.Ctx) error {
	academyID, children, err := ctl.resolveContext(c)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	keys := identity.BuildKeySet(children)
	quizzes, byQuiz, err := ctl.fetchAttempted(c, academyID, keys.Profile)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	index := identity.IndexChildren(children)
	items := make([]dto.QuizResponse, 0, len(quizzes))
	for _, quiz := range quizzes {
		items = append(items, dto.NewQuizResponse(quiz, byQuiz[quiz.QuizID], index))
	}
	paging := helper.ResolvePaging(c, 20, 100)
	page, pagination := helper.PaginateSlice(items, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Quizzes fetched successfully", "quizzes", page, pagination)
}

// GET /parent/quizzes/child/:childId
func (ctl *QuizController) ByChild(c *fiber.Ctx) error {
	academyID, children, err := ctl.resolveContext(c)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	childID, err := uuid.Parse(c.Params("childId"))
	if err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.CodeInvalidParameters, "childId must be a valid uuid")
	}
	var scoped []identity.Child
	for _, ch := range children {
		if ch.Identity.StudentProfileID == childID {
			scoped = []identity.Child{ch}
			break
		}
	}
	if scoped == nil {
		return helper.ErrorHandler(c, helper.ErrNotFound(helper.CodeChildNotFound, "Child not found"))
	}
	keys := identity.BuildKeySet(scoped)
	quizzes, byQuiz, err := ctl.fetchAttempted(c, academyID, keys.Profile)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	index := identity.IndexChildren(scoped)
	items := make([]dto.QuizResponse, 0, len(quizzes))
	for _, quiz := range quizzes {
		items = append(items, dto.NewQuizResponse(quiz, byQuiz[quiz.QuizID], index))
	}
	paging := helper.ResolvePaging(c, 20, 100)
	page, pagination := helper.PaginateSlice(items, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Quizzes fetched successfully", "quizzes", page, pagination)
}

// GET /parent/quizzes/:id
func (ctl *QuizController) Show(c *fiber.Ctx) error {
	academyID, children, err := ctl.resolveContext(c)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	quizID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.CodeInvalidParameters, "id must be a valid uuid")
	}

	var quiz model.QuizModel
	err = ctl.DB.WithContext(c.Context()).
		Where("quiz_academy_id = ?", academyID).
		Where("quiz_id = ?", quizID).
		Take(&quiz).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.ErrorHandler(c, helper.ErrNotFound(helper.CodeQuizNotFound, "Quiz not found"))
	}
	if err != nil {
		return helper.ErrorHandler(c, err)
	}

	keys := identity.BuildKeySet(children)
	var attempts []model.QuizAttemptModel
	if len(keys.Profile) > 0 {
		err = ctl.DB.WithContext(c.Context()).
			Where("quiz_attempt_quiz_id = ?", quizID).
			Where("quiz_attempt_student_profile_id IN ?", []uuid.UUID(keys.Profile)).
			Order("quiz_attempt_attempted_at DESC").
			Find(&attempts).Error
		if err != nil {
			return helper.ErrorHandler(c, err)
		}
	}

	index := identity.IndexChildren(children)
	return helper.JsonOK(c, "Quiz fetched successfully", fiber.Map{
		"quiz": dto.NewQuizResponse(quiz, attempts, index),
	})
}
