package controller

import (
	"sort"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"akademiku_backend/internals/constants"
	"akademiku_backend/internals/features/homework/dto"
	identity "akademiku_backend/internals/features/identity/service"
	sessionModel "akademiku_backend/internals/features/sessions/model"
	helper "akademiku_backend/internals/helpers"
)

// HomeworkController surfaces homework assigned inside sessions. There is
// no homework table: the quran and academic session rows carry the
// assignment fields, and this controller projects them out.
type HomeworkController struct {
	DB       *gorm.DB
	Resolver *identity.Resolver
}

func NewHomeworkController(db *gorm.DB) *HomeworkController {
	return &HomeworkController{DB: db, Resolver: identity.NewResolver(db)}
}

func (ctl *HomeworkController) resolveContext(c *fiber.Ctx) (uuid.UUID, []identity.Child, error) {
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

func (ctl *HomeworkController) fetchQuranHomework(c *fiber.Ctx, academyID uuid.UUID, keys identity.UserKeys) ([]dto.HomeworkResponse, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	var rows []sessionModel.QuranSessionModel
	err := ctl.DB.WithContext(c.Context()).
		Where("quran_session_academy_id = ?", academyID).
		Where("quran_session_student_id IN ?", []uuid.UUID(keys)).
		Where("quran_session_homework_memorization IS NOT NULL OR quran_session_homework_recitation IS NOT NULL OR quran_session_homework_review IS NOT NULL").
		Order("quran_session_scheduled_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]dto.HomeworkResponse, 0, len(rows))
	for _, s := range rows {
		title := "Quran Session"
		if s.QuranSessionTitle != nil && *s.QuranSessionTitle != "" {
			title = *s.QuranSessionTitle
		}
		code := s.QuranSessionCode
		out = append(out, dto.HomeworkResponse{
			StudentKey:   s.QuranSessionStudentID,
			SessionID:    s.QuranSessionID,
			Type:         constants.TypeQuran,
			SessionCode:  &code,
			Title:        title,
			AssignedAt:   s.QuranSessionScheduledAt,
			Memorization: s.QuranSessionHomeworkMemorization,
			Recitation:   s.QuranSessionHomeworkRecitation,
			Review:       s.QuranSessionHomeworkReview,
		})
	}
	return out, nil
}

func (ctl *HomeworkController) fetchAcademicHomework(c *fiber.Ctx, academyID uuid.UUID, keys identity.UserKeys) ([]dto.HomeworkResponse, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	var rows []sessionModel.AcademicSessionModel
	err := ctl.DB.WithContext(c.Context()).
		Where("academic_session_academy_id = ?", academyID).
		Where("academic_session_student_id IN ?", []uuid.UUID(keys)).
		Where("academic_session_homework IS NOT NULL").
		Order("academic_session_scheduled_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]dto.HomeworkResponse, 0, len(rows))
	for _, s := range rows {
		title := "Academic Session"
		switch {
		case s.AcademicSessionTitle != nil && *s.AcademicSessionTitle != "":
			title = *s.AcademicSessionTitle
		case s.AcademicSessionSubjectName != nil && *s.AcademicSessionSubjectName != "":
			title = *s.AcademicSessionSubjectName
		}
		code := s.AcademicSessionCode
		out = append(out, dto.HomeworkResponse{
			StudentKey:    s.AcademicSessionStudentID,
			SessionID:     s.AcademicSessionID,
			Type:          constants.TypeAcademic,
			SessionCode:   &code,
			Title:         title,
			AssignedAt:    s.AcademicSessionScheduledAt,
			DueAt:         s.AcademicSessionHomeworkDueAt,
			Homework:      s.AcademicSessionHomework,
			LessonContent: s.AcademicSessionLessonContent,
			TopicsCovered: s.AcademicSessionTopicsCovered,
		})
	}
	return out, nil
}

func (ctl *HomeworkController) fetchAll(c *fiber.Ctx, academyID uuid.UUID, children []identity.Child) ([]dto.HomeworkResponse, error) {
	keys := identity.BuildKeySet(children)
	index := identity.IndexChildren(children)

	quran, err := ctl.fetchQuranHomework(c, academyID, keys.User)
	if err != nil {
		return nil, err
	}
	academic, err := ctl.fetchAcademicHomework(c, academyID, keys.User)
	if err != nil {
		return nil, err
	}

	merged := make([]dto.HomeworkResponse, 0, len(quran)+len(academic))
	merged = append(merged, quran...)
	merged = append(merged, academic...)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].AssignedAt.After(merged[j].AssignedAt)
	})

	// Re-attribute by the session's student key.
	for i := range merged {
		merged[i] = dto.WithChild(merged[i], index.ByAnyKey(merged[i].StudentKey))
	}
	return merged, nil
}

// GET /parent/homework
func (ctl *HomeworkController) Index(c *fiber.Ctx) error {
	academyID, children, err := ctl.resolveContext(c)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	items, err := ctl.fetchAll(c, academyID, children)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	paging := helper.ResolvePaging(c, 20, 100)
	page, pagination := helper.PaginateSlice(items, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Homework fetched successfully", "homework", page, pagination)
}

// GET /parent/homework/child/:childId
func (ctl *HomeworkController) ByChild(c *fiber.Ctx) error {
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
	items, err := ctl.fetchAll(c, academyID, scoped)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	paging := helper.ResolvePaging(c, 20, 100)
	page, pagination := helper.PaginateSlice(items, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Homework fetched successfully", "homework", page, pagination)
}

// GET /parent/homework/:type/:id
func (ctl *HomeworkController) Show(c *fiber.Ctx) error {
	academyID, children, err := ctl.resolveContext(c)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	hwType := c.Params("type")
	if hwType != constants.TypeQuran && hwType != constants.TypeAcademic {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.CodeInvalidType, "homework exists for quran and academic sessions only")
	}
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.CodeInvalidParameters, "id must be a valid uuid")
	}

	items, err := ctl.fetchAll(c, academyID, children)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	for _, hw := range items {
		if hw.Type == hwType && hw.SessionID == sessionID {
			return helper.JsonOK(c, "Homework fetched successfully", fiber.Map{"homework": hw})
		}
	}
	return helper.ErrorHandler(c, helper.ErrNotFound(helper.CodeHomeworkNotFound, "Homework not found"))
}
