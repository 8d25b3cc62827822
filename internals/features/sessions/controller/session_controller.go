package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"akademiku_backend/internals/constants"
	identity "akademiku_backend/internals/features/identity/service"
	"akademiku_backend/internals/features/sessions/adapter"
	"akademiku_backend/internals/features/sessions/dto"
	"akademiku_backend/internals/features/sessions/model"
	"akademiku_backend/internals/features/sessions/service"
	helper "akademiku_backend/internals/helpers"
)

type SessionController struct {
	DB       *gorm.DB
	Resolver *identity.Resolver
	Unified  *service.UnifiedSessionService
}

func NewSessionController(db *gorm.DB, unified *service.UnifiedSessionService) *SessionController {
	return &SessionController{DB: db, Resolver: &identity.Resolver{DB: db}, Unified: unified}
}

func (ctl *SessionController) resolveContext(c *fiber.Ctx) (uuid.UUID, []identity.Child, error) {
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

func filterChildren(children []identity.Child, childID *uuid.UUID) ([]identity.Child, error) {
	if childID == nil {
		return children, nil
	}
	for _, ch := range children {
		if ch.Identity.StudentProfileID == *childID {
			return []identity.Child{ch}, nil
		}
	}
	return nil, helper.ErrNotFound(helper.CodeChildNotFound, "Child not found")
}

// GET /parent/sessions
// Filters: type, status, child_id, from_date, to_date. Paginated.
func (ctl *SessionController) Index(c *fiber.Ctx) error {
	academyID, children, err := ctl.resolveContext(c)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}

	var childID *uuid.UUID
	if raw := c.Query("child_id"); raw != "" {
		id, perr := uuid.Parse(raw)
		if perr != nil {
			return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.CodeInvalidParameters, "child_id must be a valid uuid")
		}
		childID = &id
	}
	children, err = filterChildren(children, childID)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}

	opts := adapter.FetchOptions{Descending: c.Query("order") == "desc"}
	r, rerr := helper.ParseDateRangeQuery(c)
	if rerr != nil {
		return helper.ErrorHandler(c, rerr)
	}
	if !r.IsZero() {
		opts.Range = &r
	}
	if raw := c.Query("status"); raw != "" {
		st, serr := model.ParseSessionStatus(raw)
		if serr != nil {
			return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.CodeInvalidParameters, "unknown status filter")
		}
		opts.Statuses = []model.SessionStatus{st}
	}

	typeFilter := c.Query("type")
	if typeFilter != "" && !constants.IsSessionType(typeFilter) {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.CodeInvalidType, "unknown session type")
	}

	keys := identity.BuildKeySet(children)
	events, err := ctl.Unified.GetForStudents(c.Context(), academyID, keys, opts)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	if typeFilter != "" {
		filtered := events[:0:0]
		for _, ev := range events {
			if ev.Type == typeFilter {
				filtered = append(filtered, ev)
			}
		}
		events = filtered
	}

	paging := helper.ResolvePaging(c, 20, 100)
	index := identity.IndexChildren(children)
	items := dto.NewSessionEventResponses(events, index)
	page, pagination := helper.PaginateSlice(items, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Sessions fetched successfully", "sessions", page, pagination)
}

// GET /parent/sessions/today
func (ctl *SessionController) Today(c *fiber.Ctx) error {
	academyID, children, err := ctl.resolveContext(c)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	keys := identity.BuildKeySet(children)
	events, err := ctl.Unified.GetToday(c.Context(), academyID, keys)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	index := identity.IndexChildren(children)
	return helper.JsonOK(c, "Today's sessions fetched successfully", fiber.Map{
		"date":     time.Now().Format("2006-01-02"),
		"sessions": dto.NewSessionEventResponses(events, index),
	})
}

// GET /parent/sessions/upcoming
func (ctl *SessionController) Upcoming(c *fiber.Ctx) error {
	academyID, children, err := ctl.resolveContext(c)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	days := c.QueryInt("days", 7)
	limit := c.QueryInt("limit", 20)
	if days < 1 || days > 90 || limit < 1 || limit > 100 {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.CodeInvalidParameters, "days must be 1-90 and limit 1-100")
	}
	keys := identity.BuildKeySet(children)
	events, err := ctl.Unified.GetUpcoming(c.Context(), academyID, keys, days, limit)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	index := identity.IndexChildren(children)
	return helper.JsonOK(c, "Upcoming sessions fetched successfully", fiber.Map{
		"sessions": dto.NewSessionEventResponses(events, index),
	})
}

// GET /parent/sessions/:type/:id
func (ctl *SessionController) Show(c *fiber.Ctx) error {
	academyID, children, err := ctl.resolveContext(c)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	sessionType := c.Params("type")
	if !constants.IsSessionType(sessionType) {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.CodeInvalidType, "unknown session type")
	}
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.CodeInvalidParameters, "id must be a valid uuid")
	}

	keys := identity.BuildKeySet(children)
	index := identity.IndexChildren(children)

	var detail *dto.SessionDetailResponse
	switch sessionType {
	case constants.TypeQuran:
		detail, err = ctl.quranDetail(c, academyID, sessionID, keys, index)
	case constants.TypeAcademic:
		detail, err = ctl.academicDetail(c, academyID, sessionID, keys, index)
	default:
		detail, err = ctl.interactiveDetail(c, academyID, sessionID, keys, index)
	}
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	return helper.JsonOK(c, "Session detail fetched successfully", fiber.Map{"session": detail})
}

type reportRow struct {
	AttendanceStatus *string  `gorm:"column:student_session_report_attendance_status"`
	Rating           *float64 `gorm:"column:student_session_report_rating"`
	Notes            *string  `gorm:"column:student_session_report_notes"`
}

func (ctl *SessionController) sessionReport(c *fiber.Ctx, academyID, sessionID uuid.UUID, sessionType string) *reportRow {
	var row reportRow
	err := ctl.DB.WithContext(c.Context()).
		Table("student_session_reports").
		Select("student_session_report_attendance_status, student_session_report_rating, student_session_report_notes").
		Where("student_session_report_deleted_at IS NULL").
		Where("student_session_report_academy_id = ?", academyID).
		Where("student_session_report_session_type = ?", sessionType).
		Where("student_session_report_session_id = ?", sessionID).
		Take(&row).Error
	if err != nil {
		return nil
	}
	return &row
}

func (ctl *SessionController) quranDetail(c *fiber.Ctx, academyID, sessionID uuid.UUID, keys identity.KeySet, index identity.ChildIndex) (*dto.SessionDetailResponse, error) {
	if len(keys.User) == 0 {
		return nil, helper.ErrNotFound(helper.CodeSessionNotFound, "Session not found")
	}
	var s model.QuranSessionModel
	err := ctl.DB.WithContext(c.Context()).
		Where("quran_session_academy_id = ?", academyID).
		Where("quran_session_id = ?", sessionID).
		Where("quran_session_student_id IN ?", []uuid.UUID(keys.User)).
		Take(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrNotFound(helper.CodeSessionNotFound, "Session not found")
	}
	if err != nil {
		return nil, err
	}

	base := adapter.SessionEvent{
		ID:              s.QuranSessionID,
		Type:            constants.TypeQuran,
		StudentKey:      s.QuranSessionStudentID,
		Title:           "Quran Session",
		Code:            &s.QuranSessionCode,
		ScheduledAt:     s.QuranSessionScheduledAt,
		DurationMinutes: s.QuranSessionDurationMinutes,
		Status:          s.QuranSessionStatus,
		MeetingLink:     s.QuranSessionMeetingLink,
		CanJoin:         adapter.CanJoinAt(s.QuranSessionStatus, s.QuranSessionScheduledAt, time.Now()),
		TeacherID:       s.QuranSessionTeacherID,
	}
	if s.QuranSessionTitle != nil && *s.QuranSessionTitle != "" {
		base.Title = *s.QuranSessionTitle
	}

	detail := &dto.SessionDetailResponse{
		SessionEventResponse: dto.NewSessionEventResponse(base, index.ByAnyKey(s.QuranSessionStudentID)),
		StartedAt:            s.QuranSessionStartedAt,
		EndedAt:              s.QuranSessionEndedAt,
	}
	detail.Teacher = ctl.teacherBrief(c, s.QuranSessionTeacherID)
	if detail.Teacher != nil {
		detail.TeacherName = detail.Teacher.Name
		detail.TeacherAvatar = detail.Teacher.Avatar
	}

	if s.QuranSessionCircleID != nil {
		var circle model.QuranCircleModel
		if cerr := ctl.DB.WithContext(c.Context()).
			Where("quran_circle_id = ?", *s.QuranSessionCircleID).
			Take(&circle).Error; cerr == nil {
			detail.Circle = &dto.CircleBlock{
				ID:   circle.QuranCircleID,
				Name: circle.QuranCircleName,
				Type: circle.QuranCircleType,
			}
			detail.CircleName = &circle.QuranCircleName
			detail.CircleType = &circle.QuranCircleType
		}
	}

	homework := dto.QuranHomeworkBlock{
		Memorization: s.QuranSessionHomeworkMemorization,
		Recitation:   s.QuranSessionHomeworkRecitation,
		Review:       s.QuranSessionHomeworkReview,
	}
	if !homework.Empty() {
		detail.Homework = &homework
	}
	if r := ctl.sessionReport(c, academyID, sessionID, constants.TypeQuran); r != nil {
		detail.Evaluation = &dto.EvaluationBlock{
			AttendanceStatus: r.AttendanceStatus,
			Rating:           r.Rating,
			Notes:            r.Notes,
		}
	}
	return detail, nil
}

func (ctl *SessionController) academicDetail(c *fiber.Ctx, academyID, sessionID uuid.UUID, keys identity.KeySet, index identity.ChildIndex) (*dto.SessionDetailResponse, error) {
	if len(keys.User) == 0 {
		return nil, helper.ErrNotFound(helper.CodeSessionNotFound, "Session not found")
	}
	var s model.AcademicSessionModel
	err := ctl.DB.WithContext(c.Context()).
		Where("academic_session_academy_id = ?", academyID).
		Where("academic_session_id = ?", sessionID).
		Where("academic_session_student_id IN ?", []uuid.UUID(keys.User)).
		Take(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrNotFound(helper.CodeSessionNotFound, "Session not found")
	}
	if err != nil {
		return nil, err
	}

	base := adapter.SessionEvent{
		ID:              s.AcademicSessionID,
		Type:            constants.TypeAcademic,
		StudentKey:      s.AcademicSessionStudentID,
		Title:           "Academic Session",
		Code:            &s.AcademicSessionCode,
		ScheduledAt:     s.AcademicSessionScheduledAt,
		DurationMinutes: s.AcademicSessionDurationMinutes,
		Status:          s.AcademicSessionStatus,
		MeetingLink:     s.AcademicSessionMeetingLink,
		CanJoin:         adapter.CanJoinAt(s.AcademicSessionStatus, s.AcademicSessionScheduledAt, time.Now()),
		TeacherID:       s.AcademicSessionTeacherID,
		Subject:         s.AcademicSessionSubjectName,
	}
	switch {
	case s.AcademicSessionTitle != nil && *s.AcademicSessionTitle != "":
		base.Title = *s.AcademicSessionTitle
	case s.AcademicSessionSubjectName != nil && *s.AcademicSessionSubjectName != "":
		base.Title = *s.AcademicSessionSubjectName
	}

	detail := &dto.SessionDetailResponse{
		SessionEventResponse: dto.NewSessionEventResponse(base, index.ByAnyKey(s.AcademicSessionStudentID)),
		LessonContent:        s.AcademicSessionLessonContent,
		TopicsCovered:        s.AcademicSessionTopicsCovered,
		StartedAt:            s.AcademicSessionStartedAt,
		EndedAt:              s.AcademicSessionEndedAt,
	}
	detail.Teacher = ctl.teacherBrief(c, s.AcademicSessionTeacherID)
	if detail.Teacher != nil {
		detail.TeacherName = detail.Teacher.Name
		detail.TeacherAvatar = detail.Teacher.Avatar
	}

	if s.AcademicSessionSubscriptionID != nil {
		type subRow struct {
			ID          uuid.UUID `gorm:"column:academic_subscription_id"`
			PackageName *string   `gorm:"column:academic_subscription_package_name"`
			SubjectName *string   `gorm:"column:academic_subscription_subject_name"`
			Status      string    `gorm:"column:academic_subscription_status"`
		}
		var sub subRow
		if serr := ctl.DB.WithContext(c.Context()).
			Table("academic_subscriptions").
			Select("academic_subscription_id, academic_subscription_package_name, academic_subscription_subject_name, academic_subscription_status").
			Where("academic_subscription_deleted_at IS NULL").
			Where("academic_subscription_id = ?", *s.AcademicSessionSubscriptionID).
			Take(&sub).Error; serr == nil {
			detail.Subscription = &dto.SubscriptionBrief{
				ID:          sub.ID,
				PackageName: sub.PackageName,
				Subject:     sub.SubjectName,
				Status:      sub.Status,
			}
		}
	}

	if r := ctl.sessionReport(c, academyID, sessionID, constants.TypeAcademic); r != nil {
		detail.Report = &dto.AcademicReportBlock{Rating: r.Rating, Notes: r.Notes}
		detail.Evaluation = &dto.EvaluationBlock{
			AttendanceStatus: r.AttendanceStatus,
			Rating:           r.Rating,
			Notes:            r.Notes,
		}
	}
	return detail, nil
}

func (ctl *SessionController) interactiveDetail(c *fiber.Ctx, academyID, sessionID uuid.UUID, keys identity.KeySet, index identity.ChildIndex) (*dto.SessionDetailResponse, error) {
	if len(keys.Profile) == 0 {
		return nil, helper.ErrNotFound(helper.CodeSessionNotFound, "Session not found")
	}
	var s model.InteractiveCourseSessionModel
	err := ctl.DB.WithContext(c.Context()).
		Where("interactive_course_session_id = ?", sessionID).
		Take(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrNotFound(helper.CodeSessionNotFound, "Session not found")
	}
	if err != nil {
		return nil, err
	}

	var course model.InteractiveCourseModel
	err = ctl.DB.WithContext(c.Context()).
		Where("interactive_course_id = ?", s.InteractiveCourseSessionCourseID).
		Where("interactive_course_academy_id = ?", academyID).
		Take(&course).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrNotFound(helper.CodeSessionNotFound, "Session not found")
	}
	if err != nil {
		return nil, err
	}

	// Access check through the enrollment table, profile-keyed.
	type enrollRow struct {
		StudentProfileID uuid.UUID `gorm:"column:course_subscription_student_profile_id"`
	}
	var enroll enrollRow
	err = ctl.DB.WithContext(c.Context()).
		Table("course_subscriptions").
		Select("course_subscription_student_profile_id").
		Where("course_subscription_deleted_at IS NULL").
		Where("course_subscription_academy_id = ?", academyID).
		Where("course_subscription_course_id = ?", course.InteractiveCourseID).
		Where("course_subscription_student_profile_id IN ?", []uuid.UUID(keys.Profile)).
		Order("course_subscription_created_at ASC").
		Take(&enroll).Error
	if err != nil {
		return nil, helper.ErrNotFound(helper.CodeSessionNotFound, "Session not found")
	}

	sessionNumber := s.InteractiveCourseSessionNumber
	base := adapter.SessionEvent{
		ID:              s.InteractiveCourseSessionID,
		Type:            constants.TypeInteractive,
		StudentKey:      enroll.StudentProfileID,
		Title:           course.InteractiveCourseTitle,
		ScheduledAt:     s.InteractiveCourseSessionScheduledAt,
		DurationMinutes: s.InteractiveCourseSessionDurationMinutes,
		Status:          s.InteractiveCourseSessionStatus,
		MeetingLink:     s.InteractiveCourseSessionMeetingLink,
		CanJoin:         adapter.CanJoinAt(s.InteractiveCourseSessionStatus, s.InteractiveCourseSessionScheduledAt, time.Now()),
		TeacherID:       course.InteractiveCourseTeacherID,
		CourseID:        &course.InteractiveCourseID,
		CourseName:      &course.InteractiveCourseTitle,
		SessionNumber:   &sessionNumber,
	}
	if s.InteractiveCourseSessionTitle != nil && *s.InteractiveCourseSessionTitle != "" {
		base.Title = *s.InteractiveCourseSessionTitle
	}

	detail := &dto.SessionDetailResponse{
		SessionEventResponse: dto.NewSessionEventResponse(base, index.ByAnyKey(enroll.StudentProfileID)),
		Description:          s.InteractiveCourseSessionDescription,
		Materials:            s.InteractiveCourseSessionMaterials,
	}
	detail.Teacher = ctl.teacherBrief(c, course.InteractiveCourseTeacherID)
	if detail.Teacher != nil {
		detail.TeacherName = detail.Teacher.Name
		detail.TeacherAvatar = detail.Teacher.Avatar
	}
	detail.Course = &dto.CourseBlock{
		ID:            course.InteractiveCourseID,
		Title:         course.InteractiveCourseTitle,
		Thumbnail:     course.InteractiveCourseThumbnail,
		TotalSessions: course.InteractiveCourseTotalSessions,
	}
	return detail, nil
}

func (ctl *SessionController) teacherBrief(c *fiber.Ctx, teacherID *uuid.UUID) *dto.TeacherBrief {
	if teacherID == nil {
		return nil
	}
	var t model.TeacherProfileModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("teacher_profile_id = ?", *teacherID).
		Take(&t).Error; err != nil {
		return nil
	}
	name := t.TeacherProfileFullName
	return &dto.TeacherBrief{ID: teacherID, Name: &name, Avatar: t.TeacherProfileAvatar}
}
