package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"akademiku_backend/internals/constants"
	identity "akademiku_backend/internals/features/identity/service"
	reportDTO "akademiku_backend/internals/features/reports/dto"
	"akademiku_backend/internals/features/reports/model"
	reportService "akademiku_backend/internals/features/reports/service"
	"akademiku_backend/internals/features/sessions/adapter"
	sessionDTO "akademiku_backend/internals/features/sessions/dto"
	sessionModel "akademiku_backend/internals/features/sessions/model"
	sessionService "akademiku_backend/internals/features/sessions/service"
	subscriptionDTO "akademiku_backend/internals/features/subscriptions/dto"
	subscriptionService "akademiku_backend/internals/features/subscriptions/service"
	helper "akademiku_backend/internals/helpers"
)

const defaultReportWindowDays = 30

type ReportController struct {
	DB            *gorm.DB
	Resolver      *identity.Resolver
	Sessions      *sessionService.UnifiedSessionService
	Subscriptions *subscriptionService.UnifiedSubscriptionService
}

func NewReportController(db *gorm.DB, sessions *sessionService.UnifiedSessionService) *ReportController {
	return &ReportController{
		DB:            db,
		Resolver:      identity.NewResolver(db),
		Sessions:      sessions,
		Subscriptions: subscriptionService.NewUnifiedSubscriptionService(db),
	}
}

func (ctl *ReportController) resolveContext(c *fiber.Ctx) (uuid.UUID, []identity.Child, error) {
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

// scopeToChild narrows the report to one child when :childId is present.
func scopeToChild(c *fiber.Ctx, children []identity.Child) ([]identity.Child, error) {
	raw := c.Params("childId")
	if raw == "" {
		return children, nil
	}
	childID, err := uuid.Parse(raw)
	if err != nil {
		return nil, helper.ErrBadRequest(helper.CodeInvalidParameters, "childId must be a valid uuid")
	}
	for _, ch := range children {
		if ch.Identity.StudentProfileID == childID {
			return []identity.Child{ch}, nil
		}
	}
	return nil, helper.ErrNotFound(helper.CodeChildNotFound, "Child not found")
}

// reportWindow reads ?start_date / ?end_date, defaulting to the last 30
// days ending now.
func reportWindow(c *fiber.Ctx, now time.Time) (helper.DateRange, error) {
	r := helper.DateRange{From: now.AddDate(0, 0, -defaultReportWindowDays), To: now}
	if s := c.Query("start_date"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return r, helper.ErrBadRequest(helper.CodeInvalidDate, "start_date must be YYYY-MM-DD")
		}
		r.From = t
	}
	if s := c.Query("end_date"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return r, helper.ErrBadRequest(helper.CodeInvalidDate, "end_date must be YYYY-MM-DD")
		}
		r.To = t.Add(24*time.Hour - time.Nanosecond)
	}
	if err := r.Validate(); err != nil {
		return r, err
	}
	return r, nil
}

// fetchReports loads the teacher evaluations overlapping the window, keyed
// by session id.
func (ctl *ReportController) fetchReports(c *fiber.Ctx, academyID uuid.UUID, keys identity.UserKeys, window helper.DateRange) (map[uuid.UUID]model.StudentSessionReportModel, error) {
	if len(keys) == 0 {
		return map[uuid.UUID]model.StudentSessionReportModel{}, nil
	}
	var rows []model.StudentSessionReportModel
	err := ctl.DB.WithContext(c.Context()).
		Where("student_session_report_academy_id = ?", academyID).
		Where("student_session_report_student_id IN ?", []uuid.UUID(keys)).
		Where("student_session_report_session_at BETWEEN ? AND ?", window.From, window.To).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	bySession := make(map[uuid.UUID]model.StudentSessionReportModel, len(rows))
	for _, r := range rows {
		bySession[r.StudentSessionReportSessionID] = r
	}
	return bySession, nil
}

func buildSamples(events []adapter.SessionEvent, reports map[uuid.UUID]model.StudentSessionReportModel) []reportService.AttendanceSample {
	samples := make([]reportService.AttendanceSample, 0, len(events))
	for _, ev := range events {
		sample := reportService.AttendanceSample{Type: ev.Type, Status: ev.Status}
		if r, ok := reports[ev.ID]; ok {
			status := r.StudentSessionReportAttendanceStatus
			sample.Attendance = &status
		}
		samples = append(samples, sample)
	}
	return samples
}

// groupEventsByChild partitions the shared window per owning child, keyed by
// student profile id. The report endpoints fetch once for every child and
// slice here; events whose key matches no linked child are dropped.
func groupEventsByChild(events []adapter.SessionEvent, index identity.ChildIndex) map[uuid.UUID][]adapter.SessionEvent {
	byChild := make(map[uuid.UUID][]adapter.SessionEvent)
	for _, ev := range events {
		if ch := index.ByAnyKey(ev.StudentKey); ch != nil {
			byChild[ch.Identity.StudentProfileID] = append(byChild[ch.Identity.StudentProfileID], ev)
		}
	}
	return byChild
}

// buildChildProgress aggregates one child's slice of the shared window.
func buildChildProgress(ch identity.Child, events []adapter.SessionEvent, reports map[uuid.UUID]model.StudentSessionReportModel, window helper.DateRange) reportDTO.ChildProgressResponse {
	totals := reportDTO.SessionTotals{ByType: map[string]int{}}
	completedCountable := 0
	countable := 0
	ratings := make([]*float64, 0, len(events))
	for _, ev := range events {
		totals.Total++
		totals.ByType[ev.Type]++
		switch ev.Status {
		case sessionModel.SessionCompleted:
			totals.Completed++
		case sessionModel.SessionCancelled:
			totals.Cancelled++
		case sessionModel.SessionScheduled, sessionModel.SessionReady, sessionModel.SessionOngoing:
			totals.Upcoming++
		}
		if ev.Status.Countable() {
			countable++
			if ev.Status == sessionModel.SessionCompleted {
				completedCountable++
			}
		}
		if r, ok := reports[ev.ID]; ok {
			ratings = append(ratings, r.StudentSessionReportRating)
		}
	}

	return reportDTO.ChildProgressResponse{
		Child: &sessionDTO.ChildBrief{
			ID:     ch.Identity.StudentProfileID,
			Name:   ch.DisplayName,
			Avatar: ch.AvatarURL,
		},
		Period:        reportDTO.Period{From: window.From, To: window.To},
		Sessions:      totals,
		Attendance:    reportService.AttendanceRate(buildSamples(events, reports)),
		AverageRating: reportService.AverageRating(ratings),
		Completion:    reportService.CompletionPercentage(completedCountable, countable),
	}
}

// GET /parent/reports/progress/:childId?
func (ctl *ReportController) Progress(c *fiber.Ctx) error {
	academyID, children, err := ctl.resolveContext(c)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	children, err = scopeToChild(c, children)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	now := time.Now()
	window, err := reportWindow(c, now)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}

	// One fetch covers every child; the window is partitioned in memory.
	keys := identity.BuildKeySet(children)
	index := identity.IndexChildren(children)
	events, err := ctl.Sessions.GetRange(c.Context(), academyID, keys, window)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	reports, err := ctl.fetchReports(c, academyID, keys.User, window)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	byChild := groupEventsByChild(events, index)

	results := make([]reportDTO.ChildProgressResponse, 0, len(children))
	for _, ch := range children {
		results = append(results, buildChildProgress(ch, byChild[ch.Identity.StudentProfileID], reports, window))
	}
	return helper.JsonOK(c, "Progress report fetched successfully", fiber.Map{"reports": results})
}

// GET /parent/reports/attendance/:childId?
func (ctl *ReportController) Attendance(c *fiber.Ctx) error {
	academyID, children, err := ctl.resolveContext(c)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	children, err = scopeToChild(c, children)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	now := time.Now()
	window, err := reportWindow(c, now)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}

	// Same batching as Progress: fetch once, partition per child.
	keys := identity.BuildKeySet(children)
	index := identity.IndexChildren(children)
	events, err := ctl.Sessions.GetRange(c.Context(), academyID, keys, window)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	reports, err := ctl.fetchReports(c, academyID, keys.User, window)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	byChild := groupEventsByChild(events, index)

	results := make([]reportDTO.ChildAttendanceResponse, 0, len(children))
	for _, ch := range children {
		samples := buildSamples(byChild[ch.Identity.StudentProfileID], reports)
		results = append(results, reportDTO.ChildAttendanceResponse{
			Child: &sessionDTO.ChildBrief{
				ID:     ch.Identity.StudentProfileID,
				Name:   ch.DisplayName,
				Avatar: ch.AvatarURL,
			},
			Period:  reportDTO.Period{From: window.From, To: window.To},
			Overall: reportService.AttendanceRate(samples),
			ByType:  reportService.AttendanceByType(samples),
		})
	}
	return helper.JsonOK(c, "Attendance report fetched successfully", fiber.Map{"reports": results})
}

// GET /parent/reports/subscription/:type/:id
func (ctl *ReportController) Subscription(c *fiber.Ctx) error {
	academyID, children, err := ctl.resolveContext(c)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	subType := c.Params("type")
	if subType != constants.TypeQuran && subType != constants.TypeAcademic && subType != constants.TypeCourse {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.CodeInvalidType, "unknown subscription type")
	}
	subID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.CodeInvalidParameters, "id must be a valid uuid")
	}

	keys := identity.BuildKeySet(children)
	subs, err := ctl.Subscriptions.GetForStudents(c.Context(), academyID, keys)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	var sub *subscriptionService.SubscriptionInfo
	for i := range subs {
		if subs[i].Type == subType && subs[i].ID == subID {
			sub = &subs[i]
			break
		}
	}
	if sub == nil {
		return helper.ErrorHandler(c, helper.ErrNotFound(helper.CodeSubscriptionNotFound, "Subscription not found"))
	}

	events, err := ctl.subscriptionSessions(c, academyID, *sub)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}

	now := time.Now()
	index := identity.IndexChildren(children)
	used := 0
	recent := make([]sessionDTO.SessionEventResponse, 0, 5)
	upcoming := make([]sessionDTO.SessionEventResponse, 0, 5)
	for i := len(events) - 1; i >= 0; i-- { // newest first for recent
		ev := events[i]
		if ev.Status == sessionModel.SessionCompleted {
			used++
			if len(recent) < 5 {
				recent = append(recent, sessionDTO.NewSessionEventResponse(ev, index.ByAnyKey(ev.StudentKey)))
			}
		}
	}
	for _, ev := range events {
		if !ev.Status.IsTerminal() && ev.ScheduledAt.After(now) && len(upcoming) < 5 {
			upcoming = append(upcoming, sessionDTO.NewSessionEventResponse(ev, index.ByAnyKey(ev.StudentKey)))
		}
	}

	resp := reportDTO.SubscriptionReportResponse{
		Subscription:     subscriptionDTO.NewSubscriptionResponse(*sub, index.ByAnyKey(sub.StudentKey)),
		GracePeriod:      reportService.NewGracePeriodStatus(sub.InGracePeriod, sub.GracePeriodEndsAt, now),
		SessionsUsed:     used,
		SessionsTotal:    sub.TotalSessions,
		RecentSessions:   recent,
		UpcomingSessions: upcoming,
	}
	if sub.TotalSessions != nil && *sub.TotalSessions > 0 {
		completion := reportService.CompletionPercentage(used, *sub.TotalSessions)
		resp.Completion = &completion
	}
	return helper.JsonOK(c, "Subscription report fetched successfully", fiber.Map{"report": resp})
}

// subscriptionSessions loads the sessions attached to one subscription,
// normalized to session events, ordered by scheduled time ascending.
func (ctl *ReportController) subscriptionSessions(c *fiber.Ctx, academyID uuid.UUID, sub subscriptionService.SubscriptionInfo) ([]adapter.SessionEvent, error) {
	now := time.Now()
	switch sub.Type {
	case constants.TypeQuran:
		var rows []sessionModel.QuranSessionModel
		err := ctl.DB.WithContext(c.Context()).
			Where("quran_session_academy_id = ?", academyID).
			Where("quran_session_subscription_id = ?", sub.ID).
			Order("quran_session_scheduled_at ASC").
			Find(&rows).Error
		if err != nil {
			return nil, err
		}
		events := make([]adapter.SessionEvent, 0, len(rows))
		for _, s := range rows {
			title := "Quran Session"
			if s.QuranSessionTitle != nil && *s.QuranSessionTitle != "" {
				title = *s.QuranSessionTitle
			}
			code := s.QuranSessionCode
			events = append(events, adapter.SessionEvent{
				ID:              s.QuranSessionID,
				Type:            constants.TypeQuran,
				StudentKey:      s.QuranSessionStudentID,
				Title:           title,
				Code:            &code,
				ScheduledAt:     s.QuranSessionScheduledAt,
				DurationMinutes: s.QuranSessionDurationMinutes,
				Status:          s.QuranSessionStatus,
				MeetingLink:     s.QuranSessionMeetingLink,
				CanJoin:         adapter.CanJoinAt(s.QuranSessionStatus, s.QuranSessionScheduledAt, now),
			})
		}
		return events, nil

	case constants.TypeAcademic:
		var rows []sessionModel.AcademicSessionModel
		err := ctl.DB.WithContext(c.Context()).
			Where("academic_session_academy_id = ?", academyID).
			Where("academic_session_subscription_id = ?", sub.ID).
			Order("academic_session_scheduled_at ASC").
			Find(&rows).Error
		if err != nil {
			return nil, err
		}
		events := make([]adapter.SessionEvent, 0, len(rows))
		for _, s := range rows {
			title := "Academic Session"
			switch {
			case s.AcademicSessionTitle != nil && *s.AcademicSessionTitle != "":
				title = *s.AcademicSessionTitle
			case s.AcademicSessionSubjectName != nil && *s.AcademicSessionSubjectName != "":
				title = *s.AcademicSessionSubjectName
			}
			code := s.AcademicSessionCode
			events = append(events, adapter.SessionEvent{
				ID:              s.AcademicSessionID,
				Type:            constants.TypeAcademic,
				StudentKey:      s.AcademicSessionStudentID,
				Title:           title,
				Code:            &code,
				ScheduledAt:     s.AcademicSessionScheduledAt,
				DurationMinutes: s.AcademicSessionDurationMinutes,
				Status:          s.AcademicSessionStatus,
				MeetingLink:     s.AcademicSessionMeetingLink,
				CanJoin:         adapter.CanJoinAt(s.AcademicSessionStatus, s.AcademicSessionScheduledAt, now),
				Subject:         s.AcademicSessionSubjectName,
			})
		}
		return events, nil

	default: // course
		if sub.CourseID == nil {
			return []adapter.SessionEvent{}, nil
		}
		var rows []sessionModel.InteractiveCourseSessionModel
		err := ctl.DB.WithContext(c.Context()).
			Where("interactive_course_session_course_id = ?", *sub.CourseID).
			Order("interactive_course_session_scheduled_at ASC").
			Find(&rows).Error
		if err != nil {
			return nil, err
		}
		events := make([]adapter.SessionEvent, 0, len(rows))
		for _, s := range rows {
			title := ""
			if sub.CourseName != nil {
				title = *sub.CourseName
			}
			if s.InteractiveCourseSessionTitle != nil && *s.InteractiveCourseSessionTitle != "" {
				title = *s.InteractiveCourseSessionTitle
			}
			number := s.InteractiveCourseSessionNumber
			events = append(events, adapter.SessionEvent{
				ID:              s.InteractiveCourseSessionID,
				Type:            constants.TypeInteractive,
				StudentKey:      sub.StudentKey,
				Title:           title,
				ScheduledAt:     s.InteractiveCourseSessionScheduledAt,
				DurationMinutes: s.InteractiveCourseSessionDurationMinutes,
				Status:          s.InteractiveCourseSessionStatus,
				MeetingLink:     s.InteractiveCourseSessionMeetingLink,
				CanJoin:         adapter.CanJoinAt(s.InteractiveCourseSessionStatus, s.InteractiveCourseSessionScheduledAt, now),
				CourseID:        sub.CourseID,
				CourseName:      sub.CourseName,
				SessionNumber:   &number,
			})
		}
		return events, nil
	}
}
