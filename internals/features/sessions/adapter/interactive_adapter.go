package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"akademiku_backend/internals/constants"
	"akademiku_backend/internals/features/identity/service"
	"akademiku_backend/internals/features/sessions/model"
)

// InteractiveAdapter is the only place that knows course sessions have no
// student or academy column of their own. It reads by PROFILE keys: the
// enrollment table keys students by student_profile_id, not user_id.
type InteractiveAdapter struct {
	DB *gorm.DB
}

func (InteractiveAdapter) Type() string { return constants.TypeInteractive }

type enrollmentRow struct {
	CourseID         uuid.UUID `gorm:"column:course_subscription_course_id"`
	StudentProfileID uuid.UUID `gorm:"column:course_subscription_student_profile_id"`
}

type interactiveRow struct {
	ID              uuid.UUID           `gorm:"column:interactive_course_session_id"`
	CourseID        uuid.UUID           `gorm:"column:interactive_course_session_course_id"`
	SessionNumber   int                 `gorm:"column:interactive_course_session_number"`
	Title           *string             `gorm:"column:interactive_course_session_title"`
	ScheduledAt     time.Time           `gorm:"column:interactive_course_session_scheduled_at"`
	DurationMinutes int                 `gorm:"column:interactive_course_session_duration_minutes"`
	Status          model.SessionStatus `gorm:"column:interactive_course_session_status"`
	MeetingLink     *string             `gorm:"column:interactive_course_session_meeting_link"`
	CourseTitle     string              `gorm:"column:interactive_course_title"`
	TeacherID       *uuid.UUID          `gorm:"column:interactive_course_teacher_id"`
	TeacherName     *string             `gorm:"column:teacher_profile_full_name"`
	TeacherAvatar   *string             `gorm:"column:teacher_profile_avatar"`
}

func (a InteractiveAdapter) FetchByKeys(ctx context.Context, academyID uuid.UUID, keys service.KeySet, opts FetchOptions) ([]SessionEvent, error) {
	if len(keys.Profile) == 0 {
		return []SessionEvent{}, nil
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	// Enrollment pass: which courses, and which child each course belongs
	// to. When siblings share a course the earliest enrollment wins.
	var enrollments []enrollmentRow
	err := a.DB.WithContext(ctx).
		Table("course_subscriptions").
		Select("course_subscription_course_id, course_subscription_student_profile_id").
		Where("course_subscription_deleted_at IS NULL").
		Where("course_subscription_academy_id = ?", academyID).
		Where("course_subscription_student_profile_id IN ?", []uuid.UUID(keys.Profile)).
		Where("course_subscription_status = ?", "active").
		Order("course_subscription_created_at ASC").
		Scan(&enrollments).Error
	if err != nil {
		return nil, err
	}
	if len(enrollments) == 0 {
		return []SessionEvent{}, nil
	}

	courseStudent := make(map[uuid.UUID]uuid.UUID, len(enrollments))
	courseIDs := make([]uuid.UUID, 0, len(enrollments))
	for _, e := range enrollments {
		if _, ok := courseStudent[e.CourseID]; ok {
			continue
		}
		courseStudent[e.CourseID] = e.StudentProfileID
		courseIDs = append(courseIDs, e.CourseID)
	}

	q := a.DB.WithContext(ctx).
		Table("interactive_course_sessions AS ics").
		Select(`ics.interactive_course_session_id, ics.interactive_course_session_course_id,
			ics.interactive_course_session_number, ics.interactive_course_session_title,
			ics.interactive_course_session_scheduled_at, ics.interactive_course_session_duration_minutes,
			ics.interactive_course_session_status, ics.interactive_course_session_meeting_link,
			ic.interactive_course_title, ic.interactive_course_teacher_id,
			tp.teacher_profile_full_name, tp.teacher_profile_avatar`).
		Joins("JOIN interactive_courses AS ic ON ic.interactive_course_id = ics.interactive_course_session_course_id AND ic.interactive_course_deleted_at IS NULL").
		Joins("LEFT JOIN teacher_profiles AS tp ON tp.teacher_profile_id = ic.interactive_course_teacher_id AND tp.teacher_profile_deleted_at IS NULL").
		Where("ics.interactive_course_session_deleted_at IS NULL").
		Where("ic.interactive_course_academy_id = ?", academyID).
		Where("ics.interactive_course_session_course_id IN ?", courseIDs)

	if opts.Range != nil {
		if !opts.Range.From.IsZero() {
			q = q.Where("ics.interactive_course_session_scheduled_at >= ?", opts.Range.From)
		}
		if !opts.Range.To.IsZero() {
			q = q.Where("ics.interactive_course_session_scheduled_at <= ?", opts.Range.To)
		}
	}
	if len(opts.Statuses) > 0 {
		q = q.Where("ics.interactive_course_session_status IN ?", statusStrings(opts.Statuses))
	}
	if len(opts.ExcludeStatuses) > 0 {
		q = q.Where("ics.interactive_course_session_status NOT IN ?", statusStrings(opts.ExcludeStatuses))
	}
	if opts.Descending {
		q = q.Order("ics.interactive_course_session_scheduled_at DESC")
	} else {
		q = q.Order("ics.interactive_course_session_scheduled_at ASC")
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	var rows []interactiveRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}

	events := make([]SessionEvent, 0, len(rows))
	for _, r := range rows {
		studentKey, ok := courseStudent[r.CourseID]
		if !ok {
			continue
		}
		title := r.CourseTitle
		if r.Title != nil && *r.Title != "" {
			title = *r.Title
		}
		courseID := r.CourseID
		courseName := r.CourseTitle
		sessionNumber := r.SessionNumber
		events = append(events, SessionEvent{
			ID:              r.ID,
			Type:            constants.TypeInteractive,
			StudentKey:      studentKey,
			Title:           title,
			ScheduledAt:     r.ScheduledAt,
			DurationMinutes: r.DurationMinutes,
			Status:          r.Status,
			MeetingLink:     r.MeetingLink,
			CanJoin:         CanJoinAt(r.Status, r.ScheduledAt, opts.Now),
			TeacherID:       r.TeacherID,
			TeacherName:     r.TeacherName,
			TeacherAvatar:   r.TeacherAvatar,
			CourseID:        &courseID,
			CourseName:      &courseName,
			SessionNumber:   &sessionNumber,
		})
	}
	return events, nil
}
