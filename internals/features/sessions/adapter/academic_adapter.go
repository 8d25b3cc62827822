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

type AcademicAdapter struct {
	DB *gorm.DB
}

func (AcademicAdapter) Type() string { return constants.TypeAcademic }

type academicRow struct {
	ID              uuid.UUID           `gorm:"column:academic_session_id"`
	StudentID       uuid.UUID           `gorm:"column:academic_session_student_id"`
	Code            string              `gorm:"column:academic_session_code"`
	Title           *string             `gorm:"column:academic_session_title"`
	SubjectName     *string             `gorm:"column:academic_session_subject_name"`
	ScheduledAt     time.Time           `gorm:"column:academic_session_scheduled_at"`
	DurationMinutes int                 `gorm:"column:academic_session_duration_minutes"`
	Status          model.SessionStatus `gorm:"column:academic_session_status"`
	MeetingLink     *string             `gorm:"column:academic_session_meeting_link"`
	TeacherID       *uuid.UUID          `gorm:"column:academic_session_teacher_id"`
	TeacherName     *string             `gorm:"column:teacher_profile_full_name"`
	TeacherAvatar   *string             `gorm:"column:teacher_profile_avatar"`
}

// FetchByKeys reads by USER keys, same convention as the quran source.
func (a AcademicAdapter) FetchByKeys(ctx context.Context, academyID uuid.UUID, keys service.KeySet, opts FetchOptions) ([]SessionEvent, error) {
	if len(keys.User) == 0 {
		return []SessionEvent{}, nil
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	q := a.DB.WithContext(ctx).
		Table("academic_sessions AS as2").
		Select(`as2.academic_session_id, as2.academic_session_student_id, as2.academic_session_code,
			as2.academic_session_title, as2.academic_session_subject_name, as2.academic_session_scheduled_at,
			as2.academic_session_duration_minutes, as2.academic_session_status, as2.academic_session_meeting_link,
			as2.academic_session_teacher_id, tp.teacher_profile_full_name, tp.teacher_profile_avatar`).
		Joins("LEFT JOIN teacher_profiles AS tp ON tp.teacher_profile_id = as2.academic_session_teacher_id AND tp.teacher_profile_deleted_at IS NULL").
		Where("as2.academic_session_deleted_at IS NULL").
		Where("as2.academic_session_academy_id = ?", academyID).
		Where("as2.academic_session_student_id IN ?", []uuid.UUID(keys.User))

	if opts.Range != nil {
		if !opts.Range.From.IsZero() {
			q = q.Where("as2.academic_session_scheduled_at >= ?", opts.Range.From)
		}
		if !opts.Range.To.IsZero() {
			q = q.Where("as2.academic_session_scheduled_at <= ?", opts.Range.To)
		}
	}
	if len(opts.Statuses) > 0 {
		q = q.Where("as2.academic_session_status IN ?", statusStrings(opts.Statuses))
	}
	if len(opts.ExcludeStatuses) > 0 {
		q = q.Where("as2.academic_session_status NOT IN ?", statusStrings(opts.ExcludeStatuses))
	}
	if opts.Descending {
		q = q.Order("as2.academic_session_scheduled_at DESC")
	} else {
		q = q.Order("as2.academic_session_scheduled_at ASC")
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	var rows []academicRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}

	events := make([]SessionEvent, 0, len(rows))
	for _, r := range rows {
		title := "Academic Session"
		switch {
		case r.Title != nil && *r.Title != "":
			title = *r.Title
		case r.SubjectName != nil && *r.SubjectName != "":
			title = *r.SubjectName
		}
		code := r.Code
		events = append(events, SessionEvent{
			ID:              r.ID,
			Type:            constants.TypeAcademic,
			StudentKey:      r.StudentID,
			Title:           title,
			Code:            &code,
			ScheduledAt:     r.ScheduledAt,
			DurationMinutes: r.DurationMinutes,
			Status:          r.Status,
			MeetingLink:     r.MeetingLink,
			CanJoin:         CanJoinAt(r.Status, r.ScheduledAt, opts.Now),
			TeacherID:       r.TeacherID,
			TeacherName:     r.TeacherName,
			TeacherAvatar:   r.TeacherAvatar,
			Subject:         r.SubjectName,
		})
	}
	return events, nil
}
