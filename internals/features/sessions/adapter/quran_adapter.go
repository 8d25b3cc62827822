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

type QuranAdapter struct {
	DB *gorm.DB
}

func (QuranAdapter) Type() string { return constants.TypeQuran }

type quranRow struct {
	ID              uuid.UUID           `gorm:"column:quran_session_id"`
	StudentID       uuid.UUID           `gorm:"column:quran_session_student_id"`
	Code            string              `gorm:"column:quran_session_code"`
	Title           *string             `gorm:"column:quran_session_title"`
	ScheduledAt     time.Time           `gorm:"column:quran_session_scheduled_at"`
	DurationMinutes int                 `gorm:"column:quran_session_duration_minutes"`
	Status          model.SessionStatus `gorm:"column:quran_session_status"`
	MeetingLink     *string             `gorm:"column:quran_session_meeting_link"`
	TeacherID       *uuid.UUID          `gorm:"column:quran_session_teacher_id"`
	TeacherName     *string             `gorm:"column:teacher_profile_full_name"`
	TeacherAvatar   *string             `gorm:"column:teacher_profile_avatar"`
	CircleName      *string             `gorm:"column:quran_circle_name"`
	CircleType      *string             `gorm:"column:quran_circle_type"`
}

// FetchByKeys reads by USER keys. One query for any number of students.
func (a QuranAdapter) FetchByKeys(ctx context.Context, academyID uuid.UUID, keys service.KeySet, opts FetchOptions) ([]SessionEvent, error) {
	if len(keys.User) == 0 {
		return []SessionEvent{}, nil
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	q := a.DB.WithContext(ctx).
		Table("quran_sessions AS qs").
		Select(`qs.quran_session_id, qs.quran_session_student_id, qs.quran_session_code,
			qs.quran_session_title, qs.quran_session_scheduled_at, qs.quran_session_duration_minutes,
			qs.quran_session_status, qs.quran_session_meeting_link, qs.quran_session_teacher_id,
			tp.teacher_profile_full_name, tp.teacher_profile_avatar,
			qc.quran_circle_name, qc.quran_circle_type`).
		Joins("LEFT JOIN teacher_profiles AS tp ON tp.teacher_profile_id = qs.quran_session_teacher_id AND tp.teacher_profile_deleted_at IS NULL").
		Joins("LEFT JOIN quran_circles AS qc ON qc.quran_circle_id = qs.quran_session_circle_id AND qc.quran_circle_deleted_at IS NULL").
		Where("qs.quran_session_deleted_at IS NULL").
		Where("qs.quran_session_academy_id = ?", academyID).
		Where("qs.quran_session_student_id IN ?", []uuid.UUID(keys.User))

	if opts.Range != nil {
		if !opts.Range.From.IsZero() {
			q = q.Where("qs.quran_session_scheduled_at >= ?", opts.Range.From)
		}
		if !opts.Range.To.IsZero() {
			q = q.Where("qs.quran_session_scheduled_at <= ?", opts.Range.To)
		}
	}
	if len(opts.Statuses) > 0 {
		q = q.Where("qs.quran_session_status IN ?", statusStrings(opts.Statuses))
	}
	if len(opts.ExcludeStatuses) > 0 {
		q = q.Where("qs.quran_session_status NOT IN ?", statusStrings(opts.ExcludeStatuses))
	}
	if opts.Descending {
		q = q.Order("qs.quran_session_scheduled_at DESC")
	} else {
		q = q.Order("qs.quran_session_scheduled_at ASC")
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	var rows []quranRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}

	events := make([]SessionEvent, 0, len(rows))
	for _, r := range rows {
		title := "Quran Session"
		if r.Title != nil && *r.Title != "" {
			title = *r.Title
		}
		code := r.Code
		events = append(events, SessionEvent{
			ID:              r.ID,
			Type:            constants.TypeQuran,
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
			CircleName:      r.CircleName,
			CircleType:      r.CircleType,
		})
	}
	return events, nil
}
