package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuranCircleModel struct {
	QuranCircleID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:quran_circle_id" json:"quran_circle_id"`
	QuranCircleAcademyID uuid.UUID `gorm:"type:uuid;not null;index;column:quran_circle_academy_id" json:"quran_circle_academy_id"`

	QuranCircleName      string     `gorm:"not null;column:quran_circle_name" json:"quran_circle_name"`
	QuranCircleType      string     `gorm:"not null;default:individual;column:quran_circle_type" json:"quran_circle_type"` // group | individual
	QuranCircleTeacherID *uuid.UUID `gorm:"type:uuid;column:quran_circle_teacher_id" json:"quran_circle_teacher_id,omitempty"`

	QuranCircleCreatedAt time.Time      `gorm:"column:quran_circle_created_at;autoCreateTime" json:"quran_circle_created_at"`
	QuranCircleDeletedAt gorm.DeletedAt `gorm:"column:quran_circle_deleted_at;index" json:"quran_circle_deleted_at,omitempty"`
}

func (QuranCircleModel) TableName() string { return "quran_circles" }

// QuranSessionModel keys the student by USER id (dual-identity convention).
type QuranSessionModel struct {
	QuranSessionID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:quran_session_id" json:"quran_session_id"`
	QuranSessionAcademyID uuid.UUID `gorm:"type:uuid;not null;index;column:quran_session_academy_id" json:"quran_session_academy_id"`
	QuranSessionStudentID uuid.UUID `gorm:"type:uuid;not null;index;column:quran_session_student_id" json:"quran_session_student_id"`

	QuranSessionTeacherID      *uuid.UUID `gorm:"type:uuid;column:quran_session_teacher_id" json:"quran_session_teacher_id,omitempty"`
	QuranSessionCircleID       *uuid.UUID `gorm:"type:uuid;column:quran_session_circle_id" json:"quran_session_circle_id,omitempty"`
	QuranSessionSubscriptionID *uuid.UUID `gorm:"type:uuid;index;column:quran_session_subscription_id" json:"quran_session_subscription_id,omitempty"`

	QuranSessionCode            string        `gorm:"not null;column:quran_session_code" json:"quran_session_code"`
	QuranSessionTitle           *string       `gorm:"column:quran_session_title" json:"quran_session_title,omitempty"`
	QuranSessionScheduledAt     time.Time     `gorm:"not null;index;column:quran_session_scheduled_at" json:"quran_session_scheduled_at"`
	QuranSessionDurationMinutes int           `gorm:"not null;default:30;column:quran_session_duration_minutes" json:"quran_session_duration_minutes"`
	QuranSessionStatus          SessionStatus `gorm:"not null;default:scheduled;index;column:quran_session_status" json:"quran_session_status"`
	QuranSessionMeetingLink     *string       `gorm:"column:quran_session_meeting_link" json:"quran_session_meeting_link,omitempty"`

	// Homework assigned during the session.
	QuranSessionHomeworkMemorization *string `gorm:"column:quran_session_homework_memorization" json:"quran_session_homework_memorization,omitempty"`
	QuranSessionHomeworkRecitation   *string `gorm:"column:quran_session_homework_recitation" json:"quran_session_homework_recitation,omitempty"`
	QuranSessionHomeworkReview       *string `gorm:"column:quran_session_homework_review" json:"quran_session_homework_review,omitempty"`

	QuranSessionStartedAt *time.Time `gorm:"column:quran_session_started_at" json:"quran_session_started_at,omitempty"`
	QuranSessionEndedAt   *time.Time `gorm:"column:quran_session_ended_at" json:"quran_session_ended_at,omitempty"`

	QuranSessionCreatedAt time.Time      `gorm:"column:quran_session_created_at;autoCreateTime" json:"quran_session_created_at"`
	QuranSessionUpdatedAt *time.Time     `gorm:"column:quran_session_updated_at;autoUpdateTime" json:"quran_session_updated_at,omitempty"`
	QuranSessionDeletedAt gorm.DeletedAt `gorm:"column:quran_session_deleted_at;index" json:"quran_session_deleted_at,omitempty"`
}

func (QuranSessionModel) TableName() string { return "quran_sessions" }
