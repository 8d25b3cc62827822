package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// AcademicSessionModel keys the student by USER id (dual-identity convention).
type AcademicSessionModel struct {
	AcademicSessionID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:academic_session_id" json:"academic_session_id"`
	AcademicSessionAcademyID uuid.UUID `gorm:"type:uuid;not null;index;column:academic_session_academy_id" json:"academic_session_academy_id"`
	AcademicSessionStudentID uuid.UUID `gorm:"type:uuid;not null;index;column:academic_session_student_id" json:"academic_session_student_id"`

	AcademicSessionTeacherID      *uuid.UUID `gorm:"type:uuid;column:academic_session_teacher_id" json:"academic_session_teacher_id,omitempty"`
	AcademicSessionSubscriptionID *uuid.UUID `gorm:"type:uuid;index;column:academic_session_subscription_id" json:"academic_session_subscription_id,omitempty"`

	AcademicSessionCode            string        `gorm:"not null;column:academic_session_code" json:"academic_session_code"`
	AcademicSessionTitle           *string       `gorm:"column:academic_session_title" json:"academic_session_title,omitempty"`
	AcademicSessionSubjectName     *string       `gorm:"column:academic_session_subject_name" json:"academic_session_subject_name,omitempty"`
	AcademicSessionScheduledAt     time.Time     `gorm:"not null;index;column:academic_session_scheduled_at" json:"academic_session_scheduled_at"`
	AcademicSessionDurationMinutes int           `gorm:"not null;default:45;column:academic_session_duration_minutes" json:"academic_session_duration_minutes"`
	AcademicSessionStatus          SessionStatus `gorm:"not null;default:scheduled;index;column:academic_session_status" json:"academic_session_status"`
	AcademicSessionMeetingLink     *string       `gorm:"column:academic_session_meeting_link" json:"academic_session_meeting_link,omitempty"`

	AcademicSessionHomework      *string        `gorm:"column:academic_session_homework" json:"academic_session_homework,omitempty"`
	AcademicSessionHomeworkDueAt *time.Time     `gorm:"column:academic_session_homework_due_at" json:"academic_session_homework_due_at,omitempty"`
	AcademicSessionLessonContent *string        `gorm:"column:academic_session_lesson_content" json:"academic_session_lesson_content,omitempty"`
	AcademicSessionTopicsCovered pq.StringArray `gorm:"type:text[];column:academic_session_topics_covered" json:"academic_session_topics_covered,omitempty"`

	AcademicSessionStartedAt *time.Time `gorm:"column:academic_session_started_at" json:"academic_session_started_at,omitempty"`
	AcademicSessionEndedAt   *time.Time `gorm:"column:academic_session_ended_at" json:"academic_session_ended_at,omitempty"`

	AcademicSessionCreatedAt time.Time      `gorm:"column:academic_session_created_at;autoCreateTime" json:"academic_session_created_at"`
	AcademicSessionUpdatedAt *time.Time     `gorm:"column:academic_session_updated_at;autoUpdateTime" json:"academic_session_updated_at,omitempty"`
	AcademicSessionDeletedAt gorm.DeletedAt `gorm:"column:academic_session_deleted_at;index" json:"academic_session_deleted_at,omitempty"`
}

func (AcademicSessionModel) TableName() string { return "academic_sessions" }
