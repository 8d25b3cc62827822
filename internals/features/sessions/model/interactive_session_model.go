package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type InteractiveCourseModel struct {
	InteractiveCourseID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:interactive_course_id" json:"interactive_course_id"`
	InteractiveCourseAcademyID uuid.UUID `gorm:"type:uuid;not null;index;column:interactive_course_academy_id" json:"interactive_course_academy_id"`

	InteractiveCourseTitle         string     `gorm:"not null;column:interactive_course_title" json:"interactive_course_title"`
	InteractiveCourseThumbnail     *string    `gorm:"column:interactive_course_thumbnail" json:"interactive_course_thumbnail,omitempty"`
	InteractiveCourseTeacherID     *uuid.UUID `gorm:"type:uuid;column:interactive_course_teacher_id" json:"interactive_course_teacher_id,omitempty"`
	InteractiveCourseTotalSessions int        `gorm:"not null;default:0;column:interactive_course_total_sessions" json:"interactive_course_total_sessions"`

	InteractiveCourseCreatedAt time.Time      `gorm:"column:interactive_course_created_at;autoCreateTime" json:"interactive_course_created_at"`
	InteractiveCourseDeletedAt gorm.DeletedAt `gorm:"column:interactive_course_deleted_at;index" json:"interactive_course_deleted_at,omitempty"`
}

func (InteractiveCourseModel) TableName() string { return "interactive_courses" }

// InteractiveCourseSessionModel carries no academy column: tenant scope and
// student attribution both go through the course and its enrollments. That
// join is owned by the interactive adapter and must not leak elsewhere.
type InteractiveCourseSessionModel struct {
	InteractiveCourseSessionID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:interactive_course_session_id" json:"interactive_course_session_id"`
	InteractiveCourseSessionCourseID uuid.UUID `gorm:"type:uuid;not null;index;column:interactive_course_session_course_id" json:"interactive_course_session_course_id"`

	InteractiveCourseSessionNumber          int           `gorm:"not null;column:interactive_course_session_number" json:"interactive_course_session_number"`
	InteractiveCourseSessionTitle           *string       `gorm:"column:interactive_course_session_title" json:"interactive_course_session_title,omitempty"`
	InteractiveCourseSessionScheduledAt     time.Time     `gorm:"not null;index;column:interactive_course_session_scheduled_at" json:"interactive_course_session_scheduled_at"`
	InteractiveCourseSessionDurationMinutes int           `gorm:"not null;default:60;column:interactive_course_session_duration_minutes" json:"interactive_course_session_duration_minutes"`
	InteractiveCourseSessionStatus          SessionStatus `gorm:"not null;default:scheduled;index;column:interactive_course_session_status" json:"interactive_course_session_status"`
	InteractiveCourseSessionMeetingLink     *string       `gorm:"column:interactive_course_session_meeting_link" json:"interactive_course_session_meeting_link,omitempty"`

	InteractiveCourseSessionDescription *string        `gorm:"column:interactive_course_session_description" json:"interactive_course_session_description,omitempty"`
	InteractiveCourseSessionMaterials   pq.StringArray `gorm:"type:text[];column:interactive_course_session_materials" json:"interactive_course_session_materials,omitempty"`

	InteractiveCourseSessionCreatedAt time.Time      `gorm:"column:interactive_course_session_created_at;autoCreateTime" json:"interactive_course_session_created_at"`
	InteractiveCourseSessionDeletedAt gorm.DeletedAt `gorm:"column:interactive_course_session_deleted_at;index" json:"interactive_course_session_deleted_at,omitempty"`
}

func (InteractiveCourseSessionModel) TableName() string { return "interactive_course_sessions" }
