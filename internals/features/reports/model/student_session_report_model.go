package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceStatus recorded by a teacher after a session.
type AttendanceStatus string

const (
	AttendanceAttended AttendanceStatus = "attended"
	AttendanceLate     AttendanceStatus = "late"
	AttendanceAbsent   AttendanceStatus = "absent"
	AttendanceExcused  AttendanceStatus = "excused"
)

// CountsAsAttended: late arrivals still attended the session.
func (s AttendanceStatus) CountsAsAttended() bool {
	return s == AttendanceAttended || s == AttendanceLate
}

// StudentSessionReportModel is one teacher evaluation of one session, for
// any session type. The student is keyed by USER id, matching the
// quran/academic session tables it joins against.
type StudentSessionReportModel struct {
	StudentSessionReportID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_session_report_id" json:"student_session_report_id"`
	StudentSessionReportAcademyID uuid.UUID `gorm:"type:uuid;not null;index;column:student_session_report_academy_id" json:"student_session_report_academy_id"`
	StudentSessionReportStudentID uuid.UUID `gorm:"type:uuid;not null;index;column:student_session_report_student_id" json:"student_session_report_student_id"`

	StudentSessionReportSessionType string    `gorm:"not null;index;column:student_session_report_session_type" json:"student_session_report_session_type"`
	StudentSessionReportSessionID   uuid.UUID `gorm:"type:uuid;not null;index;column:student_session_report_session_id" json:"student_session_report_session_id"`
	StudentSessionReportSessionAt   time.Time `gorm:"not null;index;column:student_session_report_session_at" json:"student_session_report_session_at"`

	StudentSessionReportAttendanceStatus AttendanceStatus `gorm:"not null;column:student_session_report_attendance_status" json:"student_session_report_attendance_status"`
	StudentSessionReportRating           *float64         `gorm:"column:student_session_report_rating" json:"student_session_report_rating,omitempty"`
	StudentSessionReportNotes            *string          `gorm:"column:student_session_report_notes" json:"student_session_report_notes,omitempty"`

	StudentSessionReportCreatedAt time.Time      `gorm:"column:student_session_report_created_at;autoCreateTime" json:"student_session_report_created_at"`
	StudentSessionReportUpdatedAt *time.Time     `gorm:"column:student_session_report_updated_at;autoUpdateTime" json:"student_session_report_updated_at,omitempty"`
	StudentSessionReportDeletedAt gorm.DeletedAt `gorm:"column:student_session_report_deleted_at;index" json:"student_session_report_deleted_at,omitempty"`
}

func (StudentSessionReportModel) TableName() string { return "student_session_reports" }
