package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CertificateModel keys the student by STUDENT PROFILE id: certificates
// are issued to the student record, independent of any login account.
type CertificateModel struct {
	CertificateID               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:certificate_id" json:"certificate_id"`
	CertificateAcademyID        uuid.UUID `gorm:"type:uuid;not null;index;column:certificate_academy_id" json:"certificate_academy_id"`
	CertificateStudentProfileID uuid.UUID `gorm:"type:uuid;not null;index;column:certificate_student_profile_id" json:"certificate_student_profile_id"`

	CertificateNumber   string     `gorm:"not null;uniqueIndex;column:certificate_number" json:"certificate_number"`
	CertificateTitle    string     `gorm:"not null;column:certificate_title" json:"certificate_title"`
	CertificateCategory string     `gorm:"not null;column:certificate_category" json:"certificate_category"` // quran | academic | course
	CertificateCourseID *uuid.UUID `gorm:"type:uuid;column:certificate_course_id" json:"certificate_course_id,omitempty"`

	CertificateGrade    *string   `gorm:"column:certificate_grade" json:"certificate_grade,omitempty"`
	CertificateFileURL  *string   `gorm:"column:certificate_file_url" json:"certificate_file_url,omitempty"`
	CertificateIssuedAt time.Time `gorm:"not null;index;column:certificate_issued_at" json:"certificate_issued_at"`

	CertificateCreatedAt time.Time      `gorm:"column:certificate_created_at;autoCreateTime" json:"certificate_created_at"`
	CertificateDeletedAt gorm.DeletedAt `gorm:"column:certificate_deleted_at;index" json:"certificate_deleted_at,omitempty"`
}

func (CertificateModel) TableName() string { return "certificates" }
