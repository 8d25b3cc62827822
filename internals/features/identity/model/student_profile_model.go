package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentProfileModel is one half of the dual-identity scheme: course
// enrollment and subscription tables key students by student_profile_id,
// while the Quran/Academic subsystems key them by user_id. A profile may
// exist without a login account, so StudentProfileUserID is nullable.
type StudentProfileModel struct {
	StudentProfileID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_profile_id" json:"student_profile_id"`
	StudentProfileAcademyID uuid.UUID  `gorm:"type:uuid;not null;index;column:student_profile_academy_id" json:"student_profile_academy_id"`
	StudentProfileUserID    *uuid.UUID `gorm:"type:uuid;index;column:student_profile_user_id" json:"student_profile_user_id,omitempty"`

	StudentProfileFullName    string  `gorm:"not null;column:student_profile_full_name" json:"student_profile_full_name"`
	StudentProfileStudentCode string  `gorm:"not null;uniqueIndex:uq_student_profiles_code_academy;column:student_profile_student_code" json:"student_profile_student_code"`
	StudentProfileAvatar      *string `gorm:"column:student_profile_avatar" json:"student_profile_avatar,omitempty"`
	StudentProfileGradeLevel  *string `gorm:"column:student_profile_grade_level" json:"student_profile_grade_level,omitempty"`

	StudentProfileCreatedAt time.Time      `gorm:"column:student_profile_created_at;autoCreateTime" json:"student_profile_created_at"`
	StudentProfileUpdatedAt *time.Time     `gorm:"column:student_profile_updated_at;autoUpdateTime" json:"student_profile_updated_at,omitempty"`
	StudentProfileDeletedAt gorm.DeletedAt `gorm:"column:student_profile_deleted_at;index" json:"student_profile_deleted_at,omitempty"`
}

func (StudentProfileModel) TableName() string { return "student_profiles" }
