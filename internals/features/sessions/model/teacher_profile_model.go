package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeacherProfileModel backs all three subsystems; the display name is
// denormalized here so session listings need a single join.
type TeacherProfileModel struct {
	TeacherProfileID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teacher_profile_id" json:"teacher_profile_id"`
	TeacherProfileAcademyID uuid.UUID  `gorm:"type:uuid;not null;index;column:teacher_profile_academy_id" json:"teacher_profile_academy_id"`
	TeacherProfileUserID    *uuid.UUID `gorm:"type:uuid;index;column:teacher_profile_user_id" json:"teacher_profile_user_id,omitempty"`

	TeacherProfileFullName  string  `gorm:"not null;column:teacher_profile_full_name" json:"teacher_profile_full_name"`
	TeacherProfileAvatar    *string `gorm:"column:teacher_profile_avatar" json:"teacher_profile_avatar,omitempty"`
	TeacherProfileSpecialty *string `gorm:"column:teacher_profile_specialty" json:"teacher_profile_specialty,omitempty"`

	TeacherProfileCreatedAt time.Time      `gorm:"column:teacher_profile_created_at;autoCreateTime" json:"teacher_profile_created_at"`
	TeacherProfileUpdatedAt *time.Time     `gorm:"column:teacher_profile_updated_at;autoUpdateTime" json:"teacher_profile_updated_at,omitempty"`
	TeacherProfileDeletedAt gorm.DeletedAt `gorm:"column:teacher_profile_deleted_at;index" json:"teacher_profile_deleted_at,omitempty"`
}

func (TeacherProfileModel) TableName() string { return "teacher_profiles" }
