package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ParentProfileModel struct {
	ParentProfileID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:parent_profile_id" json:"parent_profile_id"`
	ParentProfileAcademyID uuid.UUID `gorm:"type:uuid;not null;index;column:parent_profile_academy_id" json:"parent_profile_academy_id"`
	ParentProfileUserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_parent_profiles_user;column:parent_profile_user_id" json:"parent_profile_user_id"`

	ParentProfilePhone *string `gorm:"column:parent_profile_phone" json:"parent_profile_phone,omitempty"`

	ParentProfileCreatedAt time.Time      `gorm:"column:parent_profile_created_at;autoCreateTime" json:"parent_profile_created_at"`
	ParentProfileUpdatedAt *time.Time     `gorm:"column:parent_profile_updated_at;autoUpdateTime" json:"parent_profile_updated_at,omitempty"`
	ParentProfileDeletedAt gorm.DeletedAt `gorm:"column:parent_profile_deleted_at;index" json:"parent_profile_deleted_at,omitempty"`
}

func (ParentProfileModel) TableName() string { return "parent_profiles" }
