package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AcademicSubscriptionModel keys the student by USER id.
type AcademicSubscriptionModel struct {
	AcademicSubscriptionID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:academic_subscription_id" json:"academic_subscription_id"`
	AcademicSubscriptionAcademyID uuid.UUID `gorm:"type:uuid;not null;index;column:academic_subscription_academy_id" json:"academic_subscription_academy_id"`
	AcademicSubscriptionStudentID uuid.UUID `gorm:"type:uuid;not null;index;column:academic_subscription_student_id" json:"academic_subscription_student_id"`

	AcademicSubscriptionPackageName     *string `gorm:"column:academic_subscription_package_name" json:"academic_subscription_package_name,omitempty"`
	AcademicSubscriptionSubjectName     *string `gorm:"column:academic_subscription_subject_name" json:"academic_subscription_subject_name,omitempty"`
	AcademicSubscriptionSessionsPerWeek int     `gorm:"not null;default:2;column:academic_subscription_sessions_per_week" json:"academic_subscription_sessions_per_week"`

	AcademicSubscriptionStatus    string     `gorm:"not null;default:pending;index;column:academic_subscription_status" json:"academic_subscription_status"`
	AcademicSubscriptionStartDate *time.Time `gorm:"column:academic_subscription_start_date" json:"academic_subscription_start_date,omitempty"`
	AcademicSubscriptionEndDate   *time.Time `gorm:"index;column:academic_subscription_end_date" json:"academic_subscription_end_date,omitempty"`

	AcademicSubscriptionPrice    float64        `gorm:"not null;default:0;column:academic_subscription_price" json:"academic_subscription_price"`
	AcademicSubscriptionCurrency string         `gorm:"not null;default:IDR;column:academic_subscription_currency" json:"academic_subscription_currency"`
	AcademicSubscriptionMetadata datatypes.JSON `gorm:"column:academic_subscription_metadata" json:"academic_subscription_metadata,omitempty"`

	AcademicSubscriptionCreatedAt time.Time      `gorm:"column:academic_subscription_created_at;autoCreateTime" json:"academic_subscription_created_at"`
	AcademicSubscriptionUpdatedAt *time.Time     `gorm:"column:academic_subscription_updated_at;autoUpdateTime" json:"academic_subscription_updated_at,omitempty"`
	AcademicSubscriptionDeletedAt gorm.DeletedAt `gorm:"column:academic_subscription_deleted_at;index" json:"academic_subscription_deleted_at,omitempty"`
}

func (AcademicSubscriptionModel) TableName() string { return "academic_subscriptions" }

func (m AcademicSubscriptionModel) GracePeriodEndsAt() *time.Time {
	return graceEndsAt(m.AcademicSubscriptionMetadata, m.AcademicSubscriptionEndDate)
}

func (m AcademicSubscriptionModel) IsInGracePeriod(now time.Time) bool {
	return inGracePeriod(m.AcademicSubscriptionStatus, m.AcademicSubscriptionEndDate, m.GracePeriodEndsAt(), now)
}

func (m AcademicSubscriptionModel) NeedsRenewal(now time.Time) bool {
	return needsRenewal(m.AcademicSubscriptionStatus, m.AcademicSubscriptionEndDate, m.GracePeriodEndsAt(), now)
}
