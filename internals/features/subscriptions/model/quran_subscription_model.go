package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuranSubscriptionModel keys the student by USER id.
type QuranSubscriptionModel struct {
	QuranSubscriptionID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:quran_subscription_id" json:"quran_subscription_id"`
	QuranSubscriptionAcademyID uuid.UUID `gorm:"type:uuid;not null;index;column:quran_subscription_academy_id" json:"quran_subscription_academy_id"`
	QuranSubscriptionStudentID uuid.UUID `gorm:"type:uuid;not null;index;column:quran_subscription_student_id" json:"quran_subscription_student_id"`

	QuranSubscriptionPackageName     string     `gorm:"not null;column:quran_subscription_package_name" json:"quran_subscription_package_name"`
	QuranSubscriptionCircleID        *uuid.UUID `gorm:"type:uuid;column:quran_subscription_circle_id" json:"quran_subscription_circle_id,omitempty"`
	QuranSubscriptionSessionsPerWeek int        `gorm:"not null;default:2;column:quran_subscription_sessions_per_week" json:"quran_subscription_sessions_per_week"`

	QuranSubscriptionStatus    string     `gorm:"not null;default:pending;index;column:quran_subscription_status" json:"quran_subscription_status"`
	QuranSubscriptionStartDate *time.Time `gorm:"column:quran_subscription_start_date" json:"quran_subscription_start_date,omitempty"`
	QuranSubscriptionEndDate   *time.Time `gorm:"index;column:quran_subscription_end_date" json:"quran_subscription_end_date,omitempty"`

	QuranSubscriptionPrice    float64        `gorm:"not null;default:0;column:quran_subscription_price" json:"quran_subscription_price"`
	QuranSubscriptionCurrency string         `gorm:"not null;default:IDR;column:quran_subscription_currency" json:"quran_subscription_currency"`
	QuranSubscriptionMetadata datatypes.JSON `gorm:"column:quran_subscription_metadata" json:"quran_subscription_metadata,omitempty"`

	QuranSubscriptionCreatedAt time.Time      `gorm:"column:quran_subscription_created_at;autoCreateTime" json:"quran_subscription_created_at"`
	QuranSubscriptionUpdatedAt *time.Time     `gorm:"column:quran_subscription_updated_at;autoUpdateTime" json:"quran_subscription_updated_at,omitempty"`
	QuranSubscriptionDeletedAt gorm.DeletedAt `gorm:"column:quran_subscription_deleted_at;index" json:"quran_subscription_deleted_at,omitempty"`
}

func (QuranSubscriptionModel) TableName() string { return "quran_subscriptions" }

func (m QuranSubscriptionModel) GracePeriodEndsAt() *time.Time {
	return graceEndsAt(m.QuranSubscriptionMetadata, m.QuranSubscriptionEndDate)
}

func (m QuranSubscriptionModel) IsInGracePeriod(now time.Time) bool {
	return inGracePeriod(m.QuranSubscriptionStatus, m.QuranSubscriptionEndDate, m.GracePeriodEndsAt(), now)
}

func (m QuranSubscriptionModel) NeedsRenewal(now time.Time) bool {
	return needsRenewal(m.QuranSubscriptionStatus, m.QuranSubscriptionEndDate, m.GracePeriodEndsAt(), now)
}
