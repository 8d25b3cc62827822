package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CourseSubscriptionModel is the interactive-course enrollment. Unlike the
// quran/academic rows it keys the student by STUDENT PROFILE id.
type CourseSubscriptionModel struct {
	CourseSubscriptionID               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_subscription_id" json:"course_subscription_id"`
	CourseSubscriptionAcademyID        uuid.UUID `gorm:"type:uuid;not null;index;column:course_subscription_academy_id" json:"course_subscription_academy_id"`
	CourseSubscriptionStudentProfileID uuid.UUID `gorm:"type:uuid;not null;index;column:course_subscription_student_profile_id" json:"course_subscription_student_profile_id"`
	CourseSubscriptionCourseID         uuid.UUID `gorm:"type:uuid;not null;index;column:course_subscription_course_id" json:"course_subscription_course_id"`

	CourseSubscriptionStatus    string     `gorm:"not null;default:pending;index;column:course_subscription_status" json:"course_subscription_status"`
	CourseSubscriptionStartDate *time.Time `gorm:"column:course_subscription_start_date" json:"course_subscription_start_date,omitempty"`
	CourseSubscriptionEndDate   *time.Time `gorm:"index;column:course_subscription_end_date" json:"course_subscription_end_date,omitempty"`

	CourseSubscriptionProgressSessions int `gorm:"not null;default:0;column:course_subscription_progress_sessions" json:"course_subscription_progress_sessions"`

	CourseSubscriptionPrice    float64        `gorm:"not null;default:0;column:course_subscription_price" json:"course_subscription_price"`
	CourseSubscriptionCurrency string         `gorm:"not null;default:IDR;column:course_subscription_currency" json:"course_subscription_currency"`
	CourseSubscriptionMetadata datatypes.JSON `gorm:"column:course_subscription_metadata" json:"course_subscription_metadata,omitempty"`

	CourseSubscriptionCreatedAt time.Time      `gorm:"column:course_subscription_created_at;autoCreateTime" json:"course_subscription_created_at"`
	CourseSubscriptionUpdatedAt *time.Time     `gorm:"column:course_subscription_updated_at;autoUpdateTime" json:"course_subscription_updated_at,omitempty"`
	CourseSubscriptionDeletedAt gorm.DeletedAt `gorm:"column:course_subscription_deleted_at;index" json:"course_subscription_deleted_at,omitempty"`
}

func (CourseSubscriptionModel) TableName() string { return "course_subscriptions" }

func (m CourseSubscriptionModel) GracePeriodEndsAt() *time.Time {
	return graceEndsAt(m.CourseSubscriptionMetadata, m.CourseSubscriptionEndDate)
}

func (m CourseSubscriptionModel) IsInGracePeriod(now time.Time) bool {
	return inGracePeriod(m.CourseSubscriptionStatus, m.CourseSubscriptionEndDate, m.GracePeriodEndsAt(), now)
}

func (m CourseSubscriptionModel) NeedsRenewal(now time.Time) bool {
	return needsRenewal(m.CourseSubscriptionStatus, m.CourseSubscriptionEndDate, m.GracePeriodEndsAt(), now)
}
