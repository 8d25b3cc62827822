package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
	PaymentExpired = "expired"
)

// PaymentModel records one renewal payment, initiated by the parent user.
type PaymentModel struct {
	PaymentID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:payment_id" json:"payment_id"`
	PaymentAcademyID    uuid.UUID `gorm:"type:uuid;not null;index;column:payment_academy_id" json:"payment_academy_id"`
	PaymentParentUserID uuid.UUID `gorm:"type:uuid;not null;index;column:payment_parent_user_id" json:"payment_parent_user_id"`

	// Which subscription this payment renews.
	PaymentSubscriptionType string    `gorm:"not null;column:payment_subscription_type" json:"payment_subscription_type"` // quran | academic | course
	PaymentSubscriptionID   uuid.UUID `gorm:"type:uuid;not null;index;column:payment_subscription_id" json:"payment_subscription_id"`

	PaymentOrderID  string  `gorm:"not null;uniqueIndex;column:payment_order_id" json:"payment_order_id"`
	PaymentAmount   float64 `gorm:"not null;column:payment_amount" json:"payment_amount"`
	PaymentCurrency string  `gorm:"not null;default:IDR;column:payment_currency" json:"payment_currency"`
	PaymentStatus   string  `gorm:"not null;default:pending;index;column:payment_status" json:"payment_status"`

	PaymentSnapToken   *string    `gorm:"column:payment_snap_token" json:"payment_snap_token,omitempty"`
	PaymentRedirectURL *string    `gorm:"column:payment_redirect_url" json:"payment_redirect_url,omitempty"`
	PaymentPaidAt      *time.Time `gorm:"column:payment_paid_at" json:"payment_paid_at,omitempty"`

	PaymentMetadata datatypes.JSON `gorm:"column:payment_metadata" json:"payment_metadata,omitempty"`

	PaymentCreatedAt time.Time      `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt *time.Time     `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at,omitempty"`
	PaymentDeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;index" json:"payment_deleted_at,omitempty"`
}

func (PaymentModel) TableName() string { return "payments" }
