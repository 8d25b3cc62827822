package dto

import (
	"time"

	"github.com/google/uuid"

	"akademiku_backend/internals/features/payments/model"
)

type InitiatePaymentRequest struct {
	SubscriptionType string `json:"subscription_type" validate:"required,oneof=quran academic course"`
	SubscriptionID   string `json:"subscription_id" validate:"required,uuid4"`
}

type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type PaymentResponse struct {
	ID               uuid.UUID  `json:"id"`
	OrderID          string     `json:"order_id"`
	SubscriptionType string     `json:"subscription_type"`
	SubscriptionID   uuid.UUID  `json:"subscription_id"`
	Price            Money      `json:"price"`
	Status           string     `json:"status"`
	SnapToken        *string    `json:"snap_token"`
	RedirectURL      *string    `json:"redirect_url"`
	PaidAt           *time.Time `json:"paid_at"`
	CreatedAt        time.Time  `json:"created_at"`
}

func NewPaymentResponse(m model.PaymentModel) PaymentResponse {
	return PaymentResponse{
		ID:               m.PaymentID,
		OrderID:          m.PaymentOrderID,
		SubscriptionType: m.PaymentSubscriptionType,
		SubscriptionID:   m.PaymentSubscriptionID,
		Price:            Money{Amount: m.PaymentAmount, Currency: m.PaymentCurrency},
		Status:           m.PaymentStatus,
		SnapToken:        m.PaymentSnapToken,
		RedirectURL:      m.PaymentRedirectURL,
		PaidAt:           m.PaymentPaidAt,
		CreatedAt:        m.PaymentCreatedAt,
	}
}

func NewPaymentResponses(items []model.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(items))
	for _, m := range items {
		out = append(out, NewPaymentResponse(m))
	}
	return out
}
