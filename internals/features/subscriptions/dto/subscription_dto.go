package dto

import (
	"time"

	"github.com/google/uuid"

	identity "akademiku_backend/internals/features/identity/service"
	sessionDTO "akademiku_backend/internals/features/sessions/dto"
	"akademiku_backend/internals/features/subscriptions/service"
)

type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// SubscriptionResponse shares one key set across all three types; unused
// keys serialize as null.
type SubscriptionResponse struct {
	ID   uuid.UUID `json:"id"`
	Type string    `json:"type"`

	Child       *sessionDTO.ChildBrief `json:"child"`
	PackageName *string                `json:"package_name"`
	Subject     *string                `json:"subject"`
	CourseName  *string                `json:"course_name"`

	Status            string     `json:"status"`
	StartDate         *time.Time `json:"start_date"`
	EndDate           *time.Time `json:"end_date"`
	InGracePeriod     bool       `json:"in_grace_period"`
	GracePeriodEndsAt *time.Time `json:"grace_period_ends_at"`
	NeedsRenewal      bool       `json:"needs_renewal"`

	SessionsPerWeek  *int  `json:"sessions_per_week"`
	ProgressSessions *int  `json:"progress_sessions"`
	TotalSessions    *int  `json:"total_sessions"`
	Price            Money `json:"price"`
}

func NewSubscriptionResponse(sub service.SubscriptionInfo, child *identity.Child) SubscriptionResponse {
	resp := SubscriptionResponse{
		ID:                sub.ID,
		Type:              sub.Type,
		PackageName:       sub.PackageName,
		Subject:           sub.Subject,
		CourseName:        sub.CourseName,
		Status:            sub.Status,
		StartDate:         sub.StartDate,
		EndDate:           sub.EndDate,
		InGracePeriod:     sub.InGracePeriod,
		GracePeriodEndsAt: sub.GracePeriodEndsAt,
		NeedsRenewal:      sub.NeedsRenewal,
		SessionsPerWeek:   sub.SessionsPerWeek,
		ProgressSessions:  sub.ProgressSessions,
		TotalSessions:     sub.TotalSessions,
		Price:             Money{Amount: sub.Price, Currency: sub.Currency},
	}
	if child != nil {
		resp.Child = &sessionDTO.ChildBrief{
			ID:     child.Identity.StudentProfileID,
			Name:   child.DisplayName,
			Avatar: child.AvatarURL,
		}
	}
	return resp
}

func NewSubscriptionResponses(subs []service.SubscriptionInfo, index identity.ChildIndex) []SubscriptionResponse {
	out := make([]SubscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		out = append(out, NewSubscriptionResponse(sub, index.ByAnyKey(sub.StudentKey)))
	}
	return out
}

// SummaryResponse is the dashboard rollup shape.
type SummaryResponse struct {
	Total        int                    `json:"total"`
	ByStatus     map[string]int         `json:"by_status"`
	NeedsRenewal int                    `json:"needs_renewal"`
	ExpiringSoon []SubscriptionResponse `json:"expiring_soon"`
}

func NewSummaryResponse(summary service.Summary, index identity.ChildIndex) SummaryResponse {
	return SummaryResponse{
		Total:        summary.Total,
		ByStatus:     summary.ByStatus,
		NeedsRenewal: summary.NeedsRenewal,
		ExpiringSoon: NewSubscriptionResponses(summary.ExpiringSoon, index),
	}
}
