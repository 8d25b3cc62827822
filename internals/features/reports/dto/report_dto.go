package dto

import (
	"time"

	reportService "akademiku_backend/internals/features/reports/service"
	sessionDTO "akademiku_backend/internals/features/sessions/dto"
	subscriptionDTO "akademiku_backend/internals/features/subscriptions/dto"
)

type Period struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

type SessionTotals struct {
	Total     int            `json:"total"`
	Completed int            `json:"completed"`
	Upcoming  int            `json:"upcoming"`
	Cancelled int            `json:"cancelled"`
	ByType    map[string]int `json:"by_type"`
}

type ChildProgressResponse struct {
	Child         *sessionDTO.ChildBrief            `json:"child"`
	Period        Period                            `json:"period"`
	Sessions      SessionTotals                     `json:"sessions"`
	Attendance    reportService.AttendanceBreakdown `json:"attendance"`
	AverageRating *float64                          `json:"average_rating"`
	Completion    float64                           `json:"completion_percentage"`
}

type ChildAttendanceResponse struct {
	Child   *sessionDTO.ChildBrief                       `json:"child"`
	Period  Period                                       `json:"period"`
	Overall reportService.AttendanceBreakdown            `json:"overall"`
	ByType  map[string]reportService.AttendanceBreakdown `json:"by_type"`
}

type SubscriptionReportResponse struct {
	Subscription     subscriptionDTO.SubscriptionResponse `json:"subscription"`
	GracePeriod      reportService.GracePeriodStatus      `json:"grace_period"`
	SessionsUsed     int                                  `json:"sessions_used"`
	SessionsTotal    *int                                 `json:"sessions_total"`
	Completion       *float64                             `json:"completion_percentage"`
	RecentSessions   []sessionDTO.SessionEventResponse    `json:"recent_sessions"`
	UpcomingSessions []sessionDTO.SessionEventResponse    `json:"upcoming_sessions"`
}
