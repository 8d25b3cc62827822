package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	identityDTO "akademiku_backend/internals/features/identity/dto"
	identity "akademiku_backend/internals/features/identity/service"
	"akademiku_backend/internals/features/sessions/adapter"
	sessionDTO "akademiku_backend/internals/features/sessions/dto"
	sessionModel "akademiku_backend/internals/features/sessions/model"
	sessionService "akademiku_backend/internals/features/sessions/service"
	subscriptionDTO "akademiku_backend/internals/features/subscriptions/dto"
	subscriptionService "akademiku_backend/internals/features/subscriptions/service"
	helper "akademiku_backend/internals/helpers"
)

const upcomingPreviewLimit = 5

// DashboardController aggregates the landing view. Session data comes from
// ONE unified fetch spanning today through next week, split in memory, so
// the whole dashboard still costs one adapter call per source.
type DashboardController struct {
	DB            *gorm.DB
	Resolver      *identity.Resolver
	Sessions      *sessionService.UnifiedSessionService
	Subscriptions *subscriptionService.UnifiedSubscriptionService
}

func NewDashboardController(db *gorm.DB, sessions *sessionService.UnifiedSessionService) *DashboardController {
	return &DashboardController{
		DB:            db,
		Resolver:      identity.NewResolver(db),
		Sessions:      sessions,
		Subscriptions: subscriptionService.NewUnifiedSubscriptionService(db),
	}
}

// splitSessions carves one fetched window into today's full list and a short
// preview of what comes next. Terminal sessions never enter the preview.
func splitSessions(events []adapter.SessionEvent, now, endOfDay time.Time, previewLimit int) (today, upcoming []adapter.SessionEvent) {
	today = make([]adapter.SessionEvent, 0, len(events))
	upcoming = make([]adapter.SessionEvent, 0, previewLimit)
	for _, ev := range events {
		if !ev.ScheduledAt.After(endOfDay) {
			today = append(today, ev)
		}
		if ev.ScheduledAt.After(now) && !ev.Status.IsTerminal() && len(upcoming) < previewLimit {
			upcoming = append(upcoming, ev)
		}
	}
	return today, upcoming
}

// GET /parent/dashboard
func (ctl *DashboardController) Show(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	children, err := ctl.Resolver.ResolveChildren(c.Context(), userID, academyID)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}

	now := time.Now()
	keys := identity.BuildKeySet(children)
	index := identity.IndexChildren(children)

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	window := helper.DateRange{From: startOfDay, To: startOfDay.AddDate(0, 0, 8)}
	events, err := ctl.Sessions.GetForStudents(c.Context(), academyID, keys, adapter.FetchOptions{
		Range:           &window,
		ExcludeStatuses: []sessionModel.SessionStatus{sessionModel.SessionCancelled},
		Now:             now,
	})
	if err != nil {
		return helper.ErrorHandler(c, err)
	}

	endOfDay := startOfDay.Add(24*time.Hour - time.Nanosecond)
	today, upcoming := splitSessions(events, now, endOfDay, upcomingPreviewLimit)

	summary, err := ctl.Subscriptions.GetSummary(c.Context(), academyID, keys)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}

	childItems := make([]identityDTO.ChildResponse, 0, len(children))
	for _, ch := range children {
		childItems = append(childItems, identityDTO.NewChildResponse(ch))
	}

	return helper.JsonOK(c, "Dashboard fetched successfully", fiber.Map{
		"children": childItems,
		"stats": fiber.Map{
			"children_total":      len(children),
			"sessions_today":      len(today),
			"sessions_this_week":  len(events),
			"subscriptions_total": summary.Total,
			"needs_renewal":       summary.NeedsRenewal,
		},
		"today_sessions":    sessionDTO.NewSessionEventResponses(today, index),
		"upcoming_sessions": sessionDTO.NewSessionEventResponses(upcoming, index),
		"subscriptions":     subscriptionDTO.NewSummaryResponse(summary, index),
	})
}
