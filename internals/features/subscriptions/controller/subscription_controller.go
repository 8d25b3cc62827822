package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"akademiku_backend/internals/constants"
	identity "akademiku_backend/internals/features/identity/service"
	"akademiku_backend/internals/features/subscriptions/dto"
	"akademiku_backend/internals/features/subscriptions/service"
	helper "akademiku_backend/internals/helpers"
)

type SubscriptionController struct {
	DB       *gorm.DB
	Resolver *identity.Resolver
	Unified  *service.UnifiedSubscriptionService
}

func NewSubscriptionController(db *gorm.DB) *SubscriptionController {
	return &SubscriptionController{
		DB:       db,
		Resolver: identity.NewResolver(db),
		Unified:  service.NewUnifiedSubscriptionService(db),
	}
}

func (ctl *SubscriptionController) resolveContext(c *fiber.Ctx) (uuid.UUID, []identity.Child, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return uuid.Nil, nil, err
	}
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return uuid.Nil, nil, err
	}
	children, err := ctl.Resolver.ResolveChildren(c.Context(), userID, academyID)
	if err != nil {
		return uuid.Nil, nil, err
	}
	return academyID, children, nil
}

func isSubscriptionType(s string) bool {
	return s == constants.TypeQuran || s == constants.TypeAcademic || s == constants.TypeCourse
}

// GET /parent/subscriptions
func (ctl *SubscriptionController) Index(c *fiber.Ctx) error {
	academyID, children, err := ctl.resolveContext(c)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}

	typeFilter := c.Query("type")
	if typeFilter != "" && !isSubscriptionType(typeFilter) {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.CodeInvalidType, "unknown subscription type")
	}
	statusFilter := c.Query("status")

	keys := identity.BuildKeySet(children)
	subs, err := ctl.Unified.GetForStudents(c.Context(), academyID, keys)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}

	filtered := subs[:0:0]
	for _, sub := range subs {
		if typeFilter != "" && sub.Type != typeFilter {
			continue
		}
		if statusFilter != "" && sub.Status != statusFilter {
			continue
		}
		filtered = append(filtered, sub)
	}

	index := identity.IndexChildren(children)
	items := dto.NewSubscriptionResponses(filtered, index)
	return helper.JsonOK(c, "Subscriptions fetched successfully", fiber.Map{
		"subscriptions": items,
		"summary":       dto.NewSummaryResponse(service.BuildSummary(filtered, time.Now()), index),
	})
}

// GET /parent/subscriptions/:type/:id
func (ctl *SubscriptionController) Show(c *fiber.Ctx) error {
	academyID, children, err := ctl.resolveContext(c)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	subType := c.Params("type")
	if !isSubscriptionType(subType) {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.CodeInvalidType, "unknown subscription type")
	}
	subID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.CodeInvalidParameters, "id must be a valid uuid")
	}

	keys := identity.BuildKeySet(children)
	subs, err := ctl.Unified.GetForStudents(c.Context(), academyID, keys)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	for _, sub := range subs {
		if sub.Type == subType && sub.ID == subID {
			index := identity.IndexChildren(children)
			resp := dto.NewSubscriptionResponse(sub, index.ByAnyKey(sub.StudentKey))
			return helper.JsonOK(c, "Subscription fetched successfully", fiber.Map{"subscription": resp})
		}
	}
	return helper.ErrorHandler(c, helper.ErrNotFound(helper.CodeSubscriptionNotFound, "Subscription not found"))
}
