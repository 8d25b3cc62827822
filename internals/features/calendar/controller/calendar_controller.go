package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"akademiku_backend/internals/features/calendar/dto"
	identity "akademiku_backend/internals/features/identity/service"
	sessionService "akademiku_backend/internals/features/sessions/service"
	helper "akademiku_backend/internals/helpers"
)

type CalendarController struct {
	DB       *gorm.DB
	Resolver *identity.Resolver
	Sessions *sessionService.UnifiedSessionService
}

func NewCalendarController(db *gorm.DB, sessions *sessionService.UnifiedSessionService) *CalendarController {
	return &CalendarController{DB: db, Resolver: identity.NewResolver(db), Sessions: sessions}
}

// GET /parent/calendar            — current month
// GET /parent/calendar/:year/:month
func (ctl *CalendarController) Month(c *fiber.Ctx) error {
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
	year, month := now.Year(), int(now.Month())
	if c.Params("year") != "" {
		year, err = c.ParamsInt("year")
		if err != nil {
			return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.CodeInvalidParameters, "year must be numeric")
		}
		month, err = c.ParamsInt("month")
		if err != nil {
			return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.CodeInvalidParameters, "month must be numeric")
		}
	}
	window, err := helper.MonthRange(year, month, now.Location())
	if err != nil {
		return helper.ErrorHandler(c, err)
	}

	keys := identity.BuildKeySet(children)
	events, err := ctl.Sessions.GetRange(c.Context(), academyID, keys, window)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}

	index := identity.IndexChildren(children)
	return helper.JsonOK(c, "Calendar fetched successfully", fiber.Map{
		"year":   year,
		"month":  month,
		"events": dto.NewCalendarEventResponses(events, index),
	})
}
