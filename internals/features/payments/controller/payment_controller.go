package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	identityModel "akademiku_backend/internals/features/identity/model"
	identity "akademiku_backend/internals/features/identity/service"
	"akademiku_backend/internals/features/payments/dto"
	"akademiku_backend/internals/features/payments/model"
	"akademiku_backend/internals/features/payments/service"
	subscriptionService "akademiku_backend/internals/features/subscriptions/service"
	helper "akademiku_backend/internals/helpers"
)

// errAlreadyPaid: a settled subscription rejects re-initiation with a 400
// and a stable code so clients can tell it apart from validation failures.
func errAlreadyPaid() *helper.ApiError {
	return helper.ErrBadRequest(helper.CodeAlreadyPaid, "Subscription already paid")
}

type PaymentController struct {
	DB            *gorm.DB
	Resolver      *identity.Resolver
	Subscriptions *subscriptionService.UnifiedSubscriptionService
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{
		DB:            db,
		Resolver:      identity.NewResolver(db),
		Subscriptions: subscriptionService.NewUnifiedSubscriptionService(db),
	}
}

// GET /parent/payments
func (ctl *PaymentController) Index(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}

	var rows []model.PaymentModel
	q := ctl.DB.WithContext(c.Context()).
		Where("payment_academy_id = ?", academyID).
		Where("payment_parent_user_id = ?", userID).
		Order("payment_created_at DESC")
	if status := c.Query("status"); status != "" {
		q = q.Where("payment_status = ?", status)
	}
	if err := q.Find(&rows).Error; err != nil {
		return helper.ErrorHandler(c, err)
	}

	items := dto.NewPaymentResponses(rows)
	paging := helper.ResolvePaging(c, 20, 100)
	page, pagination := helper.PaginateSlice(items, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Payments fetched successfully", "payments", page, pagination)
}

// GET /parent/payments/:id
func (ctl *PaymentController) Show(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.CodeInvalidParameters, "id must be a valid uuid")
	}

	var payment model.PaymentModel
	err = ctl.DB.WithContext(c.Context()).
		Where("payment_academy_id = ?", academyID).
		Where("payment_parent_user_id = ?", userID).
		Where("payment_id = ?", paymentID).
		Take(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.ErrorHandler(c, helper.ErrNotFound(helper.CodePaymentNotFound, "Payment not found"))
	}
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	return helper.JsonOK(c, "Payment fetched successfully", fiber.Map{"payment": dto.NewPaymentResponse(payment)})
}

// POST /parent/payments/initiate
func (ctl *PaymentController) Initiate(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}

	var req dto.InitiatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.CodeInvalidParameters, "Invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ErrorHandler(c, err)
	}
	subID, err := uuid.Parse(req.SubscriptionID)
	if err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.CodeInvalidParameters, "subscription_id must be a valid uuid")
	}

	// The subscription must belong to one of the parent's children.
	children, err := ctl.Resolver.ResolveChildren(c.Context(), userID, academyID)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	keys := identity.BuildKeySet(children)
	subs, err := ctl.Subscriptions.GetForStudents(c.Context(), academyID, keys)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	var sub *subscriptionService.SubscriptionInfo
	for i := range subs {
		if subs[i].Type == req.SubscriptionType && subs[i].ID == subID {
			sub = &subs[i]
			break
		}
	}
	if sub == nil {
		return helper.ErrorHandler(c, helper.ErrNotFound(helper.CodeSubscriptionNotFound, "Subscription not found"))
	}

	// One settled payment per subscription period.
	var paidCount int64
	err = ctl.DB.WithContext(c.Context()).
		Model(&model.PaymentModel{}).
		Where("payment_academy_id = ?", academyID).
		Where("payment_subscription_type = ? AND payment_subscription_id = ?", req.SubscriptionType, subID).
		Where("payment_status = ?", model.PaymentPaid).
		Count(&paidCount).Error
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	if paidCount > 0 {
		return helper.ErrorHandler(c, errAlreadyPaid())
	}

	// Reuse a pending order instead of opening a second one.
	var pending model.PaymentModel
	err = ctl.DB.WithContext(c.Context()).
		Where("payment_academy_id = ?", academyID).
		Where("payment_subscription_type = ? AND payment_subscription_id = ?", req.SubscriptionType, subID).
		Where("payment_status = ?", model.PaymentPending).
		Take(&pending).Error
	if err == nil && pending.PaymentSnapToken != nil {
		return helper.JsonOK(c, "Payment already initiated", fiber.Map{"payment": dto.NewPaymentResponse(pending)})
	}

	var parentUser identityModel.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("user_id = ?", userID).
		Take(&parentUser).Error; err != nil {
		return helper.ErrorHandler(c, err)
	}

	payment := model.PaymentModel{
		PaymentAcademyID:        academyID,
		PaymentParentUserID:     userID,
		PaymentSubscriptionType: req.SubscriptionType,
		PaymentSubscriptionID:   subID,
		PaymentOrderID:          fmt.Sprintf("SUB-%s-%d", subID.String()[:8], time.Now().Unix()),
		PaymentAmount:           sub.Price,
		PaymentCurrency:         sub.Currency,
		PaymentStatus:           model.PaymentPending,
	}

	itemName := req.SubscriptionType + " subscription renewal"
	if sub.PackageName != nil && *sub.PackageName != "" {
		itemName = *sub.PackageName
	}
	token, redirectURL, err := service.GenerateSnapToken(payment, service.CustomerInput{
		FirstName: parentUser.UserName,
		Email:     parentUser.UserEmail,
	}, itemName)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	payment.PaymentSnapToken = &token
	payment.PaymentRedirectURL = &redirectURL

	if err := ctl.DB.WithContext(c.Context()).Create(&payment).Error; err != nil {
		return helper.ErrorHandler(c, err)
	}
	return helper.JsonCreated(c, "Payment initiated successfully", fiber.Map{"payment": dto.NewPaymentResponse(payment)})
}
