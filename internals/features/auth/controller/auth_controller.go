package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"akademiku_backend/internals/features/auth/dto"
	"akademiku_backend/internals/features/auth/service"
	identityModel "akademiku_backend/internals/features/identity/model"
	helper "akademiku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/v1/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.CodeInvalidParameters, "Invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ErrorHandler(c, err)
	}
	academyID, err := uuid.Parse(req.AcademyID)
	if err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.CodeInvalidParameters, "academy_id must be a valid uuid")
	}

	var user identityModel.UserModel
	err = ctl.DB.WithContext(c.Context()).
		Where("user_email = ? AND user_academy_id = ?", req.Email, academyID).
		Where("user_is_active = ?", true).
		Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Same response as a bad password; do not reveal which failed.
		return helper.JsonErrorCode(c, fiber.StatusUnauthorized, helper.CodeInvalidCredentials, "Invalid email or password")
	}
	if err != nil {
		return helper.ErrorHandler(c, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)) != nil {
		return helper.JsonErrorCode(c, fiber.StatusUnauthorized, helper.CodeInvalidCredentials, "Invalid email or password")
	}

	token, expiresIn, err := service.IssueAccessToken(user.UserID, user.UserAcademyID, user.UserRole)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}

	return helper.JsonOK(c, "Login successful", dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		User: dto.UserResponse{
			ID:        user.UserID,
			Name:      user.UserName,
			Email:     user.UserEmail,
			Role:      user.UserRole,
			AcademyID: user.UserAcademyID,
			Avatar:    user.UserAvatar,
		},
	})
}
