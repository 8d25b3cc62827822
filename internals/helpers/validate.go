package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateStruct runs validator.v10 tags; failures surface as a 422 with
// per-field tags via the central ErrorHandler.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return NewApiError(fiber.StatusBadRequest, "BAD_REQUEST", "Invalid input")
	}
	fieldErrors := make(map[string][]string, len(ve))
	for _, fe := range ve {
		fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], fe.Tag())
	}
	return &ApiError{
		Status:  fiber.StatusUnprocessableEntity,
		Code:    "VALIDATION_ERROR",
		Message: "validation failed",
		Fields:  fieldErrors,
	}
}
