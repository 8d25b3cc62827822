package helper

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// Stable error codes surfaced to API clients. Codes are part of the client
// contract; renaming one is a breaking change.
const (
	CodeParentProfileNotFound = "PARENT_PROFILE_NOT_FOUND"
	CodeChildNotFound         = "CHILD_NOT_FOUND"
	CodeChildAlreadyLinked    = "CHILD_ALREADY_LINKED"
	CodeStudentCodeNotFound   = "STUDENT_CODE_NOT_FOUND"
	CodeSessionNotFound       = "SESSION_NOT_FOUND"
	CodeSubscriptionNotFound  = "SUBSCRIPTION_NOT_FOUND"
	CodeHomeworkNotFound      = "HOMEWORK_NOT_FOUND"
	CodeQuizNotFound          = "QUIZ_NOT_FOUND"
	CodePaymentNotFound       = "PAYMENT_NOT_FOUND"
	CodeCertificateNotFound   = "CERTIFICATE_NOT_FOUND"
	CodeAlreadyPaid           = "ALREADY_PAID"
	CodeInvalidDate           = "INVALID_DATE"
	CodeInvalidParameters     = "INVALID_PARAMETERS"
	CodeInvalidType           = "INVALID_TYPE"
	CodeInvalidCredentials    = "INVALID_CREDENTIALS"
	CodeInternalError         = "INTERNAL_ERROR"
)

// ApiError carries an HTTP status and a stable error code through the call
// stack; the central Fiber ErrorHandler turns it into the error envelope.
type ApiError struct {
	Status  int
	Code    string
	Message string
	Fields  map[string][]string
}

func (e *ApiError) Error() string { return e.Message }

func NewApiError(status int, code, message string) *ApiError {
	return &ApiError{Status: status, Code: code, Message: message}
}

func ErrNotFound(code, message string) *ApiError {
	return NewApiError(fiber.StatusNotFound, code, message)
}

func ErrBadRequest(code, message string) *ApiError {
	return NewApiError(fiber.StatusBadRequest, code, message)
}

// ErrorHandler is installed in fiber.Config. ApiError keeps its code,
// *fiber.Error maps to a status-derived code, anything else becomes an opaque
// 500 (logged server-side, no internals leaked to the client).
func ErrorHandler(c *fiber.Ctx, err error) error {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		if len(apiErr.Fields) > 0 {
			return c.Status(apiErr.Status).JSON(ErrorResponse{
				Success:   false,
				Message:   apiErr.Message,
				ErrorCode: apiErr.Code,
				Errors:    apiErr.Fields,
			})
		}
		return JsonErrorCode(c, apiErr.Status, apiErr.Code, apiErr.Message)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}

	log.Printf("[ERROR] unhandled: %s %s: %v", c.Method(), c.OriginalURL(), err)
	return JsonErrorCode(c, fiber.StatusInternalServerError, CodeInternalError, "Internal server error")
}
