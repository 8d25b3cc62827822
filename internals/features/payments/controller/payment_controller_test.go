package controller

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "akademiku_backend/internals/helpers"
)

func TestAlreadyPaidIsBadRequest(t *testing.T) {
	err := errAlreadyPaid()
	assert.Equal(t, fiber.StatusBadRequest, err.Status)
	assert.Equal(t, helper.CodeAlreadyPaid, err.Code)
}

// A re-initiated settled subscription answers 400 with the stable code in
// the error envelope.
func TestAlreadyPaidEnvelope(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	app.Post("/initiate", func(c *fiber.Ctx) error {
		return helper.ErrorHandler(c, errAlreadyPaid())
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/initiate", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"error_code":"ALREADY_PAID"`)
	assert.Contains(t, string(body), `"success":false`)
}
