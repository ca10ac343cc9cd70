package response

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_FillsDefaultMessage(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c fiber.Ctx) error {
		return Error(c, fiber.StatusTooManyRequests, "", nil)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env SemanticResponse
	require.NoError(t, json.Unmarshal(body, &env))
	assert.Equal(t, fiber.StatusTooManyRequests, env.Status)
	assert.Equal(t, MessageTooManyRequests, env.Message)
	assert.Nil(t, env.Data)
}

func TestSuccess_InvalidStatusBecomes500(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c fiber.Ctx) error {
		return Success(c, 42, "", map[string]int{"n": 1})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
