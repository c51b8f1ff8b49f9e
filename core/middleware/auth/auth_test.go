package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(key string) *fiber.App {
	app := fiber.New()
	app.Use(New(Config{ApiKey: key}))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })
	return app
}

func TestAuth_ValidKey(t *testing.T) {
	app := newApp("secret")

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(Header, "secret")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestAuth_MissingKey(t *testing.T) {
	app := newApp("secret")

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))

	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestAuth_WrongKey(t *testing.T) {
	app := newApp("secret")

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(Header, "nope")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestAuth_DisabledWhenUnset(t *testing.T) {
	app := newApp("")

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
