package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/Spencer4792/jwt-pizza-service/internal/api/http"
)

func TestRequestTimeoutReachesHandlers(t *testing.T) {
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), nil, 50*time.Millisecond)

	var sawDeadline bool
	var blockedErr error
	app.Get("/", func(c *fiber.Ctx) error {
		// Handlers hand c.UserContext() to services, so the request
		// deadline has to be visible there.
		ctx := c.UserContext()
		_, sawDeadline = ctx.Deadline()

		select {
		case <-ctx.Done():
			blockedErr = ctx.Err()
		case <-time.After(2 * time.Second):
		}
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), 5000)
	require.NoError(t, err)
	resp.Body.Close()

	assert.True(t, sawDeadline)
	assert.ErrorIs(t, blockedErr, context.DeadlineExceeded)
}

func TestCORSHeadersEchoOrigin(t *testing.T) {
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), nil, 0)
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "http://localhost:5173", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
}
