package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"creovibe/internal/pkg/config"
	"creovibe/internal/usecases"
	"creovibe/pkg/constants"
	"creovibe/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func cookieNamed(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestFlashStore_PushThenPopOnce(t *testing.T) {
	store := NewFlashStore(nil, false)
	app := fiber.New()
	app.Get("/push", func(c *fiber.Ctx) error {
		require.NoError(t, store.Push(c, constants.FlashSuccess, "first"))
		require.NoError(t, store.Push(c, constants.FlashError, "second"))
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/pop", func(c *fiber.Ctx) error {
		var parts []string
		for _, f := range store.Pop(c) {
			parts = append(parts, f.Kind+":"+f.Message)
		}
		return c.SendString(strings.Join(parts, ","))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/push", nil), -1)
	require.NoError(t, err)
	cookie := cookieNamed(resp, constants.FlashCookieName)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	pop := func() string {
		req := httptest.NewRequest(http.MethodGet, "/pop", nil)
		req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return string(body)
	}

	assert.Equal(t, "success:first,error:second", pop())
	assert.Empty(t, pop())
}

func TestRequireAdmin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)
	auth := usecases.NewAuthService(config.AdminConfig{
		Username:      "admin",
		PasswordHash:  string(hash),
		SessionSecret: strings.Repeat("k", 32),
		SessionTTL:    time.Hour,
		Issuer:        "creovibe",
	}, nil)

	app := fiber.New()
	app.Get("/admin", RequireAdmin(auth), func(c *fiber.Ctx) error {
		return c.SendString(Admin(c).Subject)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, LoginPath, resp.Header.Get(fiber.HeaderLocation))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: constants.AdminCookieName, Value: "garbage"})
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)

	token, err := auth.Login(req.Context(), "admin", "pw")
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: constants.AdminCookieName, Value: token})
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "admin", string(body))
}

func TestAdmin_NilOutsideGuard(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		assert.Nil(t, Admin(c))
		return nil
	})
	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
}

func TestLogging_PassesErrorsThrough(t *testing.T) {
	app := fiber.New()
	app.Use(requestid.New())
	app.Use(Logging(logger.Nop()))
	app.Get("/missing", func(c *fiber.Ctx) error { return fiber.ErrNotFound })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
	assert.Equal(t, http.StatusNotFound, statusForError(fiber.ErrNotFound))
}
