package handlers

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"
)

func TestSameOriginPath(t *testing.T) {
	app := fiber.New()
	reqCtx := &fasthttp.RequestCtx{}
	reqCtx.Request.SetHost("example.com")
	c := app.AcquireCtx(reqCtx)
	defer app.ReleaseCtx(c)

	cases := map[string]string{
		"":                                       "/admin",
		"http://example.com/admin?page=about":    "/admin?page=about",
		"/admin?page=portfolio":                  "/admin?page=portfolio",
		"https://evil.test/phish":                "/admin",
		"http://example.com//evil.example/phish": "/admin",
		"http://example.com/\\evil.example":      "/admin",
		"//evil.example/phish":                   "/admin",
		"relative/path":                          "/admin",
		"http://example.com":                     "/admin",
		"http://example.com/%2F%2Fevil.example":  "/admin",
	}
	for ref, want := range cases {
		assert.Equal(t, want, sameOriginPath(c, ref, "/admin"), ref)
	}
}
