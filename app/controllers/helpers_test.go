package controllers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/harvestly/market-backend/pkg/routes"
)

func todayUTC() string {
	return time.Now().UTC().Format("2006-01-02")
}

func newTestApp() *fiber.App {
	app := fiber.New()
	routes.RegisterUserRoutes(app)
	routes.RegisterProductRoutes(app)
	routes.RegisterAdvertisementRoutes(app)
	return app
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading response body: %v", err)
	}
	return string(b)
}
