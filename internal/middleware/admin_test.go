package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/emirhanakgul/toolshop-backend/internal/config"
	"github.com/emirhanakgul/toolshop-backend/internal/dto"
	"github.com/emirhanakgul/toolshop-backend/internal/services"
	"github.com/emirhanakgul/toolshop-backend/internal/token"
	"github.com/gofiber/fiber/v2"
)

// mockRoles implements RoleLookup over an in-memory map.
type mockRoles struct {
	roles map[string]string
	err   error
}

func (m *mockRoles) RoleByEmail(_ context.Context, email string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	role, ok := m.roles[email]
	if !ok {
		return "", services.ErrUserNotFound
	}
	return role, nil
}

func adminApp(t *testing.T, roles RoleLookup, cfg *config.Config) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/admin-only", Protected(cfg), AdminRequired(roles, cfg), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func adminRequest(t *testing.T, app *fiber.App, subject string, headers map[string]string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	if subject != "" {
		tok, err := token.NewService(testSecret, time.Hour).Issue(subject)
		if err != nil {
			t.Fatalf("Issue: %v", err)
		}
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestAdminRequired(t *testing.T) {
	cfg := &config.Config{JWTSecret: testSecret}

	t.Run("Given an admin user record When requested Then passes", func(t *testing.T) {
		app := adminApp(t, &mockRoles{roles: map[string]string{"boss@x.com": "admin"}}, cfg)
		resp := adminRequest(t, app, "boss@x.com", nil)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("status = %d, want 200", resp.StatusCode)
		}
	})

	t.Run("Given a non-admin user record When requested Then 403 forbidden", func(t *testing.T) {
		app := adminApp(t, &mockRoles{roles: map[string]string{"pleb@x.com": "user"}}, cfg)
		resp := adminRequest(t, app, "pleb@x.com", nil)
		if resp.StatusCode != http.StatusForbidden {
			t.Errorf("status = %d, want 403", resp.StatusCode)
		}
		if kind := errorKind(t, resp); kind != dto.KindForbidden {
			t.Errorf("kind = %q, want %q", kind, dto.KindForbidden)
		}
	})

	t.Run("Given no user record for the subject When requested Then 403, not a fault", func(t *testing.T) {
		app := adminApp(t, &mockRoles{roles: map[string]string{}}, cfg)
		resp := adminRequest(t, app, "ghost@x.com", nil)
		if resp.StatusCode != http.StatusForbidden {
			t.Errorf("status = %d, want 403", resp.StatusCode)
		}
	})

	t.Run("Given a store failure during the role lookup When requested Then 403", func(t *testing.T) {
		app := adminApp(t, &mockRoles{err: errors.New("connection refused")}, cfg)
		resp := adminRequest(t, app, "boss@x.com", nil)
		if resp.StatusCode != http.StatusForbidden {
			t.Errorf("status = %d, want 403", resp.StatusCode)
		}
	})

	t.Run("Given a matching X-Admin-Token header When requested Then passes without a lookup", func(t *testing.T) {
		tokenCfg := &config.Config{JWTSecret: testSecret, AdminToken: "bootstrap"}
		app := adminApp(t, &mockRoles{err: errors.New("must not be called")}, tokenCfg)
		resp := adminRequest(t, app, "anyone@x.com", map[string]string{"X-Admin-Token": "bootstrap"})
		if resp.StatusCode != http.StatusOK {
			t.Errorf("status = %d, want 200", resp.StatusCode)
		}
	})

	t.Run("Given the subject on the admin email list When requested Then passes", func(t *testing.T) {
		listCfg := &config.Config{JWTSecret: testSecret, AdminEmails: "root@x.com, ops@x.com"}
		app := adminApp(t, &mockRoles{roles: map[string]string{}}, listCfg)
		resp := adminRequest(t, app, "ops@x.com", nil)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("status = %d, want 200", resp.StatusCode)
		}
	})
}
