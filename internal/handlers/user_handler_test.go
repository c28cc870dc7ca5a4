package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/emirhanakgul/toolshop-backend/internal/dto"
	"github.com/emirhanakgul/toolshop-backend/internal/token"
	"github.com/gofiber/fiber/v2"
)

func userApp(users *MockUserStore, tokens TokenIssuer) *fiber.App {
	h := NewUserHandler(users, tokens)
	app := fiber.New()
	app.Put("/user/admin/:email", h.Promote)
	app.Put("/user/:email", h.UpsertWithToken)
	app.Get("/users", h.ListAll)
	app.Get("/user/:email", h.GetByEmail)
	app.Put("/update-user/:email", h.Update)
	app.Get("/admin/:email", h.AdminFlag)
	return app
}

func TestUserUpsertWithToken(t *testing.T) {
	tokens := token.NewService("user-test-secret", time.Hour)

	t.Run("Given an empty body When upserted Then the record exists and the token names the subject", func(t *testing.T) {
		users := NewMockUserStore()
		app := userApp(users, tokens)

		resp := doJSON(t, app, http.MethodPut, "/user/new@x.com", map[string]interface{}{})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		var out dto.UpsertUserResponse
		decodeBody(t, resp, &out)
		if !out.Result.Acknowledged || out.Token == "" {
			t.Fatalf("response = %+v", out)
		}

		sub, err := tokens.Verify(out.Token)
		if err != nil {
			t.Fatalf("Verify: %v", err)
		}
		if sub != "new@x.com" {
			t.Errorf("subject = %q, want new@x.com", sub)
		}
		if users.Count() != 1 {
			t.Errorf("stored users = %d, want 1", users.Count())
		}
	})

	t.Run("Given the same payload twice When upserted Then exactly one record with the latest fields", func(t *testing.T) {
		users := NewMockUserStore()
		app := userApp(users, tokens)
		payload := map[string]interface{}{"name": "Ada", "phone": "555-0100"}

		for i := 0; i < 2; i++ {
			resp := doJSON(t, app, http.MethodPut, "/user/ada@x.com", payload)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("upsert %d status = %d, want 200", i, resp.StatusCode)
			}
		}
		if users.Count() != 1 {
			t.Fatalf("stored users = %d, want 1", users.Count())
		}

		resp := doJSON(t, app, http.MethodGet, "/user/ada@x.com", nil)
		var got map[string]interface{}
		decodeBody(t, resp, &got)
		if got["name"] != "Ada" || got["phone"] != "555-0100" {
			t.Errorf("record = %v", got)
		}
	})

	t.Run("Given a malformed email segment When upserted Then 400", func(t *testing.T) {
		app := userApp(NewMockUserStore(), tokens)
		resp := doJSON(t, app, http.MethodPut, "/user/not-an-email", nil)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})
}

func TestUserGetByEmail(t *testing.T) {
	tokens := token.NewService("user-test-secret", time.Hour)

	t.Run("Given no record When read Then null with HTTP 200", func(t *testing.T) {
		app := userApp(NewMockUserStore(), tokens)
		resp := doJSON(t, app, http.MethodGet, "/user/ghost@x.com", nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		var got interface{}
		decodeBody(t, resp, &got)
		if got != nil {
			t.Errorf("body = %v, want null", got)
		}
	})
}

func TestUserPromote(t *testing.T) {
	tokens := token.NewService("user-test-secret", time.Hour)

	t.Run("Given an existing user When promoted Then matched 1 and the admin flag flips", func(t *testing.T) {
		users := NewMockUserStore()
		app := userApp(users, tokens)

		doJSON(t, app, http.MethodPut, "/user/staff@x.com", nil)

		resp := doJSON(t, app, http.MethodPut, "/user/admin/staff@x.com", nil)
		var promoted dto.PromoteResponse
		decodeBody(t, resp, &promoted)
		if promoted.MatchedCount != 1 {
			t.Fatalf("matched = %d, want 1", promoted.MatchedCount)
		}

		resp = doJSON(t, app, http.MethodGet, "/admin/staff@x.com", nil)
		var flag dto.AdminFlagResponse
		decodeBody(t, resp, &flag)
		if !flag.Admin {
			t.Error("admin flag = false, want true")
		}
	})

	t.Run("Given no record When promoted Then matched 0 and nothing is created", func(t *testing.T) {
		users := NewMockUserStore()
		app := userApp(users, tokens)

		resp := doJSON(t, app, http.MethodPut, "/user/admin/ghost@x.com", nil)
		var promoted dto.PromoteResponse
		decodeBody(t, resp, &promoted)
		if promoted.MatchedCount != 0 {
			t.Errorf("matched = %d, want 0", promoted.MatchedCount)
		}
		if users.Count() != 0 {
			t.Errorf("stored users = %d, want 0", users.Count())
		}
	})
}

func TestAdminFlagUnknownEmail(t *testing.T) {
	tokens := token.NewService("user-test-secret", time.Hour)

	t.Run("Given an unknown email When probed Then admin false with HTTP 200", func(t *testing.T) {
		app := userApp(NewMockUserStore(), tokens)
		resp := doJSON(t, app, http.MethodGet, "/admin/ghost@x.com", nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		var flag dto.AdminFlagResponse
		decodeBody(t, resp, &flag)
		if flag.Admin {
			t.Error("admin flag = true, want false")
		}
	})
}
