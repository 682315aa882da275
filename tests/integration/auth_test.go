package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestAuthFlow(t *testing.T) {
	app := setupApp(t)

	t.Run("register login and profile", func(t *testing.T) {
		access, _, userID := app.registerUser(t, "flow@example.com", "password123")
		if userID == "" {
			t.Fatal("expected a user id")
		}

		rec := app.request("GET", "/api/v1/auth/profile", "", access)
		if rec.Code != http.StatusOK {
			t.Fatalf("profile failed: %d %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["email"] != "flow@example.com" {
			t.Errorf("email = %v", result["email"])
		}

		access2, _ := app.loginUser(t, "flow@example.com", "password123")
		if access2 == "" {
			t.Fatal("expected an access token from login")
		}
	})

	t.Run("refresh rotates tokens", func(t *testing.T) {
		_, refresh, _ := app.registerUser(t, "refresh@example.com", "password123")

		rec := app.request("POST", "/api/v1/auth/refresh",
			fmt.Sprintf(`{"refresh_token":%q}`, refresh), "")
		if rec.Code != http.StatusOK {
			t.Fatalf("refresh failed: %d %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		newRefresh := result["refresh_token"].(string)
		if newRefresh == "" {
			t.Fatal("expected a new refresh token")
		}
	})

	t.Run("logout invalidates the refresh token", func(t *testing.T) {
		access, refresh, _ := app.registerUser(t, "logout@example.com", "password123")

		rec := app.request("POST", "/api/v1/auth/logout", "", access)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("logout failed: %d %s", rec.Code, rec.Body.String())
		}

		rec = app.request("POST", "/api/v1/auth/refresh",
			fmt.Sprintf(`{"refresh_token":%q}`, refresh), "")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 after logout, got %d", rec.Code)
		}
	})

	t.Run("protected routes require a token", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/budget-inputs", "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 without a token, got %d", rec.Code)
		}
	})

	t.Run("refresh token cannot be used as an access token", func(t *testing.T) {
		_, refresh, _ := app.registerUser(t, "sneaky@example.com", "password123")

		rec := app.request("GET", "/api/v1/budget-inputs", "", refresh)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 for a refresh token, got %d", rec.Code)
		}
	})

	t.Run("account locks after repeated failures", func(t *testing.T) {
		app.registerUser(t, "locked@example.com", "password123")

		for i := 0; i < 5; i++ {
			rec := app.request("POST", "/api/v1/auth/login",
				`{"email":"locked@example.com","password":"wrong"}`, "")
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("attempt %d: expected 401, got %d", i, rec.Code)
			}
		}

		rec := app.request("POST", "/api/v1/auth/login",
			`{"email":"locked@example.com","password":"password123"}`, "")
		if rec.Code != http.StatusLocked {
			t.Errorf("expected 423 while locked, got %d", rec.Code)
		}
	})

	t.Run("catalogs are public", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/catalogs", "", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("catalogs failed: %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if len(result["budget_codes"].([]interface{})) != 18 {
			t.Errorf("expected 18 budget codes")
		}
	})
}
