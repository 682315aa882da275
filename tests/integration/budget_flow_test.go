package integration

import (
	"net/http"
	"testing"
)

func TestBudgetInputFlow(t *testing.T) {
	app := setupApp(t)
	access, _, _ := app.registerUser(t, "budget@example.com", "password123")

	t.Run("save then upsert on the same line", func(t *testing.T) {
		rec := app.request("PUT", "/api/v1/budget-inputs",
			`{"object_of_expenditure":"Travelling Expenses","province":"Camiguin","budget_code":"CPBI","proposed_amount":1000}`,
			access)
		if rec.Code != http.StatusOK {
			t.Fatalf("save failed: %d %s", rec.Code, rec.Body.String())
		}
		first := parseJSON(t, rec)
		firstID := first["id"].(string)

		rec = app.request("PUT", "/api/v1/budget-inputs",
			`{"object_of_expenditure":"Travelling Expenses","province":"Camiguin","budget_code":"CPBI","proposed_amount":2500}`,
			access)
		if rec.Code != http.StatusOK {
			t.Fatalf("second save failed: %d %s", rec.Code, rec.Body.String())
		}
		second := parseJSON(t, rec)
		if second["id"] != firstID {
			t.Errorf("upsert should keep the original id: %v vs %v", second["id"], firstID)
		}
		if second["proposed_amount"] != float64(2500) {
			t.Errorf("amount = %v, want 2500", second["proposed_amount"])
		}

		rec = app.request("GET", "/api/v1/budget-inputs", "", access)
		list := parseJSON(t, rec)
		if list["total_items"] != float64(1) {
			t.Errorf("expected a single row after upsert, got %v", list["total_items"])
		}
	})

	t.Run("rejects off-catalog values", func(t *testing.T) {
		rec := app.request("PUT", "/api/v1/budget-inputs",
			`{"object_of_expenditure":"Travelling Expenses","province":"Atlantis","budget_code":"CPBI","proposed_amount":10}`,
			access)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("delete by triple", func(t *testing.T) {
		rec := app.request("DELETE",
			"/api/v1/budget-inputs?object_of_expenditure=Travelling+Expenses&province=Camiguin&budget_code=CPBI",
			"", access)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("delete failed: %d %s", rec.Code, rec.Body.String())
		}

		rec = app.request("GET", "/api/v1/budget-inputs", "", access)
		list := parseJSON(t, rec)
		if list["total_items"] != float64(0) {
			t.Errorf("expected an empty store, got %v", list["total_items"])
		}
	})

	t.Run("delete with nothing to identify the row", func(t *testing.T) {
		rec := app.request("DELETE", "/api/v1/budget-inputs", "", access)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})
}

func TestExpenseFlow(t *testing.T) {
	app := setupApp(t)
	access, _, _ := app.registerUser(t, "expense@example.com", "password123")

	t.Run("save accepts the legacy amount field", func(t *testing.T) {
		rec := app.request("PUT", "/api/v1/expenses",
			`{"object_of_expenditure":"Travelling Expenses","province":"Camiguin","budget_code":"CPBI","amount":300}`,
			access)
		if rec.Code != http.StatusOK {
			t.Fatalf("save failed: %d %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["expense_amount"] != float64(300) {
			t.Errorf("expense_amount = %v, want 300", result["expense_amount"])
		}
	})

	t.Run("import keeps rows with blanked fields", func(t *testing.T) {
		rec := app.request("POST", "/api/v1/expenses/import",
			`{"expenses":[
				{"object_of_expenditure":"Training Expenses","province":"Somewhere Else","budget_code":"FIES","expense_amount":50},
				{"object_of_expenditure":"Training Expenses","province":"Bukidnon","budget_code":"FIES","expense_amount":75}
			]}`,
			access)
		if rec.Code != http.StatusOK {
			t.Fatalf("import failed: %d %s", rec.Code, rec.Body.String())
		}

		rec = app.request("GET", "/api/v1/expenses?category=Training+Expenses", "", access)
		list := parseJSON(t, rec)
		if list["total_items"] != float64(2) {
			t.Errorf("expected 2 imported rows, got %v", list["total_items"])
		}
	})

	t.Run("delete by triple removes every expense on the line", func(t *testing.T) {
		rec := app.request("DELETE",
			"/api/v1/expenses?object_of_expenditure=Training+Expenses&province=Bukidnon&budget_code=FIES",
			"", access)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("delete failed: %d %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("delete of a missing row is 404", func(t *testing.T) {
		rec := app.request("DELETE", "/api/v1/expenses?id=no-such-row", "", access)
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})
}

func TestTransferFlow(t *testing.T) {
	app := setupApp(t)
	access, _, _ := app.registerUser(t, "transfer@example.com", "password123")

	t.Run("create and list", func(t *testing.T) {
		rec := app.request("POST", "/api/v1/transfers", `{
			"from_object": "Travelling Expenses",
			"from_province": "Camiguin",
			"from_budget": "CPBI",
			"to_object": "Training Expenses",
			"to_province": "Bukidnon",
			"to_budget": "FIES",
			"amount": 500
		}`, access)
		if rec.Code != http.StatusCreated {
			t.Fatalf("create failed: %d %s", rec.Code, rec.Body.String())
		}

		rec = app.request("GET", "/api/v1/transfers", "", access)
		if rec.Code != http.StatusOK {
			t.Fatalf("list failed: %d", rec.Code)
		}
	})

	t.Run("same line transfer is rejected", func(t *testing.T) {
		rec := app.request("POST", "/api/v1/transfers", `{
			"from_object": "Travelling Expenses",
			"from_province": "Camiguin",
			"from_budget": "CPBI",
			"to_object": "Travelling Expenses",
			"to_province": "Camiguin",
			"to_budget": "CPBI",
			"amount": 100
		}`, access)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		errObj := result["error"].(map[string]interface{})
		if errObj["code"] != "SAME_LINE_TRANSFER" {
			t.Errorf("code = %v", errObj["code"])
		}
	})
}
