package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ycwang-tw/etf-dashboard-backend/internal/api/handlers"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/model"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/testutil"
)

// TestLedgerHandler_CreateEntry tests the POST /api/ledger endpoint.
//
// WHY: The ledger is write-heavy compared to the rest of the API. An entry
// for an untracked symbol must be rejected with 400, not silently recorded
// against a position that does not exist.
func TestLedgerHandler_CreateEntry(t *testing.T) {
	t.Run("records a buy for a tracked symbol", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestLedgerService(t, db)
		handler := handlers.NewLedgerHandler(svc)

		testutil.CreateHolding(t, db, "0050")

		body := `{"symbol":"0050","date":"2025-03-10","shares":100,"amount":15000,"reinvested":0}`
		req := httptest.NewRequest(http.MethodPost, "/api/ledger/", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.CreateEntry(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
		}

		var response model.LedgerEntry
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if response.ID == "" {
			t.Error("Expected generated entry ID")
		}
		if response.Amount != 15000 {
			t.Errorf("Expected amount 15000, got %v", response.Amount)
		}

		testutil.AssertRowCount(t, db, "ledger_entry", 1)
	})

	t.Run("rejects entry for an untracked symbol", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestLedgerService(t, db)
		handler := handlers.NewLedgerHandler(svc)

		body := `{"symbol":"9999","date":"2025-03-10","shares":100,"amount":15000,"reinvested":0}`
		req := httptest.NewRequest(http.MethodPost, "/api/ledger/", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.CreateEntry(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}

		testutil.AssertRowCount(t, db, "ledger_entry", 0)
	})

	t.Run("rejects reinvested exceeding amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestLedgerService(t, db)
		handler := handlers.NewLedgerHandler(svc)

		testutil.CreateHolding(t, db, "0050")

		body := `{"symbol":"0050","date":"2025-03-10","shares":100,"amount":1000,"reinvested":2000}`
		req := httptest.NewRequest(http.MethodPost, "/api/ledger/", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.CreateEntry(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestLedgerService(t, db)
		handler := handlers.NewLedgerHandler(svc)

		testutil.CreateHolding(t, db, "0050")

		body := `{"symbol":"0050","date":"10-03-2025","shares":100,"amount":15000,"reinvested":0}`
		req := httptest.NewRequest(http.MethodPost, "/api/ledger/", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.CreateEntry(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

// TestLedgerHandler_Aggregate tests the GET /api/ledger/aggregate endpoint.
func TestLedgerHandler_Aggregate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestLedgerService(t, db)
	handler := handlers.NewLedgerHandler(svc)

	testutil.CreateHolding(t, db, "0050")
	testutil.CreateLedgerEntry(t, db, "0050", "2025-01-10", 100, 15000, 0)
	testutil.CreateLedgerEntry(t, db, "0050", "2025-02-10", 100, 15500, 500)

	req := httptest.NewRequest(http.MethodGet, "/api/ledger/aggregate", nil)
	w := httptest.NewRecorder()

	handler.Aggregate(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var response map[string]model.LedgerAggregate
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	agg, ok := response["0050"]
	if !ok {
		t.Fatal("Expected aggregate for 0050")
	}
	if agg.Shares != 200 {
		t.Errorf("Expected 200 shares, got %d", agg.Shares)
	}
	if agg.Amount != 30500 {
		t.Errorf("Expected amount 30500, got %v", agg.Amount)
	}
}

// TestLedgerHandler_DeleteEntry tests the DELETE /api/ledger/{uuid} endpoint.
func TestLedgerHandler_DeleteEntry(t *testing.T) {
	t.Run("deletes an existing entry", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestLedgerService(t, db)
		handler := handlers.NewLedgerHandler(svc)

		testutil.CreateHolding(t, db, "0050")
		entry := testutil.CreateLedgerEntry(t, db, "0050", "2025-01-10", 100, 15000, 0)

		req := testutil.NewRequestWithURLParams(
			http.MethodDelete,
			"/api/ledger/"+entry.ID,
			map[string]string{"uuid": entry.ID},
		)
		w := httptest.NewRecorder()

		handler.DeleteEntry(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Expected status 204, got %d: %s", w.Code, w.Body.String())
		}

		testutil.AssertRowCount(t, db, "ledger_entry", 0)
	})

	t.Run("returns 404 for unknown entry", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestLedgerService(t, db)
		handler := handlers.NewLedgerHandler(svc)

		id := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(
			http.MethodDelete,
			"/api/ledger/"+id,
			map[string]string{"uuid": id},
		)
		w := httptest.NewRecorder()

		handler.DeleteEntry(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}
