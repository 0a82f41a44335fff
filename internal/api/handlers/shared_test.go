package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestRespondFailure tests the error envelope helper.
// This is an internal test (package handlers, not handlers_test) because
// respondFailure is unexported.
func TestRespondFailure(t *testing.T) {
	t.Run("writes the error envelope with the given status", func(t *testing.T) {
		w := httptest.NewRecorder()

		respondFailure(w, http.StatusBadRequest, "no file uploaded")

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}

		if w.Header().Get("Content-Type") != "application/json" {
			t.Errorf("Expected Content-Type 'application/json', got '%s'", w.Header().Get("Content-Type"))
		}

		var failure FailureResponse
		if err := json.NewDecoder(w.Body).Decode(&failure); err != nil {
			t.Fatalf("decode failure envelope: %v", err)
		}

		if failure.Success {
			t.Error("Expected success to be false")
		}
		if failure.Error != "no file uploaded" {
			t.Errorf("Expected error message passthrough, got '%s'", failure.Error)
		}
	})

	t.Run("serializes with the envelope field names", func(t *testing.T) {
		w := httptest.NewRecorder()

		respondFailure(w, http.StatusInternalServerError, "boom")

		var raw map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
			t.Fatalf("decode raw envelope: %v", err)
		}

		if _, ok := raw["success"]; !ok {
			t.Error("Expected a 'success' field")
		}
		if _, ok := raw["error"]; !ok {
			t.Error("Expected an 'error' field")
		}
	})
}
