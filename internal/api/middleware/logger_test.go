package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/1ShivamPandey/apnafinance/internal/api/middleware"
	"github.com/1ShivamPandey/apnafinance/internal/logging"
)

func TestLogger(t *testing.T) {
	t.Run("logs method, path, and status", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewLoggerWithOutput("info", &buf)

		handler := middleware.Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code != http.StatusTeapot {
			t.Errorf("Expected middleware to pass the status through, got %d", w.Code)
		}

		var line map[string]interface{}
		if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
			t.Fatalf("decode log line: %v (raw: %s)", err, buf.String())
		}

		if line["method"] != "GET" {
			t.Errorf("Expected method GET, got %v", line["method"])
		}
		if line["path"] != "/api/system/health" {
			t.Errorf("Expected path /api/system/health, got %v", line["path"])
		}
		if line["status"] != float64(http.StatusTeapot) {
			t.Errorf("Expected status 418, got %v", line["status"])
		}
		if _, ok := line["duration"]; !ok {
			t.Error("Expected a duration field")
		}
	})

	t.Run("defaults the status to 200 when the handler never writes one", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewLoggerWithOutput("info", &buf)

		handler := middleware.Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			//nolint:errcheck // body write result is irrelevant here
			w.Write([]byte("ok"))
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		var line map[string]interface{}
		if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
			t.Fatalf("decode log line: %v", err)
		}
		if line["status"] != float64(http.StatusOK) {
			t.Errorf("Expected status 200, got %v", line["status"])
		}
	})

	t.Run("strips CR and LF from logged values", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewLoggerWithOutput("info", &buf)

		handler := middleware.Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		req := httptest.NewRequest(http.MethodGet, "/search", nil)
		req.URL.Path = "/bad\r\npath"
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		var line map[string]interface{}
		if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
			t.Fatalf("decode log line: %v", err)
		}
		if line["path"] != "/badpath" {
			t.Errorf("Expected sanitized path '/badpath', got %v", line["path"])
		}
	})
}
