package middleware

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bangasho83/hummane/internal/domain/auth"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func TestLoggerEmitsActorFields(t *testing.T) {
	buf := captureLog(t)

	handler := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/employees", nil)
	req.RemoteAddr = "203.0.113.9:4000"
	req = req.WithContext(WithUser(req.Context(), auth.UserContext{UserID: "user-1", CompanyID: "company-1"}))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var entry struct {
		Method    string `json:"method"`
		Path      string `json:"path"`
		Status    int    `json:"status"`
		UserID    string `json:"userId"`
		CompanyID string `json:"companyId"`
		IP        string `json:"ip"`
	}
	line := strings.TrimSpace(buf.String())
	idx := strings.Index(line, "{")
	if idx < 0 {
		t.Fatalf("expected a JSON log line, got %q", line)
	}
	if err := json.Unmarshal([]byte(line[idx:]), &entry); err != nil {
		t.Fatalf("expected a JSON log line, got %q: %v", line, err)
	}
	if entry.Method != http.MethodGet || entry.Path != "/employees" || entry.Status != http.StatusTeapot {
		t.Fatalf("unexpected request fields: %+v", entry)
	}
	if entry.UserID != "user-1" || entry.CompanyID != "company-1" {
		t.Fatalf("expected actor fields, got %+v", entry)
	}
	if entry.IP != "203.0.113.9" {
		t.Fatalf("expected client ip without port, got %q", entry.IP)
	}
}

func TestLoggerOmitsActorFieldsWhenAnonymous(t *testing.T) {
	buf := captureLog(t)

	handler := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	line := strings.TrimSpace(buf.String())
	if strings.Contains(line, "userId") || strings.Contains(line, "companyId") {
		t.Fatalf("expected no actor fields for anonymous request, got %q", line)
	}
}
