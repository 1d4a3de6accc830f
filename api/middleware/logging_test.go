package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// captureLogger records log calls for assertions
type captureLogger struct {
	infoMessages  []string
	infoFields    []map[string]interface{}
	errorMessages []string
}

func (l *captureLogger) Debug(msg string, fields map[string]interface{}) {}

func (l *captureLogger) Warn(msg string, fields map[string]interface{}) {}

func (l *captureLogger) Info(msg string, fields map[string]interface{}) {
	l.infoMessages = append(l.infoMessages, msg)
	l.infoFields = append(l.infoFields, fields)
}

func (l *captureLogger) Error(msg string, fields map[string]interface{}) {
	l.errorMessages = append(l.errorMessages, msg)
}

func TestRequestLoggingMiddleware_LogsStartAndCompletion(t *testing.T) {
	logger := &captureLogger{}
	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/parse?title=x", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if len(logger.infoMessages) != 2 {
		t.Fatalf("Expected 2 info logs, got %d", len(logger.infoMessages))
	}
	if logger.infoMessages[0] != "Request started" {
		t.Errorf("First log = %q, want Request started", logger.infoMessages[0])
	}
	if logger.infoMessages[1] != "Request completed" {
		t.Errorf("Second log = %q, want Request completed", logger.infoMessages[1])
	}
	if logger.infoFields[1]["status"] != http.StatusOK {
		t.Errorf("Completion log status = %v, want %d", logger.infoFields[1]["status"], http.StatusOK)
	}
}

func TestRequestLoggingMiddleware_SetsRequestIDHeader(t *testing.T) {
	logger := &captureLogger{}
	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if RequestIDFromContext(r.Context()) == "" {
			t.Error("Request ID should be available from the request context")
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Response should carry an X-Request-ID header")
	}
}

func TestRequestLoggingMiddleware_LogsServerErrors(t *testing.T) {
	logger := &captureLogger{}
	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	req := httptest.NewRequest("GET", "/parse-simple?title=x", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if len(logger.errorMessages) != 1 {
		t.Errorf("Expected 1 error log for a 500 response, got %d", len(logger.errorMessages))
	}
}

func TestExtractIP(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "9.9.9.9:1234"

	if got := extractIP(req); got != "9.9.9.9:1234" {
		t.Errorf("extractIP = %q, want RemoteAddr fallback", got)
	}

	req.Header.Set("X-Real-IP", "2.2.2.2")
	if got := extractIP(req); got != "2.2.2.2" {
		t.Errorf("extractIP = %q, want X-Real-IP", got)
	}

	req.Header.Set("X-Forwarded-For", "1.1.1.1, 3.3.3.3")
	if got := extractIP(req); got != "3.3.3.3" {
		t.Errorf("extractIP = %q, want last X-Forwarded-For hop", got)
	}
}
