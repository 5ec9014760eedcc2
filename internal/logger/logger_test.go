package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// useObserver swaps the global logger for an in-memory one for the duration
// of a test.
func useObserver(t *testing.T) *observer.ObservedLogs {
	core, logs := observer.New(zap.InfoLevel)
	prev := Logger
	Logger = zap.New(core)
	t.Cleanup(func() { Logger = prev })
	return logs
}

func TestGinMiddleware_LogsRequest(t *testing.T) {
	logs := useObserver(t)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(GinMiddleware())
	router.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	router.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/health", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/boom", nil))

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["path"]; got != "/health" {
		t.Errorf("path field = %v, want /health", got)
	}
	if got := entries[0].ContextMap()["status"]; got != int64(http.StatusOK) {
		t.Errorf("status field = %v, want 200", got)
	}
	if entries[1].Level != zap.ErrorLevel {
		t.Errorf("5xx logged at %v, want error", entries[1].Level)
	}
}

func TestDefaultLoggerIsUsableBeforeInit(t *testing.T) {
	// Must not panic.
	Info("no init yet", zap.String("k", "v"))
	Sync()
}
