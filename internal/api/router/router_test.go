package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sehatplus/notification-service/internal/notify"
	"github.com/sehatplus/notification-service/internal/pdf"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	sender := notify.NewStubEmailSender(nil)
	delivery := notify.NewFallbackDelivery(sender, "SehatPlus <notifications@sehatplus.pk>", "SehatPlus <onboarding@resend.dev>", nil)
	svc := notify.NewService(delivery, nil, pdf.NewGenerator(pdf.Branding{PlatformName: "SehatPlus"}), nil, notify.ServiceConfig{
		AdminEmail: "admin@sehatplus.pk",
		Platform:   notify.Platform{Name: "SehatPlus"},
	}, nil)
	handler := notify.NewHandler(svc, nil, nil)
	return New(&Config{
		NotifyHandler:      handler,
		CORSAllowedOrigins: []string{"*"},
	})
}

func TestHealthRoute(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestNotifyMountedOnRootAndNamedPath(t *testing.T) {
	r := newTestRouter(t)

	body := `{"type":"order","status":"pending","patientEmail":"p@example.com","patientName":"Ali"}`
	for _, path := range []string{"/", "/notifications"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, "path %s", path)
	}
}

func TestPreflightAnswered(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/notifications", nil)
	req.Header.Set("Origin", "https://app.sehatplus.pk")
	req.Header.Set("Access-Control-Request-Method", "POST")
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestUnknownRoute(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
