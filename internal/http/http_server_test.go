package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"gitlab.com/contact-site.net/internal/adapter/crypto"
	"gitlab.com/contact-site.net/internal/adapter/file/submissionrepository"
	"gitlab.com/contact-site.net/internal/adapter/logging"
	"gitlab.com/contact-site.net/internal/config"
	"gitlab.com/contact-site.net/internal/core/services/contact"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestServer(t *testing.T, jwt *config.JwtConfig) *Server {
	t.Helper()
	dir := t.TempDir()
	static := filepath.Join(dir, "website")
	require.NoError(t, os.MkdirAll(static, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(static, "index.html"), []byte("<h1>Welcome</h1>"), 0o644))

	logger := logging.NewNopLogger()
	repo, err := submissionrepository.New(filepath.Join(dir, "data", "submissions.json"), logger)
	require.NoError(t, err)

	cfg := &config.HTTPConfig{
		Port:         0,
		StaticDir:    static,
		CORSOrigin:   "*",
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
		IdleTimeout:  time.Second,
	}
	provider := NewServiceProvider(contact.NewContactService(repo, nil, logger), crypto.NewAdminTokenService(jwt))
	srv := NewServer(cfg, "contactSite", *provider, logger)
	require.NoError(t, srv.Init())
	return srv
}

func TestServer_Routes(t *testing.T) {
	srv := newTestServer(t, &config.JwtConfig{})
	h := srv.Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, "ok", rec.Body.String())

	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(`{"name":"Ann Lee","email":"a@b.com","message":"Hello there, this is a test."}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/submissions", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":1`)
}

func TestServer_AdminGuard(t *testing.T) {
	srv := newTestServer(t, &config.JwtConfig{Secret: "s3cret", TokenTTL: time.Hour})
	h := srv.Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/submissions", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	tok, err := srv.ServiceProvider.adminTokens.GenerateToken()
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/api/submissions", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_StartStop(t *testing.T) {
	srv := newTestServer(t, &config.JwtConfig{})

	require.NoError(t, srv.Start(context.Background()))
	assert.NotEmpty(t, srv.Addr())
	assert.Error(t, srv.Start(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Stop(ctx))
	assert.Empty(t, srv.Addr())
	require.NoError(t, srv.Stop(ctx))
}

func TestServer_StartBeforeInit(t *testing.T) {
	srv := NewServer(&config.HTTPConfig{}, "contactSite", ServiceProvider{}, logging.NewNopLogger())
	assert.Error(t, srv.Start(context.Background()))
}
