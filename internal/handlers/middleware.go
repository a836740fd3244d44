package handlers

import (
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"

	"gitlab.com/contact-site.net/internal/core/ports/primary"
	"gitlab.com/contact-site.net/internal/handlers/response"
	"gitlab.com/contact-site.net/internal/static/errs"
)

const RequestIDHeader = "X-Request-ID"

type MiddlewareProvider struct {
	adminTokens primary.AdminTokenService
	corsOrigin  string
	logger      primary.Logger
}

func New(adminTokens primary.AdminTokenService, corsOrigin string, logger primary.Logger) *MiddlewareProvider {
	return &MiddlewareProvider{
		adminTokens: adminTokens,
		corsOrigin:  corsOrigin,
		logger:      logger,
	}
}

// AdminMiddleware requires a valid admin bearer token when a secret is configured.
// Without a secret it lets every request through.
func (m *MiddlewareProvider) AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.adminTokens == nil || !m.adminTokens.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.WriteError(w, response.NewError(http.StatusUnauthorized, errs.Unauthorized.Error()))
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if err := m.adminTokens.VerifyToken(tokenString); err != nil {
			m.logger.Warn("Rejected admin token", "path", r.URL.Path, "error", err)
			response.WriteError(w, response.NewError(http.StatusUnauthorized, errs.Unauthorized.Error()))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// CORS mirrors the permissive cors() setup the site's scripts expect and answers preflights.
func (m *MiddlewareProvider) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.corsOrigin != "" {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", m.corsOrigin)
			h.Set("Access-Control-Allow-Methods", "GET,HEAD,PUT,PATCH,POST,DELETE")
			h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, If-None-Match")
			h.Set("Access-Control-Expose-Headers", "ETag, "+RequestIDHeader)
			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// Recoverer turns a handler panic into the 500 JSON envelope.
func (m *MiddlewareProvider) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}
			m.logger.Error("Recovered from panic",
				"method", r.Method,
				"path", r.URL.Path,
				"panic", rvr,
				"stack", string(debug.Stack()))
			response.WriteError(w, response.NewError(http.StatusInternalServerError, errs.Internal.Error()))
		}()
		next.ServeHTTP(w, r)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// RequestLogger tags each request with an id and logs it once served.
func (m *MiddlewareProvider) RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		m.logger.Info("HTTP request",
			"requestId", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"remote", r.RemoteAddr,
			"duration", time.Since(start).Round(time.Microsecond).String())
	})
}
