package http

// this is entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"sync"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/mux"

	"gitlab.com/contact-site.net/internal/config"
	"gitlab.com/contact-site.net/internal/core/ports/primary"
	"gitlab.com/contact-site.net/internal/core/services/contact"
	"gitlab.com/contact-site.net/internal/handlers"
	"gitlab.com/contact-site.net/internal/handlers/contacts"
)

type ServiceProvider struct {
	contactService contact.IContactService
	adminTokens    primary.AdminTokenService
}

func NewServiceProvider(
	contactService contact.IContactService,
	adminTokens primary.AdminTokenService,
) *ServiceProvider {
	return &ServiceProvider{
		contactService: contactService,
		adminTokens:    adminTokens,
	}
}

type Server struct {
	handler         http.Handler
	cfg             *config.HTTPConfig
	ServiceName     string
	ServiceProvider ServiceProvider
	logger          primary.Logger

	mu       sync.Mutex
	srv      *http.Server
	listener net.Listener
	done     chan struct{}
}

func NewServer(cfg *config.HTTPConfig, serviceName string, serviceProvider ServiceProvider, logger primary.Logger) *Server {
	return &Server{
		cfg:             cfg,
		ServiceName:     serviceName,
		ServiceProvider: serviceProvider,
		logger:          logger,
	}
}

func (s *Server) Init() error {
	mw := handlers.New(s.ServiceProvider.adminTokens, s.cfg.CORSOrigin, s.logger)

	r := mux.NewRouter()
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	contacts.
		NewContactHandler(s.ServiceProvider.contactService, s.logger).
		RegisterRoutes(r, mw.AdminMiddleware)

	if s.cfg.StaticDir != "" {
		if info, err := os.Stat(s.cfg.StaticDir); err != nil || !info.IsDir() {
			s.logger.Warn("Static directory not found, site assets will 404", "dir", s.cfg.StaticDir)
		}
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(s.cfg.StaticDir)))
	}

	var h http.Handler = r
	h = mw.CORS(h)
	h = mw.Recoverer(h)
	h = mw.RequestLogger(h)
	h = chimw.RealIP(h)
	s.handler = h
	return nil
}

// Handler returns the fully wrapped handler; Init must run first.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start binds the listener synchronously so port errors surface here,
// then serves in the background.
func (s *Server) Start(ctx context.Context) error {
	if s.handler == nil {
		return errors.New("server not initialized")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.srv != nil {
		return errors.New("server already started")
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", fmt.Sprintf(":%d", s.cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", s.cfg.Port, err)
	}

	srv := &http.Server{
		Handler:      s.handler,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}
	s.srv = srv
	s.listener = ln
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		s.logger.Info("Server listening", "service", s.ServiceName, "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
		}
	}()
	return nil
}

// Addr returns the bound address once started
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop drains in-flight requests until ctx expires.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	srv, done := s.srv, s.done
	s.srv, s.listener = nil, nil
	s.mu.Unlock()

	if srv == nil {
		return nil
	}
	s.logger.Info("Shutting down http server...")
	err := srv.Shutdown(ctx)
	<-done
	return err
}
