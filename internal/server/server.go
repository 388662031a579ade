// Package server hosts the HTTP boundary for the voice interview bot. One
// implementation serves both deployment modes: standalone (endpoints under
// /api on a bundled listener) and function-hosted (endpoints at the root,
// handler exported for the host to mount).
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/ALPHA-CODE-HUB/voice-vot/internal/chat"
	"github.com/ALPHA-CODE-HUB/voice-vot/internal/transcribe"
)

// maxBodyBytes caps request bodies. Audio uploads arrive as base64 data
// URLs embedded in JSON, so the ceiling is generous.
const maxBodyBytes = 50 << 20 // 50 MiB

// Config holds server configuration.
type Config struct {
	Port       int
	BasePath   string // URL prefix for API routes ("/api" standalone, "" function-hosted)
	Production bool   // serve the built client from PublicDir
	PublicDir  string // directory containing the built client
}

// Server is the HTTP boundary over the chat and transcription services.
type Server struct {
	cfg        Config
	chatSvc    *chat.Service
	sttSvc     *transcribe.Service
	router     chi.Router
	httpServer *http.Server
}

// New creates a server over the given services.
func New(cfg Config, chatSvc *chat.Service, sttSvc *transcribe.Service) *Server {
	s := &Server{
		cfg:     cfg,
		chatSvc: chatSvc,
		sttSvc:  sttSvc,
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(limitBody(maxBodyBytes))

	// CORS: any origin may call the API; the browser client is served from
	// arbitrary hosts during development.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	mount := func(r chi.Router) {
		r.Get("/ping", handlePing)
		chat.RegisterRoutes(r, s.chatSvc)
		transcribe.RegisterRoutes(r, s.sttSvc)
	}
	if s.cfg.BasePath != "" {
		r.Route(s.cfg.BasePath, mount)
	} else {
		mount(r)
	}

	if s.cfg.Production && s.cfg.PublicDir != "" {
		s.serveClient(r)
	}

	return r
}

// handlePing reports liveness. It checks no dependencies.
func handlePing(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// serveClient serves the built browser client, falling back to index.html
// for non-API paths so client-side routing works.
func (s *Server) serveClient(r chi.Router) {
	fs := http.FileServer(http.Dir(s.cfg.PublicDir))
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet || (s.cfg.BasePath != "" && strings.HasPrefix(req.URL.Path, s.cfg.BasePath+"/")) {
			http.NotFound(w, req)
			return
		}
		path := filepath.Join(s.cfg.PublicDir, filepath.Clean("/"+req.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fs.ServeHTTP(w, req)
			return
		}
		http.ServeFile(w, req, filepath.Join(s.cfg.PublicDir, "index.html"))
	})
}

// limitBody caps each request body at n bytes.
func limitBody(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}

// Handler returns the router, for function hosts that mount it themselves.
func (s *Server) Handler() http.Handler { return s.router }

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Start binds the configured port and serves until Shutdown. If the port is
// already in use, the next port upward is tried until one binds. This only
// happens at boot, before any request is served.
func (s *Server) Start() error {
	ln, port, err := listen(s.cfg.Port)
	if err != nil {
		return err
	}

	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logrus.Infof("Server running on port %d", port)
	return s.httpServer.Serve(ln)
}

// listen binds the first free TCP port at or above the given one.
func listen(port int) (net.Listener, int, error) {
	for {
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err != nil {
			if errors.Is(err, syscall.EADDRINUSE) {
				logrus.Warnf("Port %d is busy, trying port %d", port, port+1)
				port++
				continue
			}
			return nil, 0, err
		}
		return ln, port, nil
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
