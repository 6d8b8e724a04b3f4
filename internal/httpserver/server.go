package httpserver

import (
	"context"
	"net/http"
	"strings"
	"time"

	"taskhive/backend/internal/apperror"
	"taskhive/backend/internal/config"
	authusecase "taskhive/backend/internal/usecase/auth"
	reportusecase "taskhive/backend/internal/usecase/report"
	taskusecase "taskhive/backend/internal/usecase/task"
	todousecase "taskhive/backend/internal/usecase/todo"
)

// Server wraps the HTTP server lifecycle.
type Server struct {
	httpServer     *http.Server
	router         *http.ServeMux
	authService    *authusecase.Service
	todoService    *todousecase.Service
	taskService    *taskusecase.Service
	reportService  *reportusecase.Service
	allowedOrigins []string
	addr           string
	isProd         bool
}

// NewServer constructs a new Server with configured dependencies.
func NewServer(cfg config.Config, authService *authusecase.Service, todoService *todousecase.Service, taskService *taskusecase.Service, reportService *reportusecase.Service) *Server {
	mux := http.NewServeMux()
	addr := cfg.HTTPPort
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	handler := withLogging(withCORS(mux, cfg.AllowedOrigins))

	srv := &Server{
		httpServer: &http.Server{
			Handler:      handler,
			ReadTimeout:  time.Duration(cfg.ReadTimeoutSec) * time.Second,
			WriteTimeout: time.Duration(cfg.WriteTimeoutSec) * time.Second,
			IdleTimeout:  time.Duration(cfg.IdleTimeoutSec) * time.Second,
		},
		router:         mux,
		authService:    authService,
		todoService:    todoService,
		taskService:    taskService,
		reportService:  reportService,
		allowedOrigins: cfg.AllowedOrigins,
		addr:           addr,
		isProd:         cfg.IsProduction(),
	}
	srv.httpServer.Addr = addr
	srv.registerRoutes()
	return srv
}

func (s *Server) registerRoutes() {
	s.router.Handle("/", http.HandlerFunc(s.handleRoot))
	s.router.Handle("/health", http.HandlerFunc(s.handleHealth))

	s.router.Handle("/api/auth/signup", s.handle(s.handleSignup))
	s.router.Handle("/api/auth/login", s.handle(s.handleLogin))
	s.router.Handle("/api/auth/logout", s.handle(s.handleLogout))

	authenticated := s.authMiddleware
	s.router.Handle("/api/auth/me", authenticated(s.handle(s.handleMe)))
	s.router.Handle("/api/auth/otp/request", authenticated(s.handle(s.handleOTPRequest)))
	s.router.Handle("/api/auth/otp/verify", authenticated(s.handle(s.handleOTPVerify)))
	s.router.Handle("/api/auth/password/reset", authenticated(s.handle(s.handlePasswordReset)))
	s.router.Handle("/api/auth/providers", authenticated(s.handle(s.handleProviders)))
	s.router.Handle("/api/auth/providers/", authenticated(s.handle(s.handleProviderByName)))

	s.router.Handle("/api/todos", authenticated(s.handle(s.handleTodos)))
	s.router.Handle("/api/todos/", authenticated(s.handle(s.handleTodoByID)))
	s.router.Handle("/api/tasks", authenticated(s.handle(s.handleTasks)))
	s.router.Handle("/api/tasks/", authenticated(s.handle(s.handleTaskByID)))
	s.router.Handle("/api/reports", authenticated(s.handle(s.handleReports)))
	s.router.Handle("/api/reports/", authenticated(s.handle(s.handleReportByID)))
}

// handleRoot answers the bare root path and is also the ServeMux fallback for
// unregistered paths, which get the standard not-found envelope.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.writeError(w, r, apperror.NotFound("Page not found"))
		return
	}
	s.writeSuccess(w, http.StatusOK, "Server is healthy", nil)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// pathParam extracts the trailing path segment after prefix. Nested paths
// below the resource are not routed.
func pathParam(path, prefix string) (string, error) {
	id := strings.TrimPrefix(path, prefix)
	if id == "" || strings.Contains(id, "/") {
		return "", apperror.NotFound("Page not found")
	}
	return id, nil
}

// Start bootstraps the HTTP server on the provided address.
func (s *Server) Start() error {
	s.httpServer.Addr = s.addr
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Router exposes the underlying ServeMux so routes can be registered.
func (s *Server) Router() *http.ServeMux {
	return s.router
}

// Addr returns the configured network address for the HTTP server.
func (s *Server) Addr() string {
	return s.addr
}
