package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/agentui/pkg/config"
	"github.com/umputun/agentui/pkg/content"
	"github.com/umputun/agentui/pkg/demo"
	"github.com/umputun/agentui/pkg/settings"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/settings.go -pkg mocks -skip-ensure -fmt goimports . SettingsStore
//go:generate moq -out mocks/cluster.go -pkg mocks -skip-ensure -fmt goimports . ClusterSource
//go:generate moq -out mocks/content.go -pkg mocks -skip-ensure -fmt goimports . ContentSource

//go:embed templates
var templatesFS embed.FS

// page templates, each one is a complete document built from the shared components
var pageNames = []string{
	"agents.html",
	"chat.html",
	"chat-multi.html",
	"resource.html",
	"agentgateway.html",
	"cluster.html",
}

// Server represents HTTP server instance
type Server struct {
	config   ConfigProvider
	settings SettingsStore
	cluster  ClusterSource
	pages    ContentSource
	version  string
	debug    bool

	templates     *template.Template            // shared components and fragments
	pageTemplates map[string]*template.Template // complete pages, keyed by file name

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetUIConfig() config.UIConfig
}

// SettingsStore keeps the Agent Gateway settings record
type SettingsStore interface {
	Get() settings.Record
	Update(ctx context.Context, p settings.Patch) settings.Record
	History(ctx context.Context, limit int) ([]settings.Revision, error)
}

// ClusterSource makes cluster dashboard snapshots
type ClusterSource interface {
	Snapshot() demo.ClusterSnapshot
}

// ContentSource provides rendered resource pages
type ContentSource interface {
	Page(name string) (content.Page, error)
}

// New initializes a new server instance
func New(cfg ConfigProvider, store SettingsStore, cluster ClusterSource, pages ContentSource, version string, debug bool) *Server {
	s := &Server{
		config:        cfg,
		settings:      store,
		cluster:       cluster,
		pages:         pages,
		version:       version,
		debug:         debug,
		pageTemplates: make(map[string]*template.Template, len(pageNames)),
		router:        routegroup.New(http.NewServeMux()),
	}

	// templates are embedded, failing to parse them is a programming error
	s.templates = template.Must(template.New("").Funcs(templateFuncs()).ParseFS(templatesFS, "templates/components/*.html"))
	for _, name := range pageNames {
		s.pageTemplates[name] = template.Must(template.New("").Funcs(templateFuncs()).
			ParseFS(templatesFS, "templates/components/*.html", "templates/"+name))
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadTimeout:       timeout,
		ReadHeaderTimeout: timeout,
		WriteTimeout:      timeout,
		IdleTimeout:       timeout,
	}
	srv := s.httpServer
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("agentui", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	// JSON API
	s.router.Mount("/api").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /agents", s.listAgentsHandler)
		r.HandleFunc("GET /admin/agentgateway", s.getAgentGatewayHandler)
		r.HandleFunc("PUT /admin/agentgateway", s.updateAgentGatewayHandler)
		r.HandleFunc("GET /admin/agentgateway/history", s.agentGatewayHistoryHandler)
		r.HandleFunc("GET /admin/cluster", s.clusterHandler)
		r.HandleFunc("GET /user/organizations", s.organizationsHandler)
	})

	// pages
	s.router.HandleFunc("GET /{$}", s.indexHandler)
	s.router.HandleFunc("GET /agents", s.agentsPageHandler)
	s.router.HandleFunc("GET /agents/chat/{namespace}/{name}", s.chatPageHandler)
	s.router.HandleFunc("GET /resources/guides", s.resourcePageHandler("guides"))
	s.router.HandleFunc("GET /resources/examples", s.resourcePageHandler("examples"))
	s.router.HandleFunc("GET /admin/agentgateway", s.agentGatewayPageHandler)
	s.router.HandleFunc("POST /admin/agentgateway", s.agentGatewayFormHandler)
	s.router.HandleFunc("GET /admin/cluster", s.clusterPageHandler)
}
