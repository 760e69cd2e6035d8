package server

import (
	"embed"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/FernandoGuns/Dash-Vendas/internal/api"
	"github.com/FernandoGuns/Dash-Vendas/internal/config"
	"github.com/FernandoGuns/Dash-Vendas/internal/fact"
)

//go:embed index.html
var staticFiles embed.FS

// Server is the dashboard HTTP server.
type Server struct {
	router  *gin.Engine
	handler *api.Handler
}

// New creates the server over an already-built fact snapshot.
func New(cfg *config.AppConfig, snap *fact.Snapshot) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	handler := api.NewHandler(
		snap,
		cfg.Dashboard.TopN,
		config.ExportDir(cfg),
		time.Duration(cfg.Dashboard.ExportTTLMinutes)*time.Minute,
	)

	s := &Server{
		router:  gin.Default(),
		handler: handler,
	}
	s.setupRoutes(cfg.Server.DevMode)
	return s
}

func (s *Server) setupRoutes(devMode bool) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	apiGroup := s.router.Group("/api")
	{
		s.handler.RegisterRoutes(apiGroup)
	}

	if devMode {
		// Proxy everything else to the frontend dev server.
		s.router.NoRoute(func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, "http://localhost:5173"+c.Request.URL.Path)
		})
		return
	}

	index := func(c *gin.Context) {
		data, err := staticFiles.ReadFile("index.html")
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	}
	s.router.GET("/", index)
	s.router.NoRoute(index)
}

// Run starts the HTTP listener.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
