package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/internal/config"
	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/layout"
	"github.com/gin-gonic/gin"
)

// Server serves resolved floors and exports for one project directory.
type Server struct {
	projectPath string
	port        int
	cfg         config.Config
	cache       *layout.Cache
}

// New creates a server for the given project directory. The plan is re-read
// on every request so edits show up without a restart; adjacency results
// are shared across requests through a cache.
func New(projectPath string, port int, cfg config.Config) *Server {
	return &Server{
		projectPath: projectPath,
		port:        port,
		cfg:         cfg,
		cache:       layout.NewCache(cfg.CacheSize),
	}
}

// Router builds the HTTP handler.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/", s.handleIndex)

	api := r.Group("/api")
	api.GET("/plan", s.handlePlan)
	api.GET("/validation", s.handleValidation)
	api.POST("/resolve", s.handleResolve)
	api.POST("/export/dxf", s.handleExportDXF)

	floors := api.Group("/floors/:floor")
	floors.GET("/scene", s.handleScene)
	floors.GET("/dxf", s.handleDXF)
	floors.GET("/geojson", s.handleGeoJSON)

	return r
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Floorplan server starting on http://localhost%s", addr)
	log.Printf("Project: %s", s.projectPath)

	return http.ListenAndServe(addr, s.Router())
}

func (s *Server) handleIndex(c *gin.Context) {
	c.Header("Content-Type", "text/html")
	c.String(http.StatusOK, `<!DOCTYPE html>
<html><head><title>Floorplan</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>Floorplan</h1>
<p>API under <code>/api</code>: plan, validation, floors/:floor/{scene,dxf,geojson}.</p>
</div>
</body></html>`)
}
