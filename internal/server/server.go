package server

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/mivnecheck/mivnecheck/internal/feasibility"
)

// Server wires the rights and feasibility engines behind an HTTP API.
type Server struct {
	engine *feasibility.Engine
	router *gin.Engine
}

// New builds a server with its routes registered.
func New() *Server {
	s := &Server{engine: feasibility.NewEngine()}

	router := gin.New()
	router.Use(gin.Recovery())

	v1 := router.Group("/api/v1")
	v1.POST("/rights", s.handleRights)
	v1.POST("/feasibility", s.handleFeasibility)
	router.GET("/healthz", s.handleHealth)

	s.router = router
	return s
}

// Router exposes the gin engine for tests and embedding.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts serving on the given port and blocks.
func (s *Server) Run(port int) error {
	return s.router.Run(fmt.Sprintf(":%d", port))
}
