// Package keepalive exposes a tiny HTTP endpoint so hosting platforms
// that probe the process keep it awake.
package keepalive

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Server answers liveness probes
type Server struct {
	addr   string
	engine *gin.Engine
}

// New creates a keep-alive server listening on addr
func New(addr string) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "I'm alive")
	})

	return &Server{
		addr:   addr,
		engine: engine,
	}
}

// Run serves probes until the process exits. Intended to be called in
// its own goroutine.
func (s *Server) Run() {
	logger := log.With().Str("component", "keepalive").Logger()
	logger.Info().Str("addr", s.addr).Msg("keep-alive endpoint listening")

	if err := s.engine.Run(s.addr); err != nil {
		logger.Error().Err(err).Msg("keep-alive endpoint stopped")
	}
}
