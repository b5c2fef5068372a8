package bridge

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/visform/jtbridge/internal/dispatch"
	"github.com/visform/jtbridge/internal/observability"
	"github.com/visform/jtbridge/internal/version"
)

const serviceName = "jtbridge"

// Server accepts client connections on the WebSocket endpoint and spawns one
// Session per upgrade. Upgrade failures are logged and acceptance continues;
// the acceptor only stops at process shutdown.
type Server struct {
	dispatcher *dispatch.Dispatcher
	upgrader   websocket.Upgrader
	router     *gin.Engine
	logger     zerolog.Logger
	started    time.Time
}

func NewServer(dispatcher *dispatch.Dispatcher, allowedOrigins []string) *Server {
	observability.RegisterMetrics()
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestTelemetry(log.Logger, serviceName))
	if len(allowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: allowedOrigins,
			AllowMethods: []string{"GET"},
			AllowHeaders: []string{"Origin", "Content-Type"},
			MaxAge:       12 * time.Hour,
		}))
	}
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	s := &Server{
		dispatcher: dispatcher,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// Single trusted client on the same host; the embedding host
			// application controls the origin.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		router:  r,
		logger:  log.With().Str("component", "bridge").Logger(),
		started: time.Now(),
	}
	s.registerRoutes()
	return s
}

// Router exposes the HTTP handler for serving and for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) registerRoutes() {
	s.router.GET("/ws", s.handleUpgrade)

	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(s.started).String(),
			"service": serviceName,
			"version": version.Version,
		})
	})

	s.router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ready":   true,
			"uptime":  time.Since(s.started).String(),
			"service": serviceName,
			"version": version.Version,
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (s *Server) handleUpgrade(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("remote", c.Request.RemoteAddr).
			Msg("websocket upgrade failed")
		return
	}

	observability.RecordConnectionOpened()
	sess := newSession(conn, s.dispatcher, s.logger)
	s.logger.Info().
		Str("session", sess.id).
		Str("remote", conn.RemoteAddr().String()).
		Msg("client connected")

	go func() {
		defer observability.RecordConnectionClosed()
		sess.readLoop()
	}()
}
