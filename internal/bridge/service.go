package bridge

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/visform/jtbridge/internal/convert"
	"github.com/visform/jtbridge/internal/dispatch"
	"github.com/visform/jtbridge/internal/tools"
	"github.com/visform/jtbridge/internal/version"
)

// Config configures the daemon runtime.
type Config struct {
	Addr           string
	AllowedOrigins []string
	TempDir        string
	ShutdownGrace  time.Duration
}

// DefaultConfig binds the bridge to the loopback default port.
func DefaultConfig() Config {
	return Config{
		Addr:          "127.0.0.1:9876",
		ShutdownGrace: 5 * time.Second,
	}
}

func (c Config) validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return errors.New("bridge: listen addr must not be blank")
	}
	if c.ShutdownGrace <= 0 {
		return errors.New("bridge: shutdown grace must be positive")
	}
	return nil
}

// Service runs the bridge server lifecycle as a standalone process.
type Service struct {
	cfg    Config
	server *Server
}

// NewService composes the conversion pipeline, dispatcher, and server.
func NewService(cfg Config) *Service {
	pipeline := convert.NewPipeline(tools.ExecRunner{}, cfg.TempDir)
	dispatcher := dispatch.New(pipeline)
	return &Service{cfg: cfg, server: NewServer(dispatcher, cfg.AllowedOrigins)}
}

// Run serves until SIGINT or SIGTERM, then shuts down within the configured
// grace period.
func (s *Service) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.RunContext(ctx)
}

// RunContext serves until ctx is cancelled or the listener fails.
func (s *Service) RunContext(ctx context.Context) error {
	if err := s.cfg.validate(); err != nil {
		return err
	}

	httpSrv := &http.Server{Addr: s.cfg.Addr, Handler: s.server.Router()}
	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", s.cfg.Addr).
			Str("version", version.Version).
			Msg("jtbridge listening")
		err := httpSrv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Dur("grace", s.cfg.ShutdownGrace).Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownGrace)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("bridge shutdown: %w", err)
	}
	return <-errCh
}
