// Package serve hosts the calendar widget over HTTP.
package serve

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"tableflip.dev/cal/pkg/config"
)

// Server runs the HTTP host view.
type Server struct {
	Handler *Handler
	Addr    string
	Logger  *slog.Logger

	// ConfigFile, when set together with Watch, is re-read on change and
	// its week start applied to the running handler.
	ConfigFile string
	Watch      bool

	OnListening func(net.Addr)
}

// Do listens on Addr and serves until ctx is cancelled.
func (s *Server) Do(ctx context.Context) error {
	if s.Handler == nil {
		return errors.New("serve: no handler")
	}
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	addr := s.Addr
	if addr == "" {
		addr = config.DefaultAddr
	}
	if ctx == nil {
		ctx = context.Background()
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	if s.OnListening != nil {
		s.OnListening(ln.Addr())
	}
	logger.Info("calendar server listening", "addr", ln.Addr().String())

	if s.Watch && s.ConfigFile != "" {
		updates, err := config.Watch(ctx, s.ConfigFile)
		if err != nil {
			_ = ln.Close()
			return err
		}
		go func() {
			for cfg := range updates {
				logger.Info("config reloaded", "file", s.ConfigFile, "weekstart", cfg.WeekStart.String())
				s.Handler.SetWeekStart(cfg.WeekStart)
			}
		}()
	}

	httpSrv := &http.Server{
		Handler:           s.Handler.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	err = httpSrv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		logger.Info("calendar server stopped")
		return nil
	}
	return err
}
