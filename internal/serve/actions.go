package serve

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/bouwdoc/viewtype/internal/common"
)

// ServeAction starts the HTTP detection service.
func ServeAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	engine, err := common.BuildEngine(c.String("catalog"), c.Bool("language"))
	if err != nil {
		logger.Error("failed to build engine", "error", err)
		os.Exit(2)
	}

	server := NewServer(engine, logger)
	httpServer := &http.Server{
		Addr:         c.String("addr"),
		Handler:      server.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving view-type detection", "addr", httpServer.Addr, "version", Version)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(2)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error", "error", err)
		}
	}

	return nil
}
