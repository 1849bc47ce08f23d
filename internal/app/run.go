package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/vk/taskflowgo/internal/ctxlog"
	"github.com/vk/taskflowgo/internal/schedule"
	"github.com/vk/taskflowgo/internal/server"
)

// Run executes the main application logic. With a listen address configured
// it serves the HTTP API until the context is cancelled; otherwise it loads
// the plan, computes the order and writes it to the output writer.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.ListenAddr != "" {
		return a.serve(ctx)
	}

	loader, err := a.loaderFor(a.config.PlanPath)
	if err != nil {
		return err
	}

	model, err := loader.Load(ctx, a.config.PlanPath)
	if err != nil {
		return fmt.Errorf("failed to load plan: %w", err)
	}
	a.logger.Debug("Plan loaded.", "task_count", len(model.Tasks))

	order, err := schedule.Order(ctx, model.Tasks)
	if err != nil {
		return fmt.Errorf("failed to schedule plan: %w", err)
	}
	a.logger.Info("Schedule computed.", "task_count", len(order))

	for i, title := range order {
		fmt.Fprintf(a.outW, "%d. %s\n", i+1, title)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// serve runs the HTTP API until ctx is cancelled, then shuts down gracefully.
func (a *App) serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:    a.config.ListenAddr,
		Handler: server.NewRouter(a.logger),
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Schedule API listening.", "address", a.config.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down schedule API...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	a.logger.Debug("Server shut down gracefully.")
	return <-errCh
}
