package app

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/vk/taskflowgo/internal/hclplan"
	"github.com/vk/taskflowgo/internal/jsonplan"
	"github.com/vk/taskflowgo/internal/plan"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config

	// loaders maps a plan file extension to the loader for that format.
	loaders map[string]plan.Loader
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and the plan loaders
// for every supported format registered.
func NewApp(outW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loaders: map[string]plan.Loader{
			".hcl":  hclplan.NewLoader(),
			".json": jsonplan.NewLoader(),
		},
	}
}

// loaderFor selects a plan loader by path. Directories are treated as HCL
// plan directories; files are dispatched on their extension.
func (a *App) loaderFor(path string) (plan.Loader, error) {
	ext := filepath.Ext(path)
	if ext == "" || ext == "." {
		// No extension means a directory (or a bare path); the HCL loader
		// handles directory discovery itself.
		return a.loaders[".hcl"], nil
	}

	loader, ok := a.loaders[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported plan format %q (expected .hcl or .json)", ext)
	}
	return loader, nil
}
