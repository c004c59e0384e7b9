// Package cli implements the wavetrace command-line interface.
//
// This package provides commands for rendering timing and bitfield
// documents to SVG, inspecting the signal hierarchy of a document,
// serving the HTTP API, and managing the render artifact cache. The
// CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Render a source document to SVG
//   - inspect: Visualize a document's signal hierarchy via Graphviz
//   - pick: Interactively choose a source file and render it
//   - serve: Run the HTTP render and gallery API
//   - skins: List available skins
//   - cache: Manage the render artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mlandau/wavetrace/pkg/buildinfo"
	"github.com/mlandau/wavetrace/pkg/cache"
	"github.com/mlandau/wavetrace/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "wavetrace"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance with a default logger and the
// defaults from the user's config file, when one exists.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
	cfg, err := loadConfig()
	if err != nil {
		c.Logger.Warn("ignoring config file", "error", err)
	}
	c.Config = cfg
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "wavetrace",
		Short:        "Wavetrace renders digital timing diagrams and register bitfields",
		Long:         `Wavetrace turns compact textual descriptions of digital signals and register layouts into SVG diagrams, from the command line or over HTTP.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.pickCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.skinsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/wavetrace/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
