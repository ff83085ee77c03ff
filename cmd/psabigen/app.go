// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/invowk/psabigen/internal/config"
	"github.com/invowk/psabigen/internal/issue"

	"github.com/charmbracelet/log"
)

type (
	// App wires CLI services and per-invocation state. Every Cobra handler
	// receives an App reference instead of reading package globals.
	App struct {
		Config ConfigProvider
		stdout io.Writer
		stderr io.Writer
		logger *log.Logger

		// Set by flags and by loadConfig before any RunE executes.
		verbose bool
		cfgFile string
		cfg     *config.Config
		cfgPath string
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Stdout io.Writer
		Stderr io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, string, error)
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}

	return &App{
		Config: deps.Config,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
		logger: log.NewWithOptions(deps.Stderr, log.Options{Prefix: config.AppName}),
		cfg:    config.DefaultConfig(),
	}
}

// loadConfig resolves the configuration for this invocation. A broken config
// found by lookup is reported and replaced by the defaults; a broken file
// named with --config is fatal.
func (a *App) loadConfig(ctx context.Context) error {
	cfg, path, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: a.cfgFile})
	if err != nil {
		if a.cfgFile != "" {
			a.renderIssue(issue.ConfigLoadFailedId)
			return err
		}
		_, _ = io.WriteString(a.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, a.verbose)+"\n")
		cfg, path = config.DefaultConfig(), ""
	}

	if !a.verbose {
		a.verbose = cfg.UI.Verbose
	}
	if a.verbose {
		a.logger.SetLevel(log.DebugLevel)
	}

	a.cfg, a.cfgPath = cfg, path
	if path == "" {
		a.logger.Debug("using default configuration")
	} else {
		a.logger.Debug("loaded configuration", "path", path)
	}
	return nil
}
