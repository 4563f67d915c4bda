// Package cli implements the depsize command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/depsize/pkg/buildinfo"
	"github.com/matzehuels/depsize/pkg/cache"
	"github.com/matzehuels/depsize/pkg/httputil"
	"github.com/matzehuels/depsize/pkg/integrations/npm"
	"github.com/matzehuels/depsize/pkg/sizer"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "depsize"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetLogOutput redirects the logger's output.
func (c *CLI) SetLogOutput(w io.Writer) {
	c.Logger.SetOutput(w)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "depsize",
		Short:        "Depsize annotates package.json dependencies with their size",
		Long:         `Depsize reads a package.json manifest and labels every dependency declaration with its installed or registry-reported size, either once or live as the file changes.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.annotateCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Resolver Factory
// =============================================================================

// newResolver builds the size resolver for one command invocation: npm
// client (with the persistent response cache unless disabled) plus a fresh
// in-memory result store.
func (c *CLI) newResolver(s settings) *sizer.Resolver {
	var responses *httputil.Cache
	if !s.noCache {
		if dir, err := cacheDir(); err == nil {
			if fc, err := httputil.NewCache(dir, s.cacheTTL); err == nil {
				responses = fc
			}
		}
	}
	return sizer.New(sizer.Options{
		Registry:   npm.NewClient(s.registry, responses),
		Store:      cache.NewMemoryStore(),
		ModulesDir: s.modulesDir,
		Refresh:    s.refresh,
		Logger:     c.Logger,
	})
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/depsize/).
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
