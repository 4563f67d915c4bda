package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/depsize/pkg/annotate"
	"github.com/matzehuels/depsize/pkg/errors"
	"github.com/matzehuels/depsize/pkg/integrations/npm"
	"github.com/matzehuels/depsize/pkg/sizer"
)

// fileConfig is the on-disk configuration shape (TOML).
type fileConfig struct {
	Enabled    *bool  `toml:"enabled"`
	Registry   string `toml:"registry"`
	Debounce   string `toml:"debounce"` // duration string, e.g. "400ms"
	ModulesDir string `toml:"modules_dir"`
	CacheTTL   string `toml:"cache_ttl"` // duration string; "0s" never expires
}

// settings is the merged runtime configuration: defaults, then config
// file, then command-line flags.
type settings struct {
	enabled    bool
	registry   string
	debounce   time.Duration
	modulesDir string
	cacheTTL   time.Duration
	noCache    bool
	refresh    bool
}

func defaultSettings() settings {
	return settings{
		enabled:    true,
		registry:   npm.DefaultRegistry,
		debounce:   annotate.DefaultDebounce,
		modulesDir: sizer.DefaultModulesDir,
		cacheTTL:   24 * time.Hour,
	}
}

// defaultConfigPath returns the config file location using XDG standard
// (~/.config/depsize/config.toml).
func defaultConfigPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}

// loadSettings merges the config file at path over the defaults. An empty
// path falls back to the default location, where a missing file is not an
// error; an explicitly given path must exist.
func loadSettings(path string) (settings, error) {
	s := defaultSettings()

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
	}
	if path == "" {
		return s, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return s, errors.New(errors.ErrCodeInvalidConfig, "config file not found: %s", path)
		}
		return s, nil
	}

	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return s, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config file %s", path)
	}

	if fc.Enabled != nil {
		s.enabled = *fc.Enabled
	}
	if fc.Registry != "" {
		s.registry = fc.Registry
	}
	if fc.ModulesDir != "" {
		s.modulesDir = fc.ModulesDir
	}
	if fc.Debounce != "" {
		d, err := time.ParseDuration(fc.Debounce)
		if err != nil {
			return s, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid debounce %q", fc.Debounce)
		}
		s.debounce = d
	}
	if fc.CacheTTL != "" {
		d, err := time.ParseDuration(fc.CacheTTL)
		if err != nil {
			return s, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid cache_ttl %q", fc.CacheTTL)
		}
		s.cacheTTL = d
	}
	return s, nil
}

// =============================================================================
// Flags
// =============================================================================

// runFlags are the flags shared by the annotate and watch commands.
// Explicitly set flags override config-file values.
type runFlags struct {
	configPath string
	registry   string
	debounce   time.Duration
	modulesDir string
	noCache    bool
	refresh    bool
}

func addRunFlags(cmd *cobra.Command, f *runFlags) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "config file (default ~/.config/depsize/config.toml)")
	cmd.Flags().StringVar(&f.registry, "registry", npm.DefaultRegistry, "npm registry base URL")
	cmd.Flags().DurationVar(&f.debounce, "debounce", annotate.DefaultDebounce, "quiet period after an edit before re-annotating")
	cmd.Flags().StringVar(&f.modulesDir, "modules-dir", sizer.DefaultModulesDir, "installed packages directory name")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the persistent registry response cache")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "bypass cached registry responses")
}

// resolveSettings loads the config file and applies explicitly set flags
// on top.
func resolveSettings(cmd *cobra.Command, f *runFlags) (settings, error) {
	s, err := loadSettings(f.configPath)
	if err != nil {
		return s, err
	}
	if cmd.Flags().Changed("registry") {
		s.registry = f.registry
	}
	if cmd.Flags().Changed("debounce") {
		s.debounce = f.debounce
	}
	if cmd.Flags().Changed("modules-dir") {
		s.modulesDir = f.modulesDir
	}
	if f.noCache {
		s.noCache = true
	}
	if f.refresh {
		s.refresh = true
	}
	return s, nil
}
