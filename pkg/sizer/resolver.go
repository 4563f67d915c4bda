// Package sizer resolves a display size for each dependency entry, either
// by querying the npm registry or by measuring an installed directory tree.
//
// Resolution never fails loudly: every error mode (missing package,
// network failure, malformed metadata, unreadable directory) degrades to
// the [Unknown] sentinel for that single entry. The next edit or focus
// event re-attempts naturally, so nothing is retried here beyond the
// transport-level backoff inside the registry client.
package sizer

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/depsize/pkg/cache"
	"github.com/matzehuels/depsize/pkg/integrations/npm"
	"github.com/matzehuels/depsize/pkg/manifest"
	"github.com/matzehuels/depsize/pkg/observability"
)

// Registry is the slice of the npm client the resolver depends on.
// Satisfied by [npm.Client]; tests substitute counting fakes.
type Registry interface {
	FetchVersionSize(ctx context.Context, pkg, version string, refresh bool) (int64, error)
	FetchPackument(ctx context.Context, pkg string, refresh bool) (*npm.Packument, error)
}

// Options configures a Resolver.
type Options struct {
	// Registry serves remote size lookups. Required.
	Registry Registry

	// Store memoizes resolved display strings for the process lifetime.
	// Defaults to a fresh in-memory store.
	Store cache.Store

	// ModulesDir is the installed-packages folder name beneath the
	// manifest's directory. Defaults to [DefaultModulesDir].
	ModulesDir string

	// Refresh bypasses the registry client's response cache.
	Refresh bool

	// Logger receives debug output for degraded lookups.
	Logger *log.Logger
}

// Resolver turns dependency entries into display size strings.
// It is safe for concurrent use; a resolution batch fans out one goroutine
// per distinct lookup key.
type Resolver struct {
	registry   Registry
	store      cache.Store
	modulesDir string
	refresh    bool
	logger     *log.Logger
}

// New creates a Resolver from opts.
func New(opts Options) *Resolver {
	if opts.Store == nil {
		opts.Store = cache.NewMemoryStore()
	}
	if opts.ModulesDir == "" {
		opts.ModulesDir = DefaultModulesDir
	}
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Resolver{
		registry:   opts.Registry,
		store:      opts.Store,
		modulesDir: opts.ModulesDir,
		refresh:    opts.Refresh,
		logger:     opts.Logger,
	}
}

// Store returns the resolver's result cache.
func (r *Resolver) Store() cache.Store { return r.store }

// Key returns the canonical lookup key for an entry: "name@version" for
// registry lookups, or the normalized absolute installation path for
// local file references. Entries with equal keys always resolve to the
// same display string within a pass.
func (r *Resolver) Key(e manifest.Entry, manifestDir string) string {
	if IsLocal(e.Version) {
		path := InstallPath(manifestDir, r.modulesDir, e.Name)
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		return filepath.Clean(path)
	}
	return e.Name + "@" + e.Version
}

// Resolve returns the display size for one entry, consulting the result
// cache first. It never returns an error; failures yield [Unknown].
func (r *Resolver) Resolve(ctx context.Context, e manifest.Entry, manifestDir string) string {
	key := r.Key(e, manifestDir)

	if v, ok := r.store.Get(key); ok {
		observability.Cache().OnCacheHit(ctx, key)
		return v
	}
	observability.Cache().OnCacheMiss(ctx, key)
	observability.Resolve().OnResolveStart(ctx, key)
	start := time.Now()

	display := r.lookup(ctx, e, manifestDir)

	r.store.Set(key, display)
	observability.Cache().OnCacheSet(ctx, key)
	observability.Resolve().OnResolveComplete(ctx, key, display, time.Since(start))
	return display
}

func (r *Resolver) lookup(ctx context.Context, e manifest.Entry, manifestDir string) string {
	if IsLocal(e.Version) {
		return r.lookupInstalled(e, manifestDir)
	}
	return r.lookupRegistry(ctx, e)
}

func (r *Resolver) lookupInstalled(e manifest.Entry, manifestDir string) string {
	path := InstallPath(manifestDir, r.modulesDir, e.Name)
	size, err := PathSize(path)
	if err != nil {
		r.logger.Debug("installed size unavailable", "package", e.Name, "path", path, "err", err)
		return Unknown
	}
	return FormatBytes(size)
}

func (r *Resolver) lookupRegistry(ctx context.Context, e manifest.Entry) string {
	if IsExact(e.Version) {
		size, err := r.registry.FetchVersionSize(ctx, e.Name, e.Version, r.refresh)
		if err != nil {
			r.logger.Debug("registry size unavailable", "package", e.Name, "version", e.Version, "err", err)
			return Unknown
		}
		return FormatBytes(size)
	}

	p, err := r.registry.FetchPackument(ctx, e.Name, r.refresh)
	if err != nil {
		r.logger.Debug("registry metadata unavailable", "package", e.Name, "err", err)
		return Unknown
	}

	// A wildcard spec that names a version present in the metadata wins
	// over the latest tag.
	if size, ok := p.Size(e.Version); ok {
		return FormatBytes(size)
	}
	if size, ok := p.Size(p.Latest); ok {
		return FormatBytes(size)
	}
	r.logger.Debug("latest tag unresolvable", "package", e.Name, "latest", p.Latest)
	return Unknown
}
