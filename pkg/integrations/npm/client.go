// Package npm fetches published package sizes from an npm-compatible registry.
package npm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/matzehuels/depsize/pkg/httputil"
	"github.com/matzehuels/depsize/pkg/integrations"
)

// DefaultRegistry is the public npm registry base URL.
const DefaultRegistry = "https://registry.npmjs.org"

// Packument holds the subset of a package's full registry metadata needed
// for size annotation: the "latest" dist-tag and the unpacked size of each
// published version that reports one.
type Packument struct {
	Name   string           `json:"name"`
	Latest string           `json:"latest"`
	Sizes  map[string]int64 `json:"sizes"`
}

// Size returns the unpacked size of the given published version.
// Versions without a numeric unpackedSize field report false.
func (p *Packument) Size(version string) (int64, bool) {
	n, ok := p.Sizes[version]
	return n, ok
}

// Client fetches package size metadata from an npm-compatible registry.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a registry client. baseURL defaults to [DefaultRegistry]
// when empty; cache may be nil to disable response caching.
func NewClient(baseURL string, cache *httputil.Cache) *Client {
	if baseURL == "" {
		baseURL = DefaultRegistry
	}
	return &Client{
		Client:  integrations.NewClient(cache, nil),
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// FetchVersionSize returns the unpacked size reported for one exact
// published version (GET {registry}/{name}/{version} → dist.unpackedSize).
// A missing or non-numeric size field is an error.
func (c *Client) FetchVersionSize(ctx context.Context, pkg, version string, refresh bool) (int64, error) {
	pkg = strings.TrimSpace(pkg)
	key := "npm:" + pkg + "@" + version

	var size int64
	err := c.Cached(ctx, key, refresh, &size, func() error {
		var data versionResponse
		url := c.baseURL + "/" + integrations.EscapeName(pkg) + "/" + integrations.EscapeName(version)
		if err := c.Get(ctx, url, &data); err != nil {
			if errors.Is(err, integrations.ErrNotFound) {
				return fmt.Errorf("%w: npm package %s@%s", err, pkg, version)
			}
			return err
		}
		n, ok := numericSize(data.Dist.UnpackedSize)
		if !ok {
			return fmt.Errorf("unpacked size missing for %s@%s", pkg, version)
		}
		size = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return size, nil
}

// FetchPackument returns the full package metadata
// (GET {registry}/{name}) reduced to dist-tags.latest and per-version
// unpacked sizes. Versions with a missing or non-numeric unpackedSize are
// omitted from the result rather than failing the whole lookup.
func (c *Client) FetchPackument(ctx context.Context, pkg string, refresh bool) (*Packument, error) {
	pkg = strings.TrimSpace(pkg)
	key := "npm:" + pkg

	var info Packument
	err := c.Cached(ctx, key, refresh, &info, func() error {
		var data registryResponse
		if err := c.Get(ctx, c.baseURL+"/"+integrations.EscapeName(pkg), &data); err != nil {
			if errors.Is(err, integrations.ErrNotFound) {
				return fmt.Errorf("%w: npm package %s", err, pkg)
			}
			return err
		}

		info = Packument{
			Name:   data.Name,
			Latest: data.DistTags.Latest,
			Sizes:  make(map[string]int64, len(data.Versions)),
		}
		for version, v := range data.Versions {
			if n, ok := numericSize(v.Dist.UnpackedSize); ok {
				info.Sizes[version] = n
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// numericSize extracts an unpackedSize value. The registry reports it as a
// JSON number, but the field is optional and occasionally malformed, so
// anything other than a number is treated as absent.
func numericSize(v any) (int64, bool) {
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	return int64(f), true
}

type registryResponse struct {
	Name     string                     `json:"name"`
	DistTags distTags                   `json:"dist-tags"`
	Versions map[string]versionResponse `json:"versions"`
}

type distTags struct {
	Latest string `json:"latest"`
}

type versionResponse struct {
	Dist dist `json:"dist"`
}

type dist struct {
	UnpackedSize any `json:"unpackedSize"`
}
