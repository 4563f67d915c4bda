// Package pkg provides the core libraries for depsize manifest annotation.
//
// # Overview
//
// Depsize labels every dependency declared in a package.json with its
// installed or registry-reported size. The pkg directory is organized by
// pipeline stage:
//
//  1. [manifest] - Positional extraction of dependency declarations
//  2. [sizer] - Size resolution (npm registry or installed directory)
//  3. [cache] - Process-lifetime result memoization
//  4. [annotate] - Event handling, debouncing, and label rendering
//  5. [integrations] - npm registry client with response caching
//
// # Architecture
//
// The typical data flow through depsize:
//
//	Document event (open/change/focus)
//	         ↓
//	manifest.Parse → entries with line anchors
//	         ↓
//	sizer.Resolver → display strings (cached, concurrent)
//	         ↓
//	annotate.Coordinator → grouped paint instructions
//	         ↓
//	Host surface (terminal view, one-shot print)
//
// Supporting packages: [errors] for coded errors, [httputil] for the file
// response cache and retry, [observability] for instrumentation hooks,
// [buildinfo] for version metadata.
package pkg
