// Package httputil provides HTTP helpers shared by registry clients:
// a file-based response cache and retry with exponential backoff.
//
// # Caching
//
// [Cache] stores JSON-marshalable values as files keyed by a SHA-256 hash
// of the cache key, with TTL based on file modification time. It is used
// to memoize registry responses across CLI invocations so repeated
// annotation runs do not re-fetch unchanged package metadata.
//
//	cache, err := httputil.NewCache("", 24*time.Hour)
//	if err != nil { ... }
//	var size int64
//	if ok, _ := cache.Get("npm:lodash@4.17.21", &size); !ok {
//	    // fetch and cache.Set(...)
//	}
//
// # Retrying
//
// [Retry] re-executes an operation when it fails with a [RetryableError].
// Registry clients wrap transient failures (network errors, 5xx responses)
// so only those are retried; definitive failures such as 404s or malformed
// bodies are returned immediately.
package httputil
