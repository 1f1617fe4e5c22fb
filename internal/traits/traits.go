// Package traits provides the optional trait allowlist capability used by the
// normalizer. A provider returning a nil set means "accept any trait"; a
// populated set means "drop traits not in this set". The cached provider is
// safe for concurrent reads and resettable without locking: writers only ever
// replace the whole cached set, never mutate it in place.
package traits

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

// Set is a collection of recognized trait slugs.
type Set map[string]struct{}

// NewSet builds a set from a list of slugs.
func NewSet(slugs ...string) Set {
	s := make(Set, len(slugs))
	for _, slug := range slugs {
		s[slug] = struct{}{}
	}
	return s
}

// Contains reports whether the slug is in the set.
func (s Set) Contains(slug string) bool {
	_, ok := s[slug]
	return ok
}

// Provider supplies the current trait allowlist. Implementations must be safe
// to call repeatedly and from multiple goroutines; returning nil disables
// trait filtering entirely.
type Provider interface {
	Allowlist() Set
}

// StaticProvider returns a fixed allowlist. Useful for tests and callers that
// manage their own trait data.
type StaticProvider struct {
	Set Set
}

// Allowlist returns the fixed set.
func (p *StaticProvider) Allowlist() Set {
	return p.Set
}

// CachedProvider lazily populates an allowlist from a loader function on first
// use and serves the cached set afterwards. Reset clears the cache so the next
// read reloads; the swap is a whole-pointer replacement, so concurrent readers
// always see either the old complete set or the new one.
type CachedProvider struct {
	load  func() (Set, error)
	cache atomic.Pointer[Set]
}

// NewCachedProvider creates a cached provider around a loader function.
func NewCachedProvider(load func() (Set, error)) *CachedProvider {
	return &CachedProvider{load: load}
}

// Allowlist returns the cached set, loading it on first use. A loader error
// degrades to nil, i.e. no filtering, rather than failing normalization.
func (p *CachedProvider) Allowlist() Set {
	if cached := p.cache.Load(); cached != nil {
		return *cached
	}
	set, err := p.load()
	if err != nil {
		return nil
	}
	p.cache.Store(&set)
	return set
}

// Reset discards the cached set. The next Allowlist call reloads.
func (p *CachedProvider) Reset() {
	p.cache.Store(nil)
}

// NewFileProvider creates a cached provider that loads trait slugs from a
// JSON or YAML file holding a flat list of strings.
func NewFileProvider(path string) *CachedProvider {
	return NewCachedProvider(func() (Set, error) {
		return LoadFile(path)
	})
}

// LoadFile reads a trait slug list from a JSON or YAML file.
func LoadFile(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading trait file: %w", err)
	}

	var slugs []string
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &slugs); err != nil {
			return nil, fmt.Errorf("parsing trait file %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &slugs); err != nil {
			return nil, fmt.Errorf("parsing trait file %s: %w", path, err)
		}
	}

	return NewSet(slugs...), nil
}
