package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mobil-koeln/crtm-cli/internal/logger"
	"github.com/mobil-koeln/crtm-cli/internal/observability"
)

var (
	// ErrUpstreamUnavailable indicates the reference list could not be fetched
	// or contained a code that is not an integer
	ErrUpstreamUnavailable = errors.New("reference list unavailable")

	// ErrUnknownIdentifier indicates a symbolic identifier absent from a registry
	ErrUnknownIdentifier = errors.New("unknown identifier")
)

// Entry is one record of a server reference list
type Entry struct {
	Name string
	Code string
}

// Collision records an entry that replaced an earlier one with the same identifier
type Collision struct {
	Identifier string
	Previous   Entry
	Current    Entry
}

// FetchFunc returns the reference entries in server order
type FetchFunc func(ctx context.Context) ([]Entry, error)

// Registry maps symbolic identifiers to numeric codes. It is never modified
// after Build returns and may be shared freely.
type Registry struct {
	name       string
	ids        []string
	codes      map[string]int
	entries    map[string]Entry
	byCode     map[int]string
	collisions []Collision
}

type buildOptions struct {
	name    string
	log     logger.Logger
	metrics *observability.Metrics
}

// Option configures Build and Load
type Option func(*buildOptions)

// WithName labels the registry in logs and metrics
func WithName(name string) Option {
	return func(o *buildOptions) {
		o.name = name
	}
}

// WithLogger sets the logger that reports collisions
func WithLogger(l logger.Logger) Option {
	return func(o *buildOptions) {
		if l != nil {
			o.log = l
		}
	}
}

// WithMetrics counts collisions
func WithMetrics(m *observability.Metrics) Option {
	return func(o *buildOptions) {
		o.metrics = m
	}
}

// Build fetches the entries once and indexes them by normalized name.
// When two names normalize to the same identifier the later entry wins;
// the identifier keeps the position of its first occurrence.
func Build(ctx context.Context, fetch FetchFunc, opts ...Option) (*Registry, error) {
	o := buildOptions{name: "catalog", log: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	entries, err := fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUpstreamUnavailable, o.name, err)
	}

	r := &Registry{
		name:    o.name,
		ids:     make([]string, 0, len(entries)),
		codes:   make(map[string]int, len(entries)),
		entries: make(map[string]Entry, len(entries)),
		byCode:  make(map[int]string, len(entries)),
	}

	for _, e := range entries {
		code, err := strconv.Atoi(strings.TrimSpace(e.Code))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: entry %q has non-integer code %q", ErrUpstreamUnavailable, o.name, e.Name, e.Code)
		}

		id := Normalize(e.Name)
		if prev, ok := r.entries[id]; ok {
			c := Collision{Identifier: id, Previous: prev, Current: e}
			r.collisions = append(r.collisions, c)
			o.log.Warn("identifier collision", "catalog", o.name, "identifier", id,
				"previous", prev.Name, "previous_code", prev.Code, "current", e.Name, "current_code", e.Code)
			o.metrics.ObserveCollision(o.name)
			if old := r.codes[id]; r.byCode[old] == id {
				delete(r.byCode, old)
			}
		} else {
			r.ids = append(r.ids, id)
		}
		r.codes[id] = code
		r.entries[id] = e
		r.byCode[code] = id
	}

	return r, nil
}

// Name returns the registry label
func (r *Registry) Name() string {
	return r.name
}

// Len returns the number of identifiers
func (r *Registry) Len() int {
	return len(r.ids)
}

// Lookup returns the code for an identifier
func (r *Registry) Lookup(id string) (int, bool) {
	code, ok := r.codes[id]
	return code, ok
}

// Code returns the code for an identifier or ErrUnknownIdentifier
func (r *Registry) Code(id string) (int, error) {
	code, ok := r.codes[id]
	if !ok {
		return 0, fmt.Errorf("%w: %s has no %q", ErrUnknownIdentifier, r.name, id)
	}
	return code, nil
}

// ParseCode reports whether arg is a numeric code rather than a name
func ParseCode(arg string) (int, bool) {
	code, err := strconv.Atoi(strings.TrimSpace(arg))
	return code, err == nil
}

// Resolve accepts either a numeric code or a name. Names are normalized
// before lookup, so "Cercanías" finds CERCANIAS.
func (r *Registry) Resolve(arg string) (int, error) {
	if code, ok := ParseCode(arg); ok {
		return code, nil
	}
	return r.Code(Normalize(arg))
}

// IdentifierOf returns the identifier currently mapped to code
func (r *Registry) IdentifierOf(code int) (string, bool) {
	id, ok := r.byCode[code]
	return id, ok
}

// Entry returns the server record behind an identifier
func (r *Registry) Entry(id string) (Entry, bool) {
	e, ok := r.entries[id]
	return e, ok
}

// Identifiers returns the identifiers in first-insertion order
func (r *Registry) Identifiers() []string {
	return append([]string(nil), r.ids...)
}

// Map returns a copy of the identifier to code mapping
func (r *Registry) Map() map[string]int {
	m := make(map[string]int, len(r.codes))
	for k, v := range r.codes {
		m[k] = v
	}
	return m
}

// Collisions returns the overwrites that happened during Build
func (r *Registry) Collisions() []Collision {
	return append([]Collision(nil), r.collisions...)
}
