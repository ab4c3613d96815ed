package catalog

import (
	"context"
	"sync"
)

// Source provides the two reference lists the catalog is built from
type Source interface {
	ModeEntries(ctx context.Context) ([]Entry, error)
	MunicipalityEntries(ctx context.Context) ([]Entry, error)
}

// Catalog holds the transport mode and municipality registries
type Catalog struct {
	Modes          *Registry
	Municipalities *Registry
}

// Load builds both registries, modes first. It performs exactly two fetches.
func Load(ctx context.Context, src Source, opts ...Option) (*Catalog, error) {
	modes, err := Build(ctx, src.ModeEntries, append(opts, WithName("modes"))...)
	if err != nil {
		return nil, err
	}
	municipalities, err := Build(ctx, src.MunicipalityEntries, append(opts, WithName("municipalities"))...)
	if err != nil {
		return nil, err
	}
	return &Catalog{Modes: modes, Municipalities: municipalities}, nil
}

// Lazy loads a Catalog on first use. The result, or the error, of that
// first load is returned by every later call; there is no refresh.
type Lazy struct {
	src  Source
	opts []Option

	once sync.Once
	cat  *Catalog
	err  error
}

// NewLazy returns a holder that loads from src on the first Get
func NewLazy(src Source, opts ...Option) *Lazy {
	return &Lazy{src: src, opts: opts}
}

// Get returns the catalog, loading it with ctx if this is the first call
func (l *Lazy) Get(ctx context.Context) (*Catalog, error) {
	l.once.Do(func() {
		l.cat, l.err = Load(ctx, l.src, l.opts...)
	})
	return l.cat, l.err
}
