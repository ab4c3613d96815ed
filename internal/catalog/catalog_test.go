package catalog

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	modes          []Entry
	municipalities []Entry
	err            error

	modeCalls         atomic.Int32
	municipalityCalls atomic.Int32
}

func (s *fakeSource) ModeEntries(context.Context) ([]Entry, error) {
	s.modeCalls.Add(1)
	return s.modes, s.err
}

func (s *fakeSource) MunicipalityEntries(context.Context) ([]Entry, error) {
	s.municipalityCalls.Add(1)
	return s.municipalities, s.err
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		modes: []Entry{{Name: "METRO", Code: "4"}, {Name: "CERCANÍAS", Code: "5"}},
		municipalities: []Entry{
			{Name: "MADRID", Code: "4279"},
			{Name: "ÁLAMO, EL", Code: "4004"},
		},
	}
}

func TestLoad(t *testing.T) {
	src := newFakeSource()
	cat, err := Load(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, "modes", cat.Modes.Name())
	assert.Equal(t, "municipalities", cat.Municipalities.Name())

	code, err := cat.Municipalities.Code("ALAMO_EL")
	require.NoError(t, err)
	assert.Equal(t, 4004, code)

	assert.EqualValues(t, 1, src.modeCalls.Load())
	assert.EqualValues(t, 1, src.municipalityCalls.Load())
}

func TestLoad_Error(t *testing.T) {
	src := newFakeSource()
	src.err = errors.New("dial tcp: no route to host")

	_, err := Load(context.Background(), src)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.EqualValues(t, 0, src.municipalityCalls.Load(), "municipalities must not be fetched after modes failed")
}

func TestLazy_LoadsOnce(t *testing.T) {
	src := newFakeSource()
	lazy := NewLazy(src)

	assert.EqualValues(t, 0, src.modeCalls.Load(), "nothing fetched before first use")

	var wg sync.WaitGroup
	results := make([]*Catalog, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cat, err := lazy.Get(context.Background())
			assert.NoError(t, err)
			results[i] = cat
		}(i)
	}
	wg.Wait()

	for _, cat := range results {
		assert.Same(t, results[0], cat)
	}
	assert.EqualValues(t, 1, src.modeCalls.Load())
	assert.EqualValues(t, 1, src.municipalityCalls.Load())
}

func TestLazy_CachesError(t *testing.T) {
	src := newFakeSource()
	src.err = errors.New("timeout")
	lazy := NewLazy(src)

	_, err1 := lazy.Get(context.Background())
	_, err2 := lazy.Get(context.Background())
	assert.ErrorIs(t, err1, ErrUpstreamUnavailable)
	assert.Equal(t, err1, err2)
	assert.EqualValues(t, 1, src.modeCalls.Load())
}
