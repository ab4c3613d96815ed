package catalog

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	prom "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobil-koeln/crtm-cli/internal/observability"
)

func staticFetch(entries ...Entry) FetchFunc {
	return func(context.Context) ([]Entry, error) {
		return entries, nil
	}
}

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Debug(string, ...interface{}) {}
func (l *recordingLogger) Info(string, ...interface{})  {}
func (l *recordingLogger) Error(string, ...interface{}) {}
func (l *recordingLogger) Warn(msg string, _ ...interface{}) {
	l.warnings = append(l.warnings, msg)
}

func TestBuild_Modes(t *testing.T) {
	reg, err := Build(context.Background(), staticFetch(
		Entry{Name: "METRO", Code: "4"},
		Entry{Name: "CERCANÍAS", Code: "5"},
	), WithName("modes"))
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"METRO": 4, "CERCANIAS": 5}, reg.Map())
	assert.Equal(t, []string{"METRO", "CERCANIAS"}, reg.Identifiers())
	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, "modes", reg.Name())
	assert.Empty(t, reg.Collisions())

	code, ok := reg.Lookup("CERCANIAS")
	assert.True(t, ok)
	assert.Equal(t, 5, code)

	id, ok := reg.IdentifierOf(4)
	assert.True(t, ok)
	assert.Equal(t, "METRO", id)

	entry, ok := reg.Entry("CERCANIAS")
	assert.True(t, ok)
	assert.Equal(t, "CERCANÍAS", entry.Name)
}

func TestBuild_Idempotent(t *testing.T) {
	fetch := staticFetch(
		Entry{Name: "MADRID", Code: "4279"},
		Entry{Name: "ÁLAMO, EL", Code: "4004"},
		Entry{Name: "Álamo (El)", Code: "4005"},
	)
	first, err := Build(context.Background(), fetch)
	require.NoError(t, err)
	second, err := Build(context.Background(), fetch)
	require.NoError(t, err)

	assert.Equal(t, first.Map(), second.Map())
	assert.Equal(t, first.Identifiers(), second.Identifiers())
}

func TestBuild_CollisionLastWriteWins(t *testing.T) {
	log := &recordingLogger{}
	metrics := observability.NewMetricsForTesting()

	reg, err := Build(context.Background(), staticFetch(
		Entry{Name: "AUTOBUSES URBANOS", Code: "6"},
		Entry{Name: "AUTOBUSES INTERURBANOS", Code: "8"},
		Entry{Name: "Autobuses, urbanos", Code: "9"},
	), WithName("modes"), WithLogger(log), WithMetrics(metrics))
	require.NoError(t, err)

	code, err := reg.Code("AUTOBUSES_URBANOS")
	require.NoError(t, err)
	assert.Equal(t, 9, code)
	assert.Equal(t, []string{"AUTOBUSES_URBANOS", "AUTOBUSES_INTERURBANOS"}, reg.Identifiers())

	collisions := reg.Collisions()
	require.Len(t, collisions, 1)
	assert.Equal(t, "AUTOBUSES_URBANOS", collisions[0].Identifier)
	assert.Equal(t, "6", collisions[0].Previous.Code)
	assert.Equal(t, "9", collisions[0].Current.Code)

	_, ok := reg.IdentifierOf(6)
	assert.False(t, ok, "overwritten code should not map back")
	id, _ := reg.IdentifierOf(9)
	assert.Equal(t, "AUTOBUSES_URBANOS", id)

	assert.Len(t, log.warnings, 1)
	assert.Equal(t, 1.0, prom.ToFloat64(metrics.CatalogCollision.WithLabelValues("modes")))
}

func TestBuild_FetchError(t *testing.T) {
	cause := errors.New("connection refused")
	_, err := Build(context.Background(), func(context.Context) ([]Entry, error) {
		return nil, cause
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.ErrorIs(t, err, cause)
}

func TestBuild_NonIntegerCode(t *testing.T) {
	_, err := Build(context.Background(), staticFetch(
		Entry{Name: "METRO", Code: "4"},
		Entry{Name: "BROKEN", Code: "x5"},
	))
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestBuild_EmptyNameStillInserted(t *testing.T) {
	reg, err := Build(context.Background(), staticFetch(
		Entry{Name: "", Code: "1"},
		Entry{Name: "123", Code: "2"},
	))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"": 1, "_": 2}, reg.Map())
}

func TestBuild_FetchCalledOnce(t *testing.T) {
	var calls atomic.Int32
	_, err := Build(context.Background(), func(context.Context) ([]Entry, error) {
		calls.Add(1)
		return []Entry{{Name: "METRO", Code: "4"}}, nil
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, calls.Load())
}

func TestRegistry_CodeUnknown(t *testing.T) {
	reg, err := Build(context.Background(), staticFetch(Entry{Name: "METRO", Code: "4"}))
	require.NoError(t, err)

	_, err = reg.Code("TRANVIA")
	assert.ErrorIs(t, err, ErrUnknownIdentifier)
}

func TestRegistry_Resolve(t *testing.T) {
	reg, err := Build(context.Background(), staticFetch(
		Entry{Name: "METRO", Code: "4"},
		Entry{Name: "CERCANÍAS", Code: "5"},
	))
	require.NoError(t, err)

	tests := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{"METRO", 4, false},
		{"cercanías", 5, false},
		{"5", 5, false},
		{" 10 ", 10, false},
		{"bus", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := reg.Resolve(tt.arg)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownIdentifier)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCode(t *testing.T) {
	code, ok := ParseCode(" 4279 ")
	assert.True(t, ok)
	assert.Equal(t, 4279, code)

	_, ok = ParseCode("FUENLABRADA")
	assert.False(t, ok)

	_, ok = ParseCode("")
	assert.False(t, ok)
}

func TestRegistry_CopiesAreIndependent(t *testing.T) {
	reg, err := Build(context.Background(), staticFetch(Entry{Name: "METRO", Code: "4"}))
	require.NoError(t, err)

	m := reg.Map()
	m["METRO"] = 99
	ids := reg.Identifiers()
	ids[0] = "CHANGED"

	code, _ := reg.Lookup("METRO")
	assert.Equal(t, 4, code)
	assert.Equal(t, []string{"METRO"}, reg.Identifiers())
}
