package registry

import (
	"context"
	"testing"

	"github.com/specialistvlad/ldgraph/internal/config"
	"github.com/specialistvlad/ldgraph/internal/graph"
	"github.com/specialistvlad/ldgraph/internal/sink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopSource() *RegisteredSource {
	return &RegisteredSource{
		Export: func(context.Context, any, ExportInput) (*graph.Graph, error) { return nil, nil },
	}
}

func noopSink() *RegisteredSink {
	return &RegisteredSink{
		New: func(context.Context, sink.Options) (sink.Sink, error) { return nil, nil },
	}
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	t.Parallel()
	r := New()
	r.RegisterSource("b", noopSource())
	r.RegisterSource("a", noopSource())
	r.RegisterSink("print", noopSink())

	_, ok := r.Source("a")
	assert.True(t, ok)
	_, ok = r.Source("missing")
	assert.False(t, ok)
	assert.Equal(t, []string{"a", "b"}, r.SourceNames())
	assert.Equal(t, []string{"print"}, r.SinkNames())
	require.NoError(t, r.ValidateRegistry())
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	t.Parallel()
	r := New()
	r.RegisterSource("a", noopSource())
	r.RegisterSink("a", noopSink())

	assert.Panics(t, func() { r.RegisterSource("a", noopSource()) })
	assert.Panics(t, func() { r.RegisterSink("a", noopSink()) })
}

func TestValidateRegistry_NilHandlers(t *testing.T) {
	t.Parallel()
	r := New()
	r.RegisterSource("empty", &RegisteredSource{})
	r.RegisterSink("nosink", nil)

	err := r.ValidateRegistry()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source 'empty' has no export function")
	assert.Contains(t, err.Error(), "sink 'nosink' has no factory")
}

func TestValidateProfile(t *testing.T) {
	t.Parallel()
	p, err := config.NewModel().Profile("forum")
	require.NoError(t, err)

	r := New()
	err = r.ValidateProfile(context.Background(), p)
	require.ErrorIs(t, err, config.ErrUnknownSource)

	r.RegisterSource(p.Source, noopSource())
	require.NoError(t, r.ValidateProfile(context.Background(), p))
}
