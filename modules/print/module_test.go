package print

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/ldgraph/internal/sink"
)

func TestNew_Disabled(t *testing.T) {
	s, err := New(context.Background(), sink.Options{})
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestSink_Deliver(t *testing.T) {
	var buf bytes.Buffer
	s, err := New(context.Background(), sink.Options{Print: true, Stdout: &buf})
	require.NoError(t, err)
	require.NotNil(t, s)

	ctx := context.Background()
	require.NoError(t, s.Deliver(ctx, sink.Delivery{Batch: "a", Dataset: []byte("[1]\n")}))
	require.NoError(t, s.Deliver(ctx, sink.Delivery{Batch: "b", Dataset: []byte("[2]\n")}))
	assert.Equal(t, "[1]\n[2]\n", buf.String())
}
