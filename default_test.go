package tsid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/theory-cloud/tsid"
)

// The default generator is process-wide state, so these tests do not run in
// parallel and restore the stock default on exit.

func TestMake(t *testing.T) {
	defer tsid.SetDefault(nil)

	a := tsid.Make()
	b := tsid.Make()
	require.Greater(t, b, a)
}

func TestDefaultStockGenerator(t *testing.T) {
	defer tsid.SetDefault(nil)

	gen := tsid.Default()
	require.NotNil(t, gen)
	require.Equal(t, 0, gen.NodeBits())
	require.Equal(t, 22, gen.CounterBits())
	require.Equal(t, 0, gen.Node())
}

func TestSetDefault(t *testing.T) {
	defer tsid.SetDefault(nil)

	custom, err := tsid.NewGenerator(tsid.WithNode(3), tsid.WithNodeBits(8))
	require.NoError(t, err)

	tsid.SetDefault(custom)
	require.Same(t, custom, tsid.Default())

	id := tsid.Make()
	require.Equal(t, uint32(3), id.Random()>>custom.CounterBits())

	tsid.SetDefault(nil)
	restored := tsid.Default()
	require.NotSame(t, custom, restored)
	require.Equal(t, 0, restored.NodeBits())
}
