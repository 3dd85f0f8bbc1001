package seq_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/katalvlaran/corelib"
	"github.com/katalvlaran/corelib/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIterate_Nil ensures a nil source is rejected.
func TestIterate_Nil(t *testing.T) {
	err := seq.Iterate[int](nil)
	assert.ErrorIs(t, err, corelib.ErrNilArgument)
	assert.Equal(t, "source", corelib.ParamOf(err))
}

// TestIterate_VisitsAll ensures every element is pulled exactly once.
func TestIterate_VisitsAll(t *testing.T) {
	for size := 0; size <= 3; size++ {
		starts := 0
		require.NoError(t, seq.Iterate(counted(items(size), &starts)))
		assert.Equal(t, 1, starts)
	}

	visited := 0
	source := func(yield func(int) bool) {
		for i := 0; i < 5; i++ {
			visited++
			if !yield(i) {
				return
			}
		}
	}
	require.NoError(t, seq.Iterate(source))
	assert.Equal(t, 5, visited)
}

// TestIterateE_StopsAtFirstError checks the first error is returned and iteration stops.
func TestIterateE_StopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	after := false
	source := func(yield func(int, error) bool) {
		if !yield(1, nil) || !yield(0, boom) {
			return
		}
		after = true
	}
	assert.ErrorIs(t, seq.IterateE(source), boom)
	assert.False(t, after)

	assert.ErrorIs(t, seq.IterateE[int](nil), corelib.ErrNilArgument)
}

// TestCollect gathers values and stops at the first error.
func TestCollect(t *testing.T) {
	out, err := seq.Insert(slices.Values([]string{"a"}), 0, "z")
	require.NoError(t, err)
	got, err := seq.Collect(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a"}, got)

	_, err = seq.Collect[int](nil)
	assert.ErrorIs(t, err, corelib.ErrNilArgument)
}
