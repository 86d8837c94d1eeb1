package comptype_test

import (
	"slices"
	"testing"

	"github.com/oliverbestmann/comptype"
	"github.com/stretchr/testify/require"
)

func maskOf(indices ...int) comptype.Mask {
	var mask comptype.Mask
	for _, idx := range indices {
		mask.Set(idx)
	}

	return mask
}

func TestMask(t *testing.T) {
	mask := maskOf(0, 3, 64, 200)

	require.True(t, mask.Has(0))
	require.True(t, mask.Has(64))
	require.True(t, mask.Has(200))
	require.False(t, mask.Has(1))
	require.False(t, mask.Has(1000))
	require.False(t, mask.Has(-1))

	require.Equal(t, 4, mask.Count())
	require.Equal(t, []int{0, 3, 64, 200}, slices.Collect(mask.Indices()))
	require.Equal(t, "{0 3 64 200}", mask.String())

	mask.Clear(64)
	mask.Clear(5000)
	require.False(t, mask.Has(64))
	require.Equal(t, 3, mask.Count())
}

func TestMaskContains(t *testing.T) {
	mask := maskOf(1, 2, 70)

	require.True(t, mask.Contains(maskOf()))
	require.True(t, mask.Contains(maskOf(1, 70)))
	require.False(t, mask.Contains(maskOf(1, 3)))
	require.False(t, mask.Contains(maskOf(1, 130)))

	// trailing empty words do not matter
	sparse := maskOf(1, 130)
	sparse.Clear(130)
	require.True(t, mask.Contains(sparse))

	require.False(t, maskOf().Contains(maskOf(0)))
	require.Equal(t, "{}", maskOf().String())
}

func TestMaskNegativeIndex(t *testing.T) {
	mask := maskOf(0, 63)

	require.NotPanics(t, func() { mask.Clear(-1) })
	require.NotPanics(t, func() { mask.Clear(-64) })
	require.Equal(t, "{0 63}", mask.String())

	require.PanicsWithValue(t, "negative component index -1", func() { mask.Set(-1) })
	require.Equal(t, 2, mask.Count())
}
