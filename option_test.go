package comptype_test

import (
	"testing"

	"github.com/oliverbestmann/comptype"
	"github.com/stretchr/testify/require"
)

func TestOption(t *testing.T) {
	some := comptype.Some(12)

	value, ok := some.Get()
	require.True(t, ok)
	require.Equal(t, 12, value)
	require.True(t, some.IsSome())
	require.Equal(t, 12, some.OrValue(5))
	require.Equal(t, 12, some.OrDefault())

	none := comptype.None[int]()

	_, ok = none.Get()
	require.False(t, ok)
	require.False(t, none.IsSome())
	require.Equal(t, 5, none.OrValue(5))
	require.Equal(t, 0, none.OrDefault())

	var zero comptype.Option[string]
	require.False(t, zero.IsSome())
}
