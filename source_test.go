package comptype_test

import (
	"reflect"
	"testing"

	"github.com/oliverbestmann/comptype"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()

	defer func() {
		value := recover()
		require.NotNil(t, value, "expected a panic")

		err, ok := value.(error)
		require.True(t, ok, "expected an error, got %v", value)
		require.ErrorIs(t, err, target)
	}()

	fn()
}

func TestCatalogPartitions(t *testing.T) {
	var catalog comptype.Catalog

	catalog.Add(reflect.TypeFor[Position]())
	catalog.Add(reflect.TypeFor[comptype.Descriptor]())
	catalog.Add(reflect.TypeFor[Velocity]())

	require.False(t, catalog.Sealed())

	partitions, err := catalog.Partitions()
	require.NoError(t, err)
	require.True(t, catalog.Sealed())

	require.Equal(t, []comptype.Partition{
		{
			Path:  "github.com/oliverbestmann/comptype_test",
			Types: typesOf(Position{}, Velocity{}),
		},
		{
			Path:  "github.com/oliverbestmann/comptype",
			Types: typesOf(comptype.Descriptor{}),
		},
	}, partitions)
}

func TestCatalogSealed(t *testing.T) {
	var catalog comptype.Catalog
	catalog.Add(reflect.TypeFor[Position]())

	r := comptype.New(&catalog, quiet)
	require.NoError(t, r.Build())

	requirePanicsWith(t, comptype.ErrSealed, func() {
		catalog.Add(reflect.TypeFor[Velocity]())
	})

	// the registry is not affected by the rejected type
	count, err := r.Len()
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestCatalogRejectsInvalidTypes(t *testing.T) {
	var catalog comptype.Catalog

	require.Panics(t, func() { catalog.Add(nil) })
	require.Panics(t, func() { catalog.Add(reflect.TypeFor[*Position]()) })
	require.Panics(t, func() { catalog.Add(reflect.TypeFor[struct{ X int }]()) })

	partitions, err := catalog.Partitions()
	require.NoError(t, err)
	require.Empty(t, partitions)
}

func TestSources(t *testing.T) {
	source := comptype.Sources(
		comptype.TypesOf("first", reflect.TypeFor[Position]()),
		comptype.TypesOf("second", reflect.TypeFor[Velocity](), reflect.TypeFor[Player]()),
	)

	partitions, err := source.Partitions()
	require.NoError(t, err)
	require.Len(t, partitions, 2)
	require.Equal(t, "first", partitions[0].Path)
	require.Equal(t, "second", partitions[1].Path)
	require.Len(t, partitions[1].Types, 2)
}

func TestSourcesFailure(t *testing.T) {
	cause := errors.New("broken")

	source := comptype.Sources(
		comptype.TypesOf("first", reflect.TypeFor[Position]()),
		comptype.SourceFunc(func() ([]comptype.Partition, error) { return nil, cause }),
	)

	partitions, err := source.Partitions()
	require.ErrorIs(t, err, cause)
	require.Nil(t, partitions)
}

func TestNewRequiresSource(t *testing.T) {
	require.Panics(t, func() { comptype.New(nil) })
}
