package comptype

import (
	"reflect"
	"slices"
	"sync"

	"github.com/oliverbestmann/comptype/internal/assert"
	"github.com/pkg/errors"
)

// Partition groups candidate types by the package they originate from.
type Partition struct {
	Path  string
	Types []reflect.Type
}

// TypeSource provides the candidate types a Registry discovers its
// components from.
type TypeSource interface {
	Partitions() ([]Partition, error)
}

// SourceFunc adapts a function to a TypeSource.
type SourceFunc func() ([]Partition, error)

func (fn SourceFunc) Partitions() ([]Partition, error) {
	return fn()
}

// Sources concatenates the partitions of multiple sources. The first
// failing source aborts.
func Sources(sources ...TypeSource) TypeSource {
	return SourceFunc(func() ([]Partition, error) {
		var partitions []Partition

		for idx, source := range sources {
			parts, err := source.Partitions()
			if err != nil {
				return nil, errors.Wrapf(err, "type source %d", idx)
			}

			partitions = append(partitions, parts...)
		}

		return partitions, nil
	})
}

// Catalog collects candidate types registered explicitly during startup.
// Once a registry has read the catalog, it is sealed and does not accept any
// further types.
type Catalog struct {
	mu     sync.Mutex
	sealed bool

	// package paths in order of first registration
	paths []string
	types map[string][]reflect.Type
}

// DefaultCatalog is the catalog read by the Default registry.
var DefaultCatalog = &Catalog{}

// Register adds component type C to the DefaultCatalog. Call it from an
// init function. The comptype-gen tool generates these calls.
func Register[C IsComponent[C]]() {
	ty := reflect.TypeFor[C]()
	if !isComponentType(ty) {
		panic(errors.Wrapf(ErrNotComponent, "register %s", ty))
	}

	DefaultCatalog.Add(ty)
}

// Add records ty as a candidate. It panics if the catalog is already sealed.
func (c *Catalog) Add(ty reflect.Type) {
	assert.NotNil(ty, "type")
	assert.IsNonPointerType(ty)
	assert.IsNamedType(ty)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sealed {
		panic(errors.Wrapf(ErrSealed, "register %s", ty))
	}

	if c.types == nil {
		c.types = map[string][]reflect.Type{}
	}

	path := ty.PkgPath()
	if _, ok := c.types[path]; !ok {
		c.paths = append(c.paths, path)
	}

	c.types[path] = append(c.types[path], ty)
}

// Partitions seals the catalog and returns one partition per package.
func (c *Catalog) Partitions() ([]Partition, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sealed = true

	partitions := make([]Partition, 0, len(c.paths))
	for _, path := range c.paths {
		partitions = append(partitions, Partition{
			Path:  path,
			Types: slices.Clone(c.types[path]),
		})
	}

	return partitions, nil
}

// Sealed reports whether a registry has read this catalog.
func (c *Catalog) Sealed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.sealed
}

// TypesOf returns a source with a single partition holding the given types.
func TypesOf(path string, types ...reflect.Type) TypeSource {
	return SourceFunc(func() ([]Partition, error) {
		return []Partition{{Path: path, Types: types}}, nil
	})
}
