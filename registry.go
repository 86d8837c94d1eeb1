package comptype

import (
	"log/slog"
	"maps"
	"reflect"
	"slices"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/oliverbestmann/comptype/internal/assert"
	"github.com/oliverbestmann/comptype/internal/refl"
)

// noCopy can be embedded to provide "go vet" linting
// when a type must not be copied after first use
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

type config struct {
	logger   *slog.Logger
	excluded []string
	modules  []string
}

type RegistryOption func(*config)

// WithLogger sets the logger a registry reports discovery to.
// Defaults to slog.Default(), a nil logger discards all records.
func WithLogger(logger *slog.Logger) RegistryOption {
	return func(c *config) {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}

		c.logger = logger
	}
}

// WithExcludedPackages excludes the given package trees from discovery, in
// addition to the standard library and this package.
func WithExcludedPackages(pkgPaths ...string) RegistryOption {
	return func(c *config) {
		c.excluded = append(c.excluded, pkgPaths...)
	}
}

// WithModules declares additional module paths as user code. Types of the
// main module and of all modules linked into the binary are always user code,
// even if their path has no dot, like a module named "game".
func WithModules(modulePaths ...string) RegistryOption {
	return func(c *config) {
		c.modules = append(c.modules, modulePaths...)
	}
}

// Registry assigns a dense index to each component type of a TypeSource.
//
// The registry is built once, on first use. Building reads and filters all
// candidate types of the source and sorts them by their qualified names, so
// that the same set of types always maps to the same indices. The built
// table is never changed afterward and is safe for concurrent use.
type Registry struct {
	noCopy noCopy

	source TypeSource
	config config

	build func() ([]Descriptor, error)

	// copy on write cache of resolved lookups, keyed by type pointer
	resolved atomic.Pointer[map[unsafe.Pointer]int]
}

func New(source TypeSource, opts ...RegistryOption) *Registry {
	assert.NotNil(source, "source")

	r := &Registry{
		source: source,
		config: config{
			logger:   slog.Default(),
			excluded: []string{runtimePackage},
			modules:  slices.Clone(refl.BuildModules()),
		},
	}

	for _, opt := range opts {
		opt(&r.config)
	}

	r.resolved.Store(&map[unsafe.Pointer]int{})
	r.build = sync.OnceValues(r.buildTable)

	return r
}

func (r *Registry) buildTable() ([]Descriptor, error) {
	logger := r.config.logger
	startTime := time.Now()

	partitions, err := r.source.Partitions()
	if err != nil {
		logger.Error("Failed to read component type source", slog.String("error", err.Error()))
		return nil, err
	}

	types, err := discover(logger, candidateFilter{excluded: r.config.excluded, modules: r.config.modules}, partitions)
	if err != nil {
		logger.Error("Failed to discover component types", slog.String("error", err.Error()))
		return nil, err
	}

	descriptors := make([]Descriptor, len(types))
	for idx, ty := range types {
		descriptors[idx] = describe(ty, idx)

		logger.Debug(
			"New component type registered",
			slog.String("name", descriptors[idx].Name),
			slog.Int("index", idx),
			slog.Bool("zeroSized", descriptors[idx].ZeroSized),
		)
	}

	logger.Info(
		"Component registry built",
		slog.Int("count", len(descriptors)),
		slog.Duration("duration", time.Since(startTime)),
	)

	return descriptors, nil
}

// table returns the built descriptor table. A failed build is fatal: there is
// no way to assign indices from a partial set of types.
func (r *Registry) table() []Descriptor {
	descriptors, err := r.build()
	if err != nil {
		panic(err)
	}

	return descriptors
}

// Build builds the registry, if not done yet, and returns the error of the
// build. A failed build is never retried.
func (r *Registry) Build() error {
	_, err := r.build()
	return err
}

// Descriptors returns a copy of all descriptors, ordered by index.
func (r *Registry) Descriptors() ([]Descriptor, error) {
	descriptors, err := r.build()
	if err != nil {
		return nil, err
	}

	return slices.Clone(descriptors), nil
}

// Len returns the number of registered component types.
func (r *Registry) Len() (int, error) {
	descriptors, err := r.build()
	return len(descriptors), err
}

// IndexOf returns the index of ty, or -1 if ty is not a registered component type.
// It panics if the registry can not be built.
func (r *Registry) IndexOf(ty reflect.Type) int {
	if ty == nil {
		return -1
	}

	ptrToType := refl.TypePointer(ty)

	if idx, ok := (*r.resolved.Load())[ptrToType]; ok {
		return idx
	}

	descriptors := r.table()

	idx := slices.IndexFunc(descriptors, func(d Descriptor) bool { return d.Type == ty })
	if idx < 0 {
		// misses are not cached
		return -1
	}

	r.remember(ptrToType, idx)

	return idx
}

// Lookup returns the descriptor of ty, if ty is a registered component type.
// It panics if the registry can not be built.
func (r *Registry) Lookup(ty reflect.Type) Option[Descriptor] {
	idx := r.IndexOf(ty)
	if idx < 0 {
		return None[Descriptor]()
	}

	return Some(r.table()[idx])
}

// MaskOf returns a mask with the indices of all given types set. It reports
// false if any of the types is not a registered component type.
func (r *Registry) MaskOf(types ...reflect.Type) (Mask, bool) {
	var mask Mask

	for _, ty := range types {
		idx := r.IndexOf(ty)
		if idx < 0 {
			return Mask{}, false
		}

		mask.Set(idx)
	}

	return mask, true
}

func (r *Registry) remember(ptrToType unsafe.Pointer, idx int) {
	for {
		previous := r.resolved.Load()
		if _, ok := (*previous)[ptrToType]; ok {
			// some other goroutine was faster, and stored the same value
			return
		}

		updated := maps.Clone(*previous)
		updated[ptrToType] = idx

		if r.resolved.CompareAndSwap(previous, &updated) {
			return
		}
	}
}
