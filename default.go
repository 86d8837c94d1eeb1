package comptype

import (
	"reflect"
	"sync"
)

var defaultRegistry = sync.OnceValue(func() *Registry {
	return New(DefaultCatalog)
})

// Default returns the process wide registry over the DefaultCatalog.
// It lives until the process exits.
func Default() *Registry {
	return defaultRegistry()
}

// IndexOf returns the index of C in the default registry, or -1 if C was
// not registered.
func IndexOf[C any]() int {
	return Default().IndexOf(reflect.TypeFor[C]())
}

// DescriptorOf returns the descriptor of C in the default registry.
func DescriptorOf[C any]() Option[Descriptor] {
	return Default().Lookup(reflect.TypeFor[C]())
}

// AllDescriptors returns the descriptors of the default registry, ordered by index.
// It panics if the registry can not be built.
func AllDescriptors() []Descriptor {
	descriptors, err := Default().Descriptors()
	if err != nil {
		panic(err)
	}

	return descriptors
}
