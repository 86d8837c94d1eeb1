package comptype

import "reflect"

type isComponentMarker struct{}

// ErasedComponent is implemented by every component. The only way to
// implement it is to embed Component into a struct.
type ErasedComponent interface {
	isComponent(isComponentMarker)
}

type IsComponent[C any] interface {
	ErasedComponent
	IsComponent(C)
}

// Component marks a struct as a component. Embed it parameterized
// with the struct itself:
//
//	type Velocity struct {
//	   Component[Velocity]
//	   X, Y float64
//	}
//
// A component without any other data is a tag component.
type Component[C IsComponent[C]] struct{}

func (Component[C]) IsComponent(C) {}

func (Component[C]) isComponent(isComponentMarker) {}

// ComponentIndex returns the dense index of C in the default registry, or -1.
func (Component[C]) ComponentIndex() int {
	return IndexOf[C]()
}

var erasedComponentType = reflect.TypeFor[ErasedComponent]()

// runtimePackage is the package path of this package. Types declared in it or any of
// its sub packages are never registered as components.
var runtimePackage = reflect.TypeFor[isComponentMarker]().PkgPath()
