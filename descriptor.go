package comptype

import (
	"fmt"
	"reflect"

	"github.com/oliverbestmann/comptype/internal/refl"
)

// Descriptor describes one registered component type.
type Descriptor struct {
	// Type is the reflect.Type of the component value.
	Type reflect.Type

	// Name is the qualified name of the type, including its package path. Descriptors
	// are ordered by this name.
	Name string

	// Index is the dense index of the type, in the range 0 to N-1 for a
	// registry holding N component types.
	Index int

	// ZeroSized is set for tag components, whose values carry no data.
	ZeroSized bool

	// Size is the size of a value of Type in memory.
	Size uintptr
}

func describe(ty reflect.Type, index int) Descriptor {
	return Descriptor{
		Type:      ty,
		Name:      refl.QualifiedName(ty),
		Index:     index,
		ZeroSized: refl.IsZeroSized(ty),
		Size:      ty.Size(),
	}
}

func (d Descriptor) String() string {
	if d.ZeroSized {
		return fmt.Sprintf("%s(#%d, tag)", d.Type, d.Index)
	}

	return fmt.Sprintf("%s(#%d)", d.Type, d.Index)
}
