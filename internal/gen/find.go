// Package gen finds component types in type-checked Go packages and renders
// the init functions that register them.
package gen

import (
	"go/types"
)

// RuntimePackage is the import path of the comptype package.
const RuntimePackage = "github.com/oliverbestmann/comptype"

// MarkerInterface returns the ErasedComponent interface declared by the
// given comptype package.
func MarkerInterface(pkg *types.Package) (*types.Interface, bool) {
	obj, ok := pkg.Scope().Lookup("ErasedComponent").(*types.TypeName)
	if !ok {
		return nil, false
	}

	iface, ok := obj.Type().Underlying().(*types.Interface)
	return iface, ok
}

// FindComponents returns the names of all component types declared in pkg,
// sorted by name. A component type is an exported, non generic, named struct
// that embeds exactly one marker implementing the marker interface, and
// that marker is parameterized with the type itself.
func FindComponents(pkg *types.Package, marker *types.Interface) []string {
	var names []string

	scope := pkg.Scope()

	// scope.Names is sorted
	for _, name := range scope.Names() {
		obj, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !obj.Exported() || obj.IsAlias() {
			continue
		}

		named, ok := obj.Type().(*types.Named)
		if !ok || named.TypeParams().Len() > 0 {
			continue
		}

		if isComponent(pkg, named, marker) {
			names = append(names, name)
		}
	}

	return names
}

func isComponent(pkg *types.Package, named *types.Named, marker *types.Interface) bool {
	st, ok := named.Underlying().(*types.Struct)
	if !ok || !types.Implements(named, marker) {
		return false
	}

	var count int
	for idx := range st.NumFields() {
		field := st.Field(idx)
		if field.Embedded() && implementsDirectly(field.Type(), marker) {
			count += 1
		}
	}

	if count != 1 {
		return false
	}

	// the marker must be parameterized with the type itself
	obj, _, _ := types.LookupFieldOrMethod(named, false, pkg, "IsComponent")

	method, ok := obj.(*types.Func)
	if !ok {
		return false
	}

	params := method.Type().(*types.Signature).Params()
	return params.Len() == 1 && types.Identical(params.At(0).Type(), named)
}

// implementsDirectly reports whether ty implements iface with methods not
// promoted from any of its embedded fields.
func implementsDirectly(ty types.Type, iface *types.Interface) bool {
	if !types.Implements(ty, iface) {
		return false
	}

	if ptr, ok := ty.(*types.Pointer); ok {
		ty = ptr.Elem()
	}

	st, ok := ty.Underlying().(*types.Struct)
	if !ok {
		return true
	}

	for idx := range st.NumFields() {
		field := st.Field(idx)
		if !field.Embedded() {
			continue
		}

		if types.Implements(field.Type(), iface) || types.Implements(types.NewPointer(field.Type()), iface) {
			return false
		}
	}

	return true
}
