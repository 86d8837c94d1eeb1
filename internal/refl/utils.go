package refl

import (
	"iter"
	"reflect"
	"runtime/debug"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
	"unsafe"
)

func IterFields(ty reflect.Type) iter.Seq[reflect.StructField] {
	return func(yield func(reflect.StructField) bool) {
		for idx := range ty.NumField() {
			if !yield(ty.Field(idx)) {
				return
			}
		}
	}
}

// ImplementsInterfaceDirectly reports whether ty implements iface with methods
// declared on ty itself and not promoted from one of its embedded fields.
func ImplementsInterfaceDirectly(ty reflect.Type, iface reflect.Type) bool {
	if !ty.Implements(iface) {
		return false
	}

	for ty.Kind() == reflect.Pointer {
		ty = ty.Elem()
	}

	if ty.Kind() != reflect.Struct {
		return true
	}

	for field := range IterFields(ty) {
		if !field.Anonymous {
			continue
		}

		if field.Type.Implements(iface) {
			return false
		}

		if reflect.PointerTo(field.Type).Implements(iface) {
			return false
		}
	}

	return true
}

// IsComponent reports whether ty is a struct value type that implements the
// marker interface by embedding exactly one type that implements it directly.
func IsComponent(ty reflect.Type, marker reflect.Type) bool {
	if ty == nil || ty.Kind() != reflect.Struct {
		return false
	}

	if !ty.Implements(marker) {
		return false
	}

	var count int
	for field := range IterFields(ty) {
		if field.Anonymous && ImplementsInterfaceDirectly(field.Type, marker) {
			count += 1
		}
	}

	// expect to have exactly one
	return count == 1
}

// IsExported reports whether ty is a named type with an exported name.
func IsExported(ty reflect.Type) bool {
	name := ty.Name()
	if name == "" {
		return false
	}

	first, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(first)
}

// QualifiedName returns the import path qualified name of a named type,
// e.g. "github.com/acme/game/physics.Velocity".
func QualifiedName(ty reflect.Type) string {
	if ty.PkgPath() == "" {
		return ty.Name()
	}

	return ty.PkgPath() + "." + ty.Name()
}

// IsPrimitive reports whether the kind is a predeclared boolean or numeric kind.
func IsPrimitive(kind reflect.Kind) bool {
	switch kind {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}

// IsZeroSized reports whether values of ty carry no data. A struct is zero sized
// if each of its fields is, exported or not. An array is zero sized if it
// has no elements or its element type is zero sized. Nesting depth is not bounded.
func IsZeroSized(ty reflect.Type) bool {
	switch ty.Kind() {
	case reflect.Struct:
		for field := range IterFields(ty) {
			if !IsZeroSized(field.Type) {
				return false
			}
		}

		return true

	case reflect.Array:
		return ty.Len() == 0 || IsZeroSized(ty.Elem())

	default:
		// primitives, strings, pointers and all other reference kinds
		return false
	}
}

// IsStandardLibrary reports whether a package path belongs to the standard
// library. Packages of any of the given modules, and package main, are user
// code. Other paths use the rule of the go command: the first path element of
// a standard library package does not contain a dot.
func IsStandardLibrary(pkgPath string, modules []string) bool {
	if pkgPath == "" {
		return true
	}

	if pkgPath == "main" {
		return false
	}

	for _, module := range modules {
		if InPackageTree(pkgPath, module) {
			return false
		}
	}

	first, _, _ := strings.Cut(pkgPath, "/")
	return !strings.Contains(first, ".")
}

var buildModules = sync.OnceValue(func() []string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}

	var paths []string
	if info.Main.Path != "" {
		paths = append(paths, info.Main.Path)
	}

	for _, dep := range info.Deps {
		paths = append(paths, dep.Path)
	}

	return paths
})

// BuildModules returns the paths of the main module and all module
// dependencies linked into the running binary.
func BuildModules() []string {
	return buildModules()
}

// InPackageTree reports whether pkgPath is root or one of its sub packages.
func InPackageTree(pkgPath, root string) bool {
	return pkgPath == root || strings.HasPrefix(pkgPath, root+"/")
}

// TypePointer returns the address of the runtime type descriptor of t. It
// is stable for the lifetime of the process and cheaper to hash than the
// reflect.Type interface value.
func TypePointer(t reflect.Type) unsafe.Pointer {
	type eface struct {
		typ, val unsafe.Pointer
	}

	// a reflect.Type is backed by an *rType. The rType contains a abi.Type as
	// its first value. This means, that a *rType can be re-interpreted as *abi.Type
	return (*eface)(unsafe.Pointer(&t)).val
}
