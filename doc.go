// Package comptype assigns stable, dense indices to component types.
//
// A component is a struct that embeds Component, parameterized with itself.
// Component types are registered during program startup, usually by an init
// function generated by cmd/comptype-gen:
//
//	type Position struct {
//	   comptype.Component[Position]
//	   X, Y float64
//	}
//
//	func init() {
//	   comptype.Register[Position]()
//	}
//
// On first use, the registry sorts all registered component types by their
// qualified names and assigns each type its position in that order. The
// same set of types thus always maps to the same indices, across runs of the
// same binary. Indices can be used directly as offsets into arrays:
//
//	columns[comptype.IndexOf[Position]()]
//
// Types that were never registered, or that failed the registration
// checks, have an index of -1.
package comptype
