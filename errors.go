package comptype

import "github.com/pkg/errors"

var (
	// ErrSealed is raised when a type is added to a Catalog that a
	// registry has already read.
	ErrSealed = errors.New("catalog is sealed")

	// ErrDuplicateName is returned by a build that found two distinct
	// component types with the same qualified name.
	ErrDuplicateName = errors.New("duplicate component type name")

	// ErrNotComponent is raised when Register is called with a type that
	// does not embed exactly one Component marker of itself.
	ErrNotComponent = errors.New("type is not a component")
)
