package comptype

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"strings"

	"github.com/oliverbestmann/comptype/internal/refl"
	"github.com/oliverbestmann/comptype/internal/set"
	"github.com/pkg/errors"
)

type candidateFilter struct {
	excluded []string

	// modules holding user code, even if their path looks like the standard library
	modules []string
}

// rejectReason returns why ty can not be registered as a component, or
// an empty string if it qualifies.
func (f candidateFilter) rejectReason(ty reflect.Type) string {
	switch {
	case ty == nil:
		return "nil type"

	case refl.IsPrimitive(ty.Kind()):
		return "primitive type"

	case ty.Kind() != reflect.Struct:
		return fmt.Sprintf("%s is not a struct value type", ty.Kind())

	case !refl.IsExported(ty):
		return "type is not exported"

	case refl.IsStandardLibrary(ty.PkgPath(), f.modules):
		return "declared in the standard library"
	}

	for _, root := range f.excluded {
		if refl.InPackageTree(ty.PkgPath(), root) {
			return "declared in excluded package " + root
		}
	}

	if !isComponentType(ty) {
		return "does not embed exactly one Component marker of itself"
	}

	return ""
}

// isComponentType checks that ty embeds a Component marker parameterized
// with ty itself.
func isComponentType(ty reflect.Type) bool {
	if !refl.IsComponent(ty, erasedComponentType) {
		return false
	}

	method, ok := ty.MethodByName("IsComponent")
	if !ok || method.Type.NumIn() != 2 {
		return false
	}

	// the first input is the receiver
	return method.Type.In(1) == ty
}

// discover filters the candidates of all partitions and returns them
// deduplicated in canonical order: sorted by qualified name, byte-wise.
func discover(logger *slog.Logger, filter candidateFilter, partitions []Partition) ([]reflect.Type, error) {
	var types set.Set[reflect.Type]

	// partition path of each accepted qualified name
	origins := map[string]string{}

	for _, partition := range partitions {
		for _, ty := range partition.Types {
			if reason := filter.rejectReason(ty); reason != "" {
				logger.Debug(
					"Candidate type rejected",
					slog.String("type", fmt.Sprint(ty)),
					slog.String("partition", partition.Path),
					slog.String("reason", reason),
				)

				continue
			}

			if !types.Insert(ty) {
				// registered more than once
				continue
			}

			name := refl.QualifiedName(ty)
			if origin, exists := origins[name]; exists {
				return nil, errors.Wrapf(ErrDuplicateName,
					"%s found in partitions %q and %q", name, origin, partition.Path)
			}

			origins[name] = partition.Path
		}
	}

	sorted := types.ToSlice()

	slices.SortFunc(sorted, func(lhs, rhs reflect.Type) int {
		return strings.Compare(refl.QualifiedName(lhs), refl.QualifiedName(rhs))
	})

	return sorted, nil
}
