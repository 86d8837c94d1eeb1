package gen

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/oliverbestmann/comptype/internal/refl"
	"github.com/oliverbestmann/comptype/internal/set"
	"github.com/pkg/errors"
	"golang.org/x/tools/go/packages"
)

// Package holds the component types found in one Go package.
type Package struct {
	Path  string
	Name  string
	Dir   string
	Types []string
}

// QualifiedNames returns the qualified names of the packages types, in the
// form the registry sorts them by.
func (p Package) QualifiedNames() []string {
	names := make([]string, 0, len(p.Types))
	for _, name := range p.Types {
		names = append(names, p.Path+"."+name)
	}

	return names
}

const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedImports |
	packages.NeedDeps |
	packages.NeedTypes |
	packages.NeedModule

// Load loads the packages matching the patterns, relative to dir, and returns
// each package that imports the comptype package together with the
// component types it declares.
func Load(dir string, patterns ...string) ([]Package, error) {
	return LoadWith(RuntimePackage, dir, patterns...)
}

// LoadWith is Load with the import path of the package declaring the
// ErasedComponent marker.
func LoadWith(runtimePkg string, dir string, patterns ...string) ([]Package, error) {
	config := &packages.Config{
		Mode: loadMode,
		Dir:  dir,
	}

	pkgs, err := packages.Load(config, patterns...)
	if err != nil {
		return nil, errors.Wrap(err, "load packages")
	}

	var failed []string
	var modules set.Set[string]

	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, err := range pkg.Errors {
			failed = append(failed, err.Error())
		}

		if pkg.Module != nil {
			modules.Insert(pkg.Module.Path)
		}
	})

	if len(failed) > 0 {
		return nil, errors.Errorf("packages contain errors:\n%s", strings.Join(failed, "\n"))
	}

	userModules := modules.ToSlice()

	var result []Package

	for _, pkg := range pkgs {
		if refl.InPackageTree(pkg.PkgPath, runtimePkg) {
			continue
		}

		// same rule as the registry, which knows the modules from the build info
		if refl.IsStandardLibrary(pkg.PkgPath, userModules) {
			continue
		}

		runtime, ok := pkg.Imports[runtimePkg]
		if !ok || pkg.Types == nil || len(pkg.GoFiles) == 0 {
			continue
		}

		marker, ok := MarkerInterface(runtime.Types)
		if !ok {
			return nil, errors.Errorf("package %s does not declare ErasedComponent", runtimePkg)
		}

		result = append(result, Package{
			Path:  pkg.PkgPath,
			Name:  pkg.Name,
			Dir:   filepath.Dir(pkg.GoFiles[0]),
			Types: FindComponents(pkg.Types, marker),
		})
	}

	slices.SortFunc(result, func(lhs, rhs Package) int {
		return strings.Compare(lhs.Path, rhs.Path)
	})

	return result, nil
}
