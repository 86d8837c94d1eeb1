// Package gentest writes small self contained Go modules for tests of
// the code generator.
package gentest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// MarkerPackage is the package of the Game module that declares the
// component marker.
const MarkerPackage = "game/marker"

// Game is a module without any dependencies and without a dot in its path.
var Game = map[string]string{
	"go.mod": "module game\n\ngo 1.22\n",

	"marker/marker.go": `package marker

type isComponentMarker struct{}

type ErasedComponent interface {
	isComponent(isComponentMarker)
}

type IsComponent[C any] interface {
	ErasedComponent
	IsComponent(C)
}

type Component[C IsComponent[C]] struct{}

func (Component[C]) IsComponent(C) {}

func (Component[C]) isComponent(isComponentMarker) {}
`,

	"physics/physics.go": `package physics

import "game/marker"

type Velocity struct {
	marker.Component[Velocity]
	X, Y float64
}

type Frozen struct {
	marker.Component[Frozen]
}

type body struct {
	marker.Component[body]
}
`,

	"render/render.go": `package render

import "game/marker"

var _ marker.ErasedComponent
`,

	// left over from a previous run
	"render/zz_comptype_gen.go": "// Code generated by comptype-gen. DO NOT EDIT.\n\npackage render\n",

	"util/util.go": "package util\n\nfunc Clamp(v, lo, hi int) int { return max(lo, min(v, hi)) }\n",
}

// WriteModule writes the files into a new temporary directory and returns its path.
func WriteModule(t testing.TB, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()

	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	return dir
}

// With returns a copy of files with the given files added or replaced.
func With(files map[string]string, overrides map[string]string) map[string]string {
	result := map[string]string{}
	for name, content := range files {
		result[name] = content
	}

	for name, content := range overrides {
		result[name] = content
	}

	return result
}
