package gen

import (
	"path/filepath"
	"testing"

	"github.com/oliverbestmann/comptype/internal/gen/gentest"
	"github.com/stretchr/testify/require"
)

func TestLoadDotlessModule(t *testing.T) {
	dir := gentest.WriteModule(t, gentest.Game)

	pkgs, err := LoadWith(gentest.MarkerPackage, dir, "./...")
	require.NoError(t, err)

	// util does not import the marker package, marker itself is the runtime
	require.Len(t, pkgs, 2)

	require.Equal(t, "game/physics", pkgs[0].Path)
	require.Equal(t, "physics", pkgs[0].Name)
	require.Equal(t, []string{"Frozen", "Velocity"}, pkgs[0].Types)
	require.Equal(t, []string{"game/physics.Frozen", "game/physics.Velocity"}, pkgs[0].QualifiedNames())

	dirPhysics, err := filepath.EvalSymlinks(filepath.Join(dir, "physics"))
	require.NoError(t, err)

	dirLoaded, err := filepath.EvalSymlinks(pkgs[0].Dir)
	require.NoError(t, err)
	require.Equal(t, dirPhysics, dirLoaded)

	require.Equal(t, "game/render", pkgs[1].Path)
	require.Empty(t, pkgs[1].Types)
}

func TestLoadReportsPackageErrors(t *testing.T) {
	files := gentest.With(gentest.Game, map[string]string{
		"broken/broken.go": "package broken\n\nvar Value int = \"not a number\"\n",
	})

	dir := gentest.WriteModule(t, files)

	_, err := LoadWith(gentest.MarkerPackage, dir, "./...")
	require.Error(t, err)
	require.Contains(t, err.Error(), "packages contain errors")
	require.Contains(t, err.Error(), "broken.go")
}

func TestLoadMissingMarker(t *testing.T) {
	files := gentest.With(gentest.Game, map[string]string{
		"marker/marker.go": "package marker\n\ntype Component struct{}\n",
		"physics/physics.go": "package physics\n\nimport \"game/marker\"\n\ntype Velocity struct {\n\tmarker.Component\n}\n",
		"render/render.go":   "package render\n\nimport _ \"game/marker\"\n",
	})

	dir := gentest.WriteModule(t, files)

	_, err := LoadWith(gentest.MarkerPackage, dir, "./...")
	require.ErrorContains(t, err, "does not declare ErasedComponent")
}
