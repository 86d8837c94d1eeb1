// Command comptype-gen generates the init functions that register component
// types with the default comptype catalog.
//
//	comptype-gen [-dir path] [-list] [-dry-run] [-v] [-profile dir] [packages]
//
// For each package matching the patterns that declares component types, a
// file zz_comptype_gen.go is written next to the package sources.
package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/oliverbestmann/comptype/internal/gen"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"go.uber.org/zap"
)

func main() {
	var (
		dir        = flag.String("dir", ".", "Directory to resolve package patterns in")
		list       = flag.Bool("list", false, "Print the discovered component types in canonical order")
		dryRun     = flag.Bool("dry-run", false, "Do not write any files")
		verbose    = flag.Bool("v", false, "Verbose logging")
		profileDir = flag.String("profile", "", "Write a cpu profile into this directory")
	)
	flag.Parse()

	patterns := flag.Args()
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	logger := zap.NewNop()
	if *verbose {
		devLogger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		logger = devLogger
	}

	defer func() { _ = logger.Sync() }()

	opts := options{
		dir:        *dir,
		runtime:    gen.RuntimePackage,
		patterns:   patterns,
		list:       *list,
		dryRun:     *dryRun,
		profileDir: *profileDir,
	}

	if err := run(logger, os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	dir        string
	runtime    string
	patterns   []string
	list       bool
	dryRun     bool
	profileDir string
}

func run(logger *zap.Logger, stdout io.Writer, opts options) error {
	if opts.profileDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(opts.profileDir), profile.Quiet).Stop()
	}

	logger.Debug("Loading packages", zap.String("dir", opts.dir), zap.Strings("patterns", opts.patterns))

	pkgs, err := gen.LoadWith(opts.runtime, opts.dir, opts.patterns...)
	if err != nil {
		return err
	}

	if opts.list {
		fmt.Fprintln(stdout, renderList(pkgs))
	}

	for _, pkg := range pkgs {
		target := filepath.Join(pkg.Dir, gen.FileName)

		if len(pkg.Types) == 0 {
			logger.Debug("No component types", zap.String("package", pkg.Path))

			if !opts.dryRun {
				// remove a file generated by a previous run
				if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
					return errors.Wrapf(err, "remove %s", target)
				}
			}

			continue
		}

		source, err := gen.Render(pkg.Name, pkg.Types)
		if err != nil {
			return err
		}

		logger.Info("Generated registrations",
			zap.String("package", pkg.Path),
			zap.Int("types", len(pkg.Types)),
			zap.String("file", target),
			zap.Bool("dryRun", opts.dryRun))

		if opts.dryRun {
			continue
		}

		if err := os.WriteFile(target, source, 0o644); err != nil {
			return errors.Wrapf(err, "write %s", target)
		}
	}

	return nil
}
