package check

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/go-cmp/cmp"

	"github.com/cmmoran/pibxgen/internal/writer"
	"github.com/cmmoran/pibxgen/pkg/action/generate"
	"github.com/cmmoran/pibxgen/pkg/codegen"
	"github.com/cmmoran/pibxgen/pkg/manifest"
)

// Drift is a difference between the generated classes and the files on disk.
type Drift struct {
	Class   string
	File    string
	Missing bool   // the class file does not exist
	Stale   bool   // the manifest records a file no longer generated
	Diff    string // cmp.Diff(on disk, generated) for changed files
}

// Check regenerates the classes for opts in memory and compares them with the
// files in opts.OutDir. An empty result means the output is up to date.
func Check(opts *codegen.Options) ([]Drift, error) {
	opts.Normalize()

	classes, err := generate.Classes(opts)
	if err != nil {
		return nil, err
	}
	planned, err := writer.Plan(classes, writer.Options{OutDir: opts.OutDir, Extension: opts.Extension})
	if err != nil {
		return nil, err
	}

	var drifts []Drift
	current := make([]manifest.Class, 0, len(planned))
	for _, p := range planned {
		current = append(current, manifest.Class{Name: p.Class, File: p.Path})

		src, _ := classes.Get(p.Class)
		want := string(writer.Render(src))

		have, err := os.ReadFile(p.Path)
		if errors.Is(err, os.ErrNotExist) {
			drifts = append(drifts, Drift{Class: p.Class, File: p.Path, Missing: true})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read class file: %w", err)
		}
		if diff := cmp.Diff(string(have), want); diff != "" {
			drifts = append(drifts, Drift{Class: p.Class, File: p.Path, Diff: diff})
		}
	}

	if opts.Manifest != "" {
		m, err := manifest.Load(opts.Manifest)
		if err != nil {
			return nil, err
		}
		for _, s := range m.Stale(current) {
			drifts = append(drifts, Drift{Class: s.Name, File: s.File, Stale: true})
		}
	}

	return drifts, nil
}
