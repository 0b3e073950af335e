package generate

import (
	"fmt"
	"log/slog"

	"github.com/cmmoran/pibxgen/internal/generator"
	"github.com/cmmoran/pibxgen/internal/loader"
	"github.com/cmmoran/pibxgen/internal/writer"
	"github.com/cmmoran/pibxgen/pkg/codegen"
	"github.com/cmmoran/pibxgen/pkg/manifest"
)

// Result describes one generation run.
type Result struct {
	Classes *generator.Classes
	Files   []writer.PlannedFile
	// Stale lists classes recorded by the previous run that this run no
	// longer produces. Their files are left in place.
	Stale []manifest.Class
}

// Classes loads the input document and generates every class in memory.
func Classes(opts *codegen.Options) (*generator.Classes, error) {
	roots, err := loader.Load(opts.Input)
	if err != nil {
		return nil, err
	}
	g := generator.New(generator.Config{TypeChecks: opts.TypeChecks}, generator.WithLogger(slog.Default()))
	return g.Generate(roots...), nil
}

// Generate writes the classes for opts.Input and records them in the
// manifest when one is configured.
func Generate(opts *codegen.Options) (*Result, error) {
	opts.Normalize()
	l := slog.Default().With("input", opts.Input, "out_dir", opts.OutDir)

	classes, err := Classes(opts)
	if err != nil {
		return nil, err
	}
	l.Debug("generated classes", "count", classes.Len(), "type_checks", opts.TypeChecks)

	files, err := writer.Write(classes, writer.Options{
		OutDir:    opts.OutDir,
		Extension: opts.Extension,
		Force:     opts.Force,
		DryRun:    opts.DryRun,
		Logger:    l,
	})
	if err != nil {
		return nil, err
	}

	res := &Result{Classes: classes, Files: files}
	if opts.Manifest == "" {
		return res, nil
	}

	m, err := manifest.Load(opts.Manifest)
	if err != nil {
		return nil, err
	}
	recorded := make([]manifest.Class, 0, len(files))
	for _, f := range files {
		recorded = append(recorded, manifest.Class{Name: f.Class, File: f.Path})
	}
	res.Stale = m.Record(opts.Input, opts.TypeChecks, recorded)
	for _, s := range res.Stale {
		l.Warn("class no longer generated", "class", s.Name, "file", s.File)
	}
	if opts.DryRun {
		return res, nil
	}
	if err := m.Save(opts.Manifest); err != nil {
		return nil, fmt.Errorf("save manifest: %w", err)
	}
	return res, nil
}
