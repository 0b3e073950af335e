// Package writer stores generated classes as one file per class.
package writer

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cmmoran/pibxgen/internal/generator"
)

const DefaultExtension = ".php"

var ErrExists = errors.New("file already exists")

type Options struct {
	OutDir    string
	Extension string // defaults to DefaultExtension
	Force     bool   // overwrite existing files
	DryRun    bool   // plan only
	Logger    *slog.Logger
}

// PlannedFile is one class file the writer produced or would produce.
type PlannedFile struct {
	Class   string
	Path    string
	Size    int
	Existed bool
}

// Render returns the file body for one class.
func Render(src string) []byte {
	return []byte("<?php\n\n" + src + "\n")
}

// FileName is the file a class is written to, relative to the output
// directory.
func FileName(class, ext string) string {
	if ext == "" {
		ext = DefaultExtension
	}
	return class + ext
}

// Plan lists the files for classes in output order without touching disk
// beyond checking which already exist.
func Plan(classes *generator.Classes, opts Options) ([]PlannedFile, error) {
	if opts.OutDir == "" {
		return nil, fmt.Errorf("writer: output directory is required")
	}
	planned := make([]PlannedFile, 0, classes.Len())
	var err error
	classes.Each(func(name, src string) bool {
		p := PlannedFile{
			Class: name,
			Path:  filepath.Join(opts.OutDir, FileName(name, opts.Extension)),
			Size:  len(Render(src)),
		}
		if _, statErr := os.Stat(p.Path); statErr == nil {
			p.Existed = true
		} else if !errors.Is(statErr, os.ErrNotExist) {
			err = fmt.Errorf("stat %s: %w", p.Path, statErr)
			return false
		}
		planned = append(planned, p)
		return true
	})
	if err != nil {
		return nil, err
	}
	return planned, nil
}

// Write plans and writes every class. Existing files are an error unless
// Force is set; nothing is written when any of them would be refused.
func Write(classes *generator.Classes, opts Options) ([]PlannedFile, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	planned, err := Plan(classes, opts)
	if err != nil {
		return nil, err
	}
	if !opts.Force {
		for _, p := range planned {
			if p.Existed {
				return nil, fmt.Errorf("%w: %s (use force to overwrite)", ErrExists, p.Path)
			}
		}
	}
	if opts.DryRun {
		return planned, nil
	}

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	for _, p := range planned {
		src, _ := classes.Get(p.Class)
		if err := writeFileAtomic(p.Path, Render(src)); err != nil {
			return nil, fmt.Errorf("write class %s: %w", p.Class, err)
		}
		log.Info("wrote class", "class", p.Class, "file", p.Path, "bytes", p.Size)
	}
	return planned, nil
}

func writeFileAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-pibxgen-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	success = true
	return nil
}
