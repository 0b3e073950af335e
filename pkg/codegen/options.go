package codegen

import (
	"path/filepath"
	"strings"
)

// Options control one generation run.
//
// Input      – YAML document describing the schema tree
// OutDir     – directory the class files are written to
// Extension  – class file extension, ".php" by default
// TypeChecks – add runtime validation to generated setters
// Manifest   – manifest file recording the generated classes; "" disables it
// Force      – overwrite existing class files
// DryRun     – plan only, write nothing
type Options struct {
	Input      string `json:"input,omitempty" yaml:"input,omitempty" toml:"input,omitempty" mapstructure:"input,omitempty"`
	OutDir     string `json:"out_dir,omitempty" yaml:"out_dir,omitempty" toml:"out_dir,omitempty" mapstructure:"out_dir,omitempty"`
	Extension  string `json:"extension,omitempty" yaml:"extension,omitempty" toml:"extension,omitempty" mapstructure:"extension,omitempty"`
	TypeChecks bool   `json:"type_checks,omitempty" yaml:"type_checks,omitempty" toml:"type_checks,omitempty" mapstructure:"type_checks,omitempty"`
	Manifest   string `json:"manifest,omitempty" yaml:"manifest,omitempty" toml:"manifest,omitempty" mapstructure:"manifest,omitempty"`
	Force      bool   `json:"force,omitempty" yaml:"force,omitempty" toml:"force,omitempty" mapstructure:"force,omitempty"`
	DryRun     bool   `json:"dry_run,omitempty" yaml:"dry_run,omitempty" toml:"dry_run,omitempty" mapstructure:"dry_run,omitempty"`
}

func NewOptions() *Options {
	return &Options{
		Input:     "schema.yaml",
		OutDir:    "gen",
		Extension: ".php",
	}
}

func (o *Options) Normalize() {
	if len(o.Input) == 0 {
		o.Input = "schema.yaml"
	}
	if len(o.OutDir) == 0 {
		o.OutDir = "gen"
	}
	o.OutDir = filepath.Clean(o.OutDir)
	if len(o.Extension) == 0 {
		o.Extension = ".php"
	}
	if !strings.HasPrefix(o.Extension, ".") {
		o.Extension = "." + o.Extension
	}
	if len(o.Manifest) > 0 {
		o.Manifest = filepath.Clean(o.Manifest)
	}
}

// functional option pattern ---------------------------------------------------

type Option func(*Options)

func WithInput(p string) Option     { return func(o *Options) { o.Input = p } }
func WithOutDir(d string) Option    { return func(o *Options) { o.OutDir = d } }
func WithExtension(e string) Option { return func(o *Options) { o.Extension = e } }
func WithTypeChecks() Option        { return func(o *Options) { o.TypeChecks = true } }
func WithManifest(p string) Option  { return func(o *Options) { o.Manifest = p } }
func WithForce() Option             { return func(o *Options) { o.Force = true } }
func WithDryRun() Option            { return func(o *Options) { o.DryRun = true } }

// New returns normalized default options with opts applied.
func New(opts ...Option) *Options {
	o := NewOptions()
	for _, fn := range opts {
		fn(o)
	}
	o.Normalize()
	return o
}
