package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	o := New()
	assert.Equal(t, "schema.yaml", o.Input)
	assert.Equal(t, "gen", o.OutDir)
	assert.Equal(t, ".php", o.Extension)
	assert.False(t, o.TypeChecks)

	o = New(
		WithInput("in.yaml"),
		WithOutDir("out/./classes/"),
		WithExtension("inc"),
		WithTypeChecks(),
		WithManifest("out//manifest.yaml"),
		WithForce(),
		WithDryRun(),
	)
	assert.Equal(t, &Options{
		Input:      "in.yaml",
		OutDir:     "out/classes",
		Extension:  ".inc",
		TypeChecks: true,
		Manifest:   "out/manifest.yaml",
		Force:      true,
		DryRun:     true,
	}, o)
}

func TestNormalizeFillsBlanks(t *testing.T) {
	o := &Options{}
	o.Normalize()
	assert.Equal(t, "schema.yaml", o.Input)
	assert.Equal(t, "gen", o.OutDir)
	assert.Equal(t, ".php", o.Extension)
	assert.Empty(t, o.Manifest)
}
