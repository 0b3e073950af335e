package generate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmmoran/pibxgen/internal/writer"
	"github.com/cmmoran/pibxgen/pkg/codegen"
	"github.com/cmmoran/pibxgen/pkg/manifest"
)

const doc = `
nodes:
  - kind: type
    name: author
    children:
      - {kind: attribute, name: name, type: string}
  - kind: type
    name: book
    children:
      - {kind: attribute, name: title, type: string}
`

func writeDoc(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "gen")
	manifestPath := filepath.Join(dir, "manifest.yaml")

	res, err := Generate(codegen.New(
		codegen.WithInput(writeDoc(t, dir, doc)),
		codegen.WithOutDir(out),
		codegen.WithManifest(manifestPath),
		codegen.WithTypeChecks(),
	))
	require.NoError(t, err)
	assert.Equal(t, []string{"Author", "Book"}, res.Classes.Names())
	require.Len(t, res.Files, 2)
	assert.Empty(t, res.Stale)

	body, err := os.ReadFile(filepath.Join(out, "Book.php"))
	require.NoError(t, err)
	assert.Contains(t, string(body), "class Book {")
	assert.Contains(t, string(body), "is_string($title)")

	m, err := manifest.Load(manifestPath)
	require.NoError(t, err)
	assert.True(t, m.TypeChecks)
	assert.Equal(t, filepath.Join(out, "Author.php"), m.File("Author"))

	// second run drops Author and must refuse to overwrite without force
	only := "nodes:\n  - {kind: type, name: book}\n"
	_, err = Generate(codegen.New(
		codegen.WithInput(writeDoc(t, dir, only)),
		codegen.WithOutDir(out),
		codegen.WithManifest(manifestPath),
	))
	require.ErrorIs(t, err, writer.ErrExists)

	res, err = Generate(codegen.New(
		codegen.WithInput(writeDoc(t, dir, only)),
		codegen.WithOutDir(out),
		codegen.WithManifest(manifestPath),
		codegen.WithForce(),
	))
	require.NoError(t, err)
	assert.Equal(t, []manifest.Class{{Name: "Author", File: filepath.Join(out, "Author.php")}}, res.Stale)
}

func TestGenerateDryRun(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "gen")
	manifestPath := filepath.Join(dir, "manifest.yaml")

	res, err := Generate(codegen.New(
		codegen.WithInput(writeDoc(t, dir, doc)),
		codegen.WithOutDir(out),
		codegen.WithManifest(manifestPath),
		codegen.WithDryRun(),
	))
	require.NoError(t, err)
	assert.Len(t, res.Files, 2)

	_, err = os.Stat(out)
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = os.Stat(manifestPath)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGenerateBadInput(t *testing.T) {
	_, err := Generate(codegen.New(codegen.WithInput(filepath.Join(t.TempDir(), "missing.yaml"))))
	require.ErrorIs(t, err, os.ErrNotExist)
}
