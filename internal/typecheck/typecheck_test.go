package typecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cmmoran/pibxgen/internal/model"
)

func TestScalarCheckFor(ttt *testing.T) {
	tests := []struct {
		name       string
		schemaType string
		want       string
	}{
		{
			name:       "string",
			schemaType: "xs:string",
			want: "\t\tif (!is_string($title)) {\n" +
				"\t\t\tthrow new InvalidArgumentException('\"' . $title . '\" is not a valid string.');\n" +
				"\t\t}\n",
		},
		{
			name:       "int",
			schemaType: "int",
			want: "\t\tif (!is_int($title)) {\n" +
				"\t\t\tthrow new InvalidArgumentException('\"' . $title . '\" is not a valid int.');\n" +
				"\t\t}\n",
		},
		{
			name:       "boolean",
			schemaType: "boolean",
			want: "\t\tif (!is_bool($title)) {\n" +
				"\t\t\tthrow new InvalidArgumentException('\"' . var_export($title, true) . '\" is not a valid boolean.');\n" +
				"\t\t}\n",
		},
		{
			name:       "complex",
			schemaType: "tns:postal-address",
			want: "\t\tif (!($title instanceof PostalAddress)) {\n" +
				"\t\t\tthrow new InvalidArgumentException('Expected an instance of PostalAddress.');\n" +
				"\t\t}\n",
		},
		{
			name:       "empty",
			schemaType: "",
			want:       "",
		},
	}
	r := New(nil)
	for _, tt := range tests {
		ttt.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.ScalarCheckFor(tt.schemaType, "title"))
		})
	}
}

func TestScalarCheckForDates(t *testing.T) {
	r := New(nil)
	assert.Contains(t, r.ScalarCheckFor("date", "d"), "!is_string($d) || !preg_match('"+datePattern+"', $d)")
	assert.Contains(t, r.ScalarCheckFor("dateTime", "d"), dateTimePattern)
	assert.Contains(t, r.ScalarCheckFor("time", "d"), timePattern)
	assert.Contains(t, r.ScalarCheckFor("double", "d"), "!is_float($d) && !is_int($d)")
	assert.Contains(t, r.ScalarCheckFor("decimal", "d"), "!is_numeric($d)")
}

func TestListCheckFor(t *testing.T) {
	r := New(nil)
	coll := model.NewCollection("authors").Add(model.NewCollectionItem("author", "string"))

	want := "\t\tforeach ($authors as $author) {\n" +
		"\t\t\tif (!is_string($author)) {\n" +
		"\t\t\t\tthrow new InvalidArgumentException('\"' . $author . '\" is not a valid string.');\n" +
		"\t\t\t}\n" +
		"\t\t}\n"
	assert.Equal(t, want, r.ListCheckFor(coll, "authors"))

	standalone := model.NewCollectionItem("tag", "int")
	assert.Contains(t, r.ListCheckFor(standalone, "tagList"), "foreach ($tagList as $tagListItem) {\n")
	assert.Contains(t, r.ListCheckFor(standalone, "tagList"), "!is_int($tagListItem)")

	untyped := model.NewCollection("things")
	assert.Equal(t, "", r.ListCheckFor(untyped, "things"))
}

type fixedNamer string

func (f fixedNamer) ClassNameFor(string) string { return string(f) }

func TestRendererUsesNamer(t *testing.T) {
	r := New(fixedNamer("Custom"))
	assert.Contains(t, r.ScalarCheckFor("Whatever", "w"), "instanceof Custom")
}
