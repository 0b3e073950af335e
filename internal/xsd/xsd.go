// Package xsd knows the XML Schema built-in types.
package xsd

import "strings"

type Category int

const (
	Complex Category = iota
	String
	Integer
	Decimal
	Float
	Boolean
	Date
	DateTime
	Time
)

var builtins = map[string]Category{
	"string":             String,
	"normalizedString":   String,
	"token":              String,
	"language":           String,
	"Name":               String,
	"NCName":             String,
	"QName":              String,
	"ID":                 String,
	"IDREF":              String,
	"IDREFS":             String,
	"ENTITY":             String,
	"ENTITIES":           String,
	"NMTOKEN":            String,
	"NMTOKENS":           String,
	"NOTATION":           String,
	"anyURI":             String,
	"base64Binary":       String,
	"hexBinary":          String,
	"duration":           String,
	"gYear":              String,
	"gYearMonth":         String,
	"gMonth":             String,
	"gMonthDay":          String,
	"gDay":               String,
	"anySimpleType":      String,
	"integer":            Integer,
	"int":                Integer,
	"long":               Integer,
	"short":              Integer,
	"byte":               Integer,
	"nonNegativeInteger": Integer,
	"nonPositiveInteger": Integer,
	"positiveInteger":    Integer,
	"negativeInteger":    Integer,
	"unsignedLong":       Integer,
	"unsignedInt":        Integer,
	"unsignedShort":      Integer,
	"unsignedByte":       Integer,
	"decimal":            Decimal,
	"float":              Float,
	"double":             Float,
	"boolean":            Boolean,
	"date":               Date,
	"dateTime":           DateTime,
	"time":               Time,
}

// Local strips a namespace prefix: "xs:string" becomes "string".
func Local(t string) string {
	t = strings.TrimSpace(t)
	if i := strings.LastIndexByte(t, ':'); i >= 0 {
		return t[i+1:]
	}
	return t
}

// IsBaseType reports whether t names an XSD built-in type. The empty type is
// treated as a base type; it carries no class to hint.
func IsBaseType(t string) bool {
	l := Local(t)
	if l == "" {
		return true
	}
	_, ok := builtins[l]
	return ok
}

// CategoryOf groups t for validation purposes. Anything that is not a
// built-in is Complex.
func CategoryOf(t string) Category {
	if c, ok := builtins[Local(t)]; ok {
		return c
	}
	return Complex
}
