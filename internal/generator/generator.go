// Package generator turns a model tree into PHP class source, one class per
// type node.
package generator

import (
	"log/slog"

	"github.com/cmmoran/pibxgen/internal/model"
	"github.com/cmmoran/pibxgen/internal/names"
	"github.com/cmmoran/pibxgen/internal/typecheck"
	"github.com/cmmoran/pibxgen/internal/walker"
)

// Namer derives identifiers from nodes. names.Service is the default.
type Namer interface {
	ClassNameFor(name string) string
	SetterNameFor(n *model.Node) string
	GetterNameFor(n *model.Node) string
	PredicateNameFor(n *model.Node) string
	MemberNameFor(n *model.Node) string
	AttributeNameFor(raw string) string
	CamelCasedNameFor(raw string) string
	SelectorNameFor(structure *model.Node) string
	ChoiceConstantFor(element *model.Node) string
	ChoiceConstantsFor(structure *model.Node) []string
}

// TypeChecker renders setter validation. typecheck.Renderer is the default.
type TypeChecker interface {
	ScalarCheckFor(schemaType, variable string) string
	ListCheckFor(n *model.Node, variable string) string
}

// Config is fixed for the lifetime of a Generator.
type Config struct {
	// TypeChecks adds runtime validation to generated setters.
	TypeChecks bool
}

type Option func(*Generator)

func WithNamer(n Namer) Option { return func(g *Generator) { g.names = n } }

func WithTypeChecker(tc TypeChecker) Option { return func(g *Generator) { g.checks = tc } }

func WithLogger(l *slog.Logger) Option { return func(g *Generator) { g.log = l } }

// Generator accumulates classes while a tree is walked with its handler
// table. It is not safe for concurrent use.
type Generator struct {
	cfg    Config
	names  Namer
	checks TypeChecker
	log    *slog.Logger

	frames  frameStack
	classes *Classes
}

func New(cfg Config, opts ...Option) *Generator {
	g := &Generator{
		cfg:     cfg,
		classes: newClasses(),
	}
	for _, fn := range opts {
		fn(g)
	}
	if g.names == nil {
		g.names = names.Service{}
	}
	if g.checks == nil {
		g.checks = typecheck.New(g.names)
	}
	if g.log == nil {
		g.log = slog.Default()
	}
	return g
}

// Config returns the configuration the generator was built with.
func (g *Generator) Config() Config { return g.cfg }

// Handlers returns the dispatch table driving generation.
func (g *Generator) Handlers() walker.Table {
	return walker.Table{
		model.KindType:             {Enter: g.enterType, Leave: g.leaveType},
		model.KindTypeAttribute:    {Enter: g.enterTypeAttribute, Leave: keepGoing},
		model.KindStructure:        {Enter: g.enterStructure, Leave: keepGoing},
		model.KindStructureElement: {Enter: g.enterStructureElement, Leave: keepGoing},
		model.KindCollection:       {Enter: g.enterCollection, Leave: keepGoing},
		model.KindCollectionItem:   {Enter: g.visitCollectionItem},
		model.KindEnumeration:      {Enter: g.enterEnumeration, Leave: keepGoing},
		model.KindEnumerationValue: {Enter: skip},
	}
}

// Generate walks roots and returns every class completed so far, including
// those of earlier calls.
func (g *Generator) Generate(roots ...*model.Node) *Classes {
	walker.Walk(g.Handlers(), roots...)
	return g.classes
}

// Classes returns the output map.
func (g *Generator) Classes() *Classes { return g.classes }

func keepGoing(*model.Node) bool { return true }

func skip(*model.Node) bool { return false }

func (g *Generator) enterType(n *model.Node) bool {
	g.frames.push(&frame{name: g.names.ClassNameFor(n.Name)})
	return true
}

func (g *Generator) leaveType(n *model.Node) bool {
	f := g.frames.pop()
	if f == nil {
		return true
	}
	g.classes.put(f.name, f.source())
	g.log.Debug("generated class", "class", f.name, "node", n.Path())
	return true
}

// attribute and method append to the open class. Members outside any type
// have nowhere to go and are dropped.
func (g *Generator) attribute(s string) {
	if f := g.frames.top(); f != nil {
		f.attributes.WriteString(s)
	}
}

func (g *Generator) method(s string) {
	if f := g.frames.top(); f != nil {
		f.methods.WriteString(s)
	}
}
