package generator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/goliatone/go-paramgen/pkg/extract"
	"github.com/goliatone/go-paramgen/pkg/params"
	"github.com/goliatone/go-paramgen/pkg/render"
)

// Syntax selects the enclosing block syntax.
type Syntax int

const (
	// SyntaxAuto picks the declarative parameters {} form when every
	// definition's kind resolves a declarative symbol, and the scripted form
	// otherwise. A single symbol-less kind forces the whole block over.
	SyntaxAuto Syntax = iota

	// SyntaxScripted always emits properties([parameters([…])]), the form
	// scripted pipelines consume.
	SyntaxScripted
)

// Diagnostic describes a parameter that was skipped during generation.
type Diagnostic struct {
	Parameter string
	Kind      string
	Err       error
}

// Option customises the generator configuration.
type Option func(*Generator)

// WithRegistry injects a formatter registry.
func WithRegistry(registry *render.Registry) Option {
	return func(g *Generator) {
		g.registry = registry
	}
}

// WithSymbols injects a declarative symbol table.
func WithSymbols(symbols *render.SymbolTable) Option {
	return func(g *Generator) {
		g.symbols = symbols
	}
}

// WithExtractor injects a property extractor.
func WithExtractor(extractor *extract.Extractor) Option {
	return func(g *Generator) {
		g.extractor = extractor
	}
}

// WithSyntax overrides the automatic syntax decision.
func WithSyntax(syntax Syntax) Option {
	return func(g *Generator) {
		g.syntax = syntax
	}
}

// WithDiagnosticHandler routes skipped-parameter reports somewhere other than
// the default logger.
func WithDiagnosticHandler(handler func(Diagnostic)) Option {
	return func(g *Generator) {
		if handler != nil {
			g.report = handler
		}
	}
}

// Generator builds pipeline parameter blocks from ordered definitions. The
// zero value is not usable; construct instances with New so defaults apply.
type Generator struct {
	registry  *render.Registry
	symbols   *render.SymbolTable
	extractor *extract.Extractor
	syntax    Syntax
	report    func(Diagnostic)
}

// New constructs a Generator applying any provided options. Missing
// dependencies are initialised with the built-in registry, symbol table, and
// extractor so callers can start with a single constructor call.
func New(options ...Option) *Generator {
	g := &Generator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	g.applyDefaults()
	return g
}

func (g *Generator) applyDefaults() {
	if g.registry == nil {
		g.registry = render.Builtin()
	}
	if g.symbols == nil {
		g.symbols = render.BuiltinSymbols()
	}
	if g.extractor == nil {
		g.extractor = extract.New()
	}
	if g.report == nil {
		g.report = func(d Diagnostic) {
			log.Printf("paramgen: skipping parameter %q (%s): %v", d.Parameter, d.Kind, d.Err)
		}
	}
}

// Registry exposes the formatter registry so callers can register support
// for additional parameter kinds.
func (g *Generator) Registry() *render.Registry {
	return g.registry
}

// Symbols exposes the declarative symbol table.
func (g *Generator) Symbols() *render.SymbolTable {
	return g.symbols
}

// Build renders the parameters block for an ordered definition list. The call
// itself only fails on a missing context; individual parameters that cannot
// be rendered are skipped and reported through the diagnostic handler, so a
// degraded block is still returned.
func (g *Generator) Build(ctx context.Context, defs []params.Definition) (string, error) {
	if ctx == nil {
		return "", errors.New("generator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if len(defs) == 0 {
		// The mode decision is vacuous without parameters; the empty
		// declarative form is the contract either way.
		return "parameters {\n}\n", nil
	}

	declarative := g.syntax == SyntaxAuto && g.allDeclarative(defs)

	var lines []string
	for _, def := range defs {
		if def == nil {
			continue
		}
		line, err := g.renderOne(def, declarative)
		if err != nil {
			g.report(Diagnostic{Parameter: def.ParameterName(), Kind: def.Kind(), Err: err})
			continue
		}
		lines = append(lines, line)
	}

	return assemble(lines, declarative), nil
}

// allDeclarative reports whether every definition's kind has a declarative
// symbol. The decision is all-or-nothing for the block.
func (g *Generator) allDeclarative(defs []params.Definition) bool {
	for _, def := range defs {
		if def == nil {
			continue
		}
		if _, ok := g.symbols.Lookup(def.Kind()); !ok {
			return false
		}
	}
	return true
}

// renderOne produces a single declaration. A panicking formatter is reported
// as that parameter's error rather than aborting the block.
func (g *Generator) renderOne(def params.Definition, declarative bool) (line string, err error) {
	defer func() {
		if r := recover(); r != nil {
			line, err = "", fmt.Errorf("generator: formatter panic: %v", r)
		}
	}()

	props := g.extractor.Extract(def)

	if !declarative {
		return render.ClassMapEntry(def.Kind(), props), nil
	}

	if formatter, ok := g.registry.Lookup(def.Kind()); ok {
		return formatter(def, props)
	}

	symbol, ok := g.symbols.Lookup(def.Kind())
	if !ok {
		// Unreachable under SyntaxAuto; guards callers forcing declarative
		// rendering for unknown kinds in the future.
		return render.ClassMapEntry(def.Kind(), props), nil
	}
	return render.DeclarativeCall(symbol, props), nil
}

func assemble(lines []string, declarative bool) string {
	var b strings.Builder
	if declarative {
		b.WriteString("parameters {\n")
		for _, line := range lines {
			b.WriteString("    ")
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("}\n")
		return b.String()
	}

	b.WriteString("properties([\n    parameters([\n")
	for _, line := range lines {
		b.WriteString("        ")
		b.WriteString(line)
		b.WriteString(",\n")
	}
	b.WriteString("    ])\n])\n")
	return b.String()
}
