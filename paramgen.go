// Package paramgen generates pasteable pipeline parameters blocks from a
// job's parameter definitions. It is the convenience surface over the
// extract → render → generator pipeline; advanced callers can wire the
// underlying packages directly.
package paramgen

import (
	"context"
	"time"

	internalLoader "github.com/goliatone/go-paramgen/internal/jobspec/loader"
	"github.com/goliatone/go-paramgen/pkg/generator"
	"github.com/goliatone/go-paramgen/pkg/jobspec"
	"github.com/goliatone/go-paramgen/pkg/params"
)

// Option customises the generator; re-exported so most callers only import
// this package.
type Option = generator.Option

// Diagnostic describes a parameter skipped during generation.
type Diagnostic = generator.Diagnostic

// Syntax selects the enclosing block syntax.
type Syntax = generator.Syntax

// Syntax values.
const (
	SyntaxAuto     = generator.SyntaxAuto
	SyntaxScripted = generator.SyntaxScripted
)

const defaultRequestTimeout = 30 * time.Second

// NewGenerator exposes the generator constructor from the top-level module.
func NewGenerator(options ...Option) *generator.Generator {
	return generator.New(options...)
}

// NewLoader constructs a job definition loader using the internal
// implementation while keeping the concrete type hidden from consumers.
func NewLoader(options ...jobspec.LoaderOption) jobspec.Loader {
	cfg := jobspec.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// Generate builds the parameters block for an ordered definition list. It is
// the simplest entry point for callers that already hold definitions.
func Generate(ctx context.Context, defs []params.Definition, options ...Option) (string, error) {
	return generator.New(options...).Build(ctx, defs)
}

// GenerateFromSource loads a job definition document (config.xml or job
// spec), decodes it, and renders its parameters block. URL sources work out
// of the box with a bounded default client.
func GenerateFromSource(ctx context.Context, src jobspec.Source, options ...Option) (string, error) {
	loader := NewLoader(
		jobspec.WithHTTPFallback(),
		jobspec.WithRequestTimeout(defaultRequestTimeout),
	)
	doc, err := loader.Load(ctx, src)
	if err != nil {
		return "", err
	}
	return Generate(ctx, doc.Parameters, options...)
}

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) jobspec.Source {
	return jobspec.SourceFromFile(path)
}

// SourceFromFS returns a Source identifying a resource inside an fs.FS. Pair
// it with NewLoader and jobspec.WithFileSystem.
func SourceFromFS(name string) jobspec.Source {
	return jobspec.SourceFromFS(name)
}

// SourceFromURL returns a Source fetched over HTTP, typically a job's
// config.xml endpoint.
func SourceFromURL(url string) jobspec.Source {
	return jobspec.SourceFromURL(url)
}

// WithSyntax forwards the syntax override option.
func WithSyntax(syntax Syntax) Option {
	return generator.WithSyntax(syntax)
}

// WithDiagnosticHandler forwards the diagnostic handler option.
func WithDiagnosticHandler(handler func(Diagnostic)) Option {
	return generator.WithDiagnosticHandler(handler)
}
