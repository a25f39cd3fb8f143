package jobspec

import (
	"context"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-paramgen/pkg/params"
)

// Document is a decoded job definition: the ordered parameter list plus the
// location it came from, kept for diagnostics.
type Document struct {
	Origin     string
	Parameters []params.Definition
}

// Loader fetches and decodes a job definition document.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions carries pre-resolved loader configuration. Construction
// helpers live in the top-level paramgen package.
type LoaderOptions struct {
	// FileSystem backs SourceKindFS sources.
	FileSystem fs.FS

	// HTTPClient overrides the client used for SourceKindURL sources.
	HTTPClient *http.Client

	// AllowHTTPFallback enables URL sources with a default client when no
	// HTTPClient is supplied.
	AllowHTTPFallback bool

	// RequestTimeout bounds HTTP fetches.
	RequestTimeout time.Duration
}

// LoaderOption customises LoaderOptions during construction.
type LoaderOption func(*LoaderOptions)

// NewLoaderOptions resolves a LoaderOptions value from functional options.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	var cfg LoaderOptions
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// WithFileSystem backs SourceKindFS sources with the given fs.FS.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(cfg *LoaderOptions) {
		cfg.FileSystem = files
	}
}

// WithHTTPClient supplies the client used for URL sources.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(cfg *LoaderOptions) {
		cfg.HTTPClient = client
	}
}

// WithHTTPFallback enables URL sources with a default client.
func WithHTTPFallback() LoaderOption {
	return func(cfg *LoaderOptions) {
		cfg.AllowHTTPFallback = true
	}
}

// WithRequestTimeout bounds HTTP fetches.
func WithRequestTimeout(timeout time.Duration) LoaderOption {
	return func(cfg *LoaderOptions) {
		cfg.RequestTimeout = timeout
	}
}
