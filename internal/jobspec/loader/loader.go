// Package loader implements jobspec.Loader by delegating to file, fs.FS, or
// HTTP strategies. Construction helpers live in the top-level paramgen
// package.
package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-paramgen/pkg/jobspec"
)

// Loader fetches job definition documents from pre-resolved strategies.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

// Ensure the implementation satisfies the public interface.
var _ jobspec.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options jobspec.LoaderOptions) jobspec.Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches a document from the provided source and decodes it.
func (l *Loader) Load(ctx context.Context, src jobspec.Source) (jobspec.Document, error) {
	if src == nil {
		return jobspec.Document{}, errors.New("jobspec loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case jobspec.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case jobspec.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case jobspec.SourceKindURL:
		if !l.allowHTTP {
			return jobspec.Document{}, errors.New("jobspec loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		return jobspec.Document{}, errors.New("jobspec loader: unknown source kind")
	}
	if err != nil {
		return jobspec.Document{}, err
	}

	return jobspec.Decode(data, src.Location())
}
