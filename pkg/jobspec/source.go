package jobspec

import "path/filepath"

// SourceKind differentiates loading strategies.
type SourceKind int

const (
	// SourceKindFile identifies an on-disk document.
	SourceKindFile SourceKind = iota + 1
	// SourceKindFS identifies a document inside an fs.FS.
	SourceKindFS
	// SourceKindURL identifies a document fetched over HTTP, typically a
	// job's config.xml endpoint.
	SourceKindURL
)

// Source identifies where a job definition document lives.
type Source interface {
	Location() string
	Kind() SourceKind
}

type fileSource struct {
	path string
}

func (s fileSource) Location() string { return s.path }
func (s fileSource) Kind() SourceKind { return SourceKindFile }

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	name string
}

func (s fsSource) Location() string { return s.name }
func (s fsSource) Kind() SourceKind { return SourceKindFS }

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

type urlSource struct {
	url string
}

func (s urlSource) Location() string { return s.url }
func (s urlSource) Kind() SourceKind { return SourceKindURL }

// SourceFromURL returns a Source fetched over HTTP.
func SourceFromURL(url string) Source {
	return urlSource{url: url}
}
