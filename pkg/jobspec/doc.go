// Package jobspec loads ordered parameter definitions from the artifacts a
// Jenkins installation exposes: a job's config.xml, or a JSON/YAML job spec
// written by hand. Loading and decoding are separate so callers with bytes in
// hand can decode directly, while Source/Loader pairs cover files, fs.FS
// bundles, and live Jenkins URLs.
package jobspec
