// Package render maps parameter kinds to declaration formatters and
// declarative symbols. Both registries are process-wide, read-mostly shared
// state: populated at startup, optionally extended later, read concurrently
// by every generation request. Lookups are exact-kind matches with no
// inheritance or wildcard fallback.
package render
