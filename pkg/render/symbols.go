package render

import (
	"sort"
	"sync"

	"github.com/goliatone/go-paramgen/pkg/params"
)

// SymbolTable maps parameter kinds to the short declarative names used inside
// a parameters {} block. A kind without a symbol forces the whole block into
// ClassMap mode, so the table doubles as the mode oracle.
type SymbolTable struct {
	mu      sync.RWMutex
	symbols map[string]string
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		symbols: make(map[string]string),
	}
}

// Register associates a declarative symbol with a kind, replacing any
// previous association. Empty kinds or symbols are ignored.
func (t *SymbolTable) Register(kind, symbol string) {
	if kind == "" || symbol == "" {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.symbols[kind] = symbol
}

// Lookup returns the declarative symbol for an exact kind.
func (t *SymbolTable) Lookup(kind string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	symbol, ok := t.symbols[kind]
	return symbol, ok
}

// Kinds returns the sorted list of kinds with registered symbols.
func (t *SymbolTable) Kinds() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	kinds := make([]string, 0, len(t.symbols))
	for kind := range t.symbols {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// BuiltinSymbols returns a table covering the Jenkins core parameter kinds.
func BuiltinSymbols() *SymbolTable {
	table := NewSymbolTable()
	table.Register(params.KindString, "string")
	table.Register(params.KindText, "text")
	table.Register(params.KindBoolean, "booleanParam")
	table.Register(params.KindChoice, "choice")
	table.Register(params.KindPassword, "password")
	table.Register(params.KindRun, "run")
	table.Register(params.KindFile, "file")
	return table
}
