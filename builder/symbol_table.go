// Package builder implements the single-threaded IR construction API:
// a symbol table for unique naming, an insert-point cursor, and the
// SysBuilder façade used to grow a System one node at a time — see
// original_source/src/builder/symbol_table.rs and
// original_source/src/builder/system.rs.
package builder

import (
	"fmt"

	"github.com/sarchlab/assassyn/ir"
)

// symbolTable hands out unique, human-readable identifiers and tracks
// which IR handle currently owns each one.
type symbolTable struct {
	uniqueIDs map[string]uint32
	symbols   map[string]ir.BaseNode
}

func newSymbolTable() *symbolTable {
	return &symbolTable{
		uniqueIDs: make(map[string]uint32),
		symbols:   make(map[string]ir.BaseNode),
	}
}

// identifier appends a disambiguating suffix the second and later time a
// name is requested, mirroring SymbolTable::identifier.
func (t *symbolTable) identifier(id string) string {
	if n, ok := t.uniqueIDs[id]; ok {
		res := fmt.Sprintf("%s_%d", id, n)
		t.uniqueIDs[id] = n + 1
		t.uniqueIDs[res] = 0
		return res
	}
	t.uniqueIDs[id] = 0
	return id
}

// insert reserves a unique name for node and returns the name actually
// used.
func (t *symbolTable) insert(id string, node ir.BaseNode) string {
	id = t.identifier(id)
	t.symbols[id] = node
	return id
}

func (t *symbolTable) get(id string) (ir.BaseNode, bool) {
	n, ok := t.symbols[id]
	return n, ok
}

func (t *symbolTable) remove(id string) {
	delete(t.symbols, id)
}
