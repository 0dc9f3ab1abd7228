package ll

import (
	"fmt"

	"github.com/npillmayer/llpas/ll/sparse"
)

// TransitionTable maps pairs (non-terminal, lookahead terminal) to productions.
// Rows are the grammar's non-terminals, columns are its terminals plus
// EndOfInput. Absent entries mean "no transition".
//
// A table is immutable after construction and safe for concurrent use.
type TransitionTable struct {
	g       *Grammar
	matrix  *sparse.IntMatrix
	rows    map[Symbol]int
	cols    map[string]int
	columns []string // column labels, EndOfInput first
}

// TableEntry is a single transition of a table.
type TableEntry struct {
	NonTerminal Symbol
	Lookahead   string
	Production  *Production
}

// BuildTable creates the transition table for a grammar.
//
// For every production p of non-terminal A, in order of definition, and
// every terminal a in FIRST(lead symbol of p), the entry (A, a) is set to p.
// Empty productions register under EndOfInput. If two productions claim the
// same entry, the later one wins; no conflict is reported.
//
// BuildTable fails if the grammar is left recursive.
func BuildTable(g *Grammar) (*TransitionTable, error) {
	tracer().Debugf("=== build transition table for grammar %s ===", g.Name)
	t := &TransitionTable{
		g:       g,
		rows:    make(map[Symbol]int, len(g.nonterms)),
		cols:    make(map[string]int, len(g.terminals)+1),
		columns: append([]string{EndOfInput}, g.terminals...),
	}
	for i, A := range g.nonterms {
		t.rows[A] = i
	}
	for j, a := range t.columns {
		t.cols[a] = j
	}
	t.matrix = sparse.NewIntMatrix(len(t.rows), len(t.columns), sparse.DefaultNullValue)
	ga := Analysis(g)
	for _, A := range g.nonterms {
		for _, p := range g.rules[A] {
			first, err := ga.First(p.Lead())
			if err != nil {
				return nil, err
			}
			for _, a := range first.Values() {
				col, ok := t.cols[a]
				if !ok {
					return nil, fmt.Errorf("terminal %q not in vocabulary of grammar %s", a, g.Name)
				}
				old := t.matrix.Set(t.rows[A], col, int32(p.Serial))
				if old != t.matrix.NullValue() && old != int32(p.Serial) {
					tracer().Debugf("table[%s, %q]: production %d overwrites %d",
						A, a, p.Serial, old)
				}
			}
		}
	}
	tracer().Debugf("transition table has %d entries", t.matrix.ValueCount())
	return t, nil
}

// Grammar returns the grammar this table has been built for.
func (t *TransitionTable) Grammar() *Grammar {
	return t.g
}

// Lookup returns the production for non-terminal A and lookahead la.
func (t *TransitionTable) Lookup(A Symbol, la string) (*Production, bool) {
	row, ok := t.rows[A]
	if !ok {
		return nil, false
	}
	col, ok := t.cols[la]
	if !ok {
		return nil, false
	}
	v := t.matrix.Value(row, col)
	if v == t.matrix.NullValue() {
		return nil, false
	}
	return t.g.prods[v], true
}

// Expected returns the lookaheads with a transition for A, in column order.
func (t *TransitionTable) Expected(A Symbol) []string {
	row, ok := t.rows[A]
	if !ok {
		return nil
	}
	cols, _ := t.matrix.Row(row)
	expected := make([]string, len(cols))
	for i, col := range cols {
		expected[i] = t.columns[col]
	}
	return expected
}

// Entries returns all transitions, ordered by non-terminal (order of
// definition) and lookahead (lexicographic, EndOfInput first).
func (t *TransitionTable) Entries() []TableEntry {
	entries := make([]TableEntry, 0, t.matrix.ValueCount())
	t.matrix.Each(func(i, j int, v int32) {
		entries = append(entries, TableEntry{
			NonTerminal: t.g.nonterms[i],
			Lookahead:   t.columns[j],
			Production:  t.g.prods[v],
		})
	})
	return entries
}

// Columns returns the column labels of the table, EndOfInput first.
func (t *TransitionTable) Columns() []string {
	return append([]string(nil), t.columns...)
}

// Size returns the number of transitions in the table.
func (t *TransitionTable) Size() int {
	return t.matrix.ValueCount()
}
