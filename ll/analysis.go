package ll

import "fmt"

// GrammarAnalysis computes FIRST and FOLLOW sets for a grammar.
// Sets are computed on demand and not cached; a GrammarAnalysis holds no
// state besides the grammar and may be shared between goroutines.
type GrammarAnalysis struct {
	g *Grammar
}

// Analysis creates an analysis object for a grammar.
func Analysis(g *Grammar) *GrammarAnalysis {
	return &GrammarAnalysis{g: g}
}

// Grammar returns the grammar under analysis.
func (ga *GrammarAnalysis) Grammar() *Grammar {
	return ga.g
}

// First returns the set of terminals that can begin a derivation of A.
//
// FIRST of a terminal is the terminal itself. FIRST of a non-terminal is the
// union of FIRST of the lead symbol of each of its productions; an empty
// production contributes Epsilon (i.e. EndOfInput). FIRST of EOF is
// {EndOfInput}.
//
// If the computation re-enters a non-terminal on the current path, the grammar
// is left recursive (or cyclic) and a *GrammarCycleError is returned.
func (ga *GrammarAnalysis) First(A Symbol) (*TermSet, error) {
	set := NewTermSet()
	if err := ga.first(A, make([]Symbol, 0, 8), set); err != nil {
		return nil, err
	}
	return set, nil
}

func (ga *GrammarAnalysis) first(A Symbol, path []Symbol, out *TermSet) error {
	if A.IsTerminal() {
		out.Add(A.Name())
		return nil
	} else if A.IsEOF() {
		out.Add(EndOfInput)
		return nil
	}
	prods, ok := ga.g.rules[A]
	if !ok {
		return &UndefinedNonTerminalError{Symbol: A}
	}
	for i, B := range path {
		if B == A {
			cycle := append(append([]Symbol(nil), path[i:]...), A)
			return &GrammarCycleError{Path: cycle}
		}
	}
	path = append(path, A)
	for _, p := range prods {
		if err := ga.first(p.Lead(), path, out); err != nil {
			return err
		}
	}
	return nil
}

// Follow returns the set of terminals that can immediately follow
// non-terminal A in some production.
//
// Every occurrence of A on the right hand side of every production
// contributes FIRST of the symbol directly after it. An occurrence at the end
// of a production contributes nothing: neither FOLLOW of the production's
// left hand side nor end-of-input is propagated.
func (ga *GrammarAnalysis) Follow(A Symbol) (*TermSet, error) {
	if !A.IsNonTerminal() {
		return nil, fmt.Errorf("FOLLOW(%s): %w", A, ErrNotANonTerminal)
	}
	if !ga.g.IsDefined(A) {
		return nil, &UndefinedNonTerminalError{Symbol: A}
	}
	set := NewTermSet()
	for _, p := range ga.g.prods {
		for i := 0; i < len(p.rhs)-1; i++ {
			if p.rhs[i] != A {
				continue
			}
			if err := ga.first(p.rhs[i+1], make([]Symbol, 0, 8), set); err != nil {
				return nil, err
			}
		}
	}
	return set, nil
}
