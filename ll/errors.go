package ll

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyGrammar is returned when a grammar is constructed without rules.
var ErrEmptyGrammar = errors.New("grammar has no rules")

// ErrNotANonTerminal is returned when an operation requires a non-terminal
// but has been called with a terminal symbol.
var ErrNotANonTerminal = errors.New("symbol is not a non-terminal")

// UndefinedNonTerminalError is returned when a non-terminal without productions
// is referenced, either on the right hand side of a production or as the start
// symbol of a recognition.
type UndefinedNonTerminalError struct {
	Symbol     Symbol
	Production *Production // referencing production, may be nil
}

func (e *UndefinedNonTerminalError) Error() string {
	if e.Production != nil {
		return fmt.Sprintf("undefined non-terminal %s referenced in %s", e.Symbol, e.Production)
	}
	return fmt.Sprintf("undefined non-terminal %s", e.Symbol)
}

// MalformedProductionError is returned for rule definitions which cannot be
// turned into productions.
type MalformedProductionError struct {
	LHS    string
	Reason string
}

func (e *MalformedProductionError) Error() string {
	return fmt.Sprintf("malformed production for %q: %s", e.LHS, e.Reason)
}

// GrammarCycleError is returned by FIRST computation if a non-terminal derives
// itself as a leading symbol. Path lists the non-terminals of the cycle,
// beginning and ending with the same non-terminal.
type GrammarCycleError struct {
	Path []Symbol
}

func (e *GrammarCycleError) Error() string {
	names := make([]string, len(e.Path))
	for i, A := range e.Path {
		names[i] = A.String()
	}
	return "grammar is left recursive: " + strings.Join(names, " -> ")
}

// UnexpectedTrailingInputError is returned if the parse stack has been emptied
// while input symbols remain.
type UnexpectedTrailingInputError struct {
	Position int      // index of the first unconsumed symbol
	Rest     []string // unconsumed symbols
}

func (e *UnexpectedTrailingInputError) Error() string {
	return fmt.Sprintf("unexpected symbols: %q", strings.Join(e.Rest, ""))
}

// UnexpectedSymbolError is returned if there is no transition for a
// non-terminal on top of the stack and the current input symbol.
type UnexpectedSymbolError struct {
	Position    int
	Symbol      string
	NonTerminal Symbol
	Expected    []string // lookaheads with a transition for NonTerminal
}

func (e *UnexpectedSymbolError) Error() string {
	return fmt.Sprintf("unexpected symbol %q at position %d while expanding %s, expected one of %s",
		e.Symbol, e.Position, e.NonTerminal, quoteAll(e.Expected))
}

// SymbolMismatchError is returned if the terminal on top of the stack
// does not match the current input symbol.
type SymbolMismatchError struct {
	Position int
	Actual   string
	Expected string
}

func (e *SymbolMismatchError) Error() string {
	return fmt.Sprintf("unexpected symbol %q at position %d, expected %q",
		e.Actual, e.Position, e.Expected)
}

// UnexpectedEndOfInputError is returned in strict mode if the input is
// exhausted but the stack still holds symbols which cannot derive the empty
// string.
type UnexpectedEndOfInputError struct {
	Position int
	Top      Symbol   // stack top when input ran out
	Expected []string // terminals that would have been accepted
}

func (e *UnexpectedEndOfInputError) Error() string {
	return fmt.Sprintf("unexpected end of input at position %d, %s expects one of %s",
		e.Position, e.Top, quoteAll(e.Expected))
}

// GrammarLoopError is returned if the recognizer expands non-terminals
// repeatedly without consuming input.
type GrammarLoopError struct {
	Position   int
	Expansions int
	Top        Symbol
}

func (e *GrammarLoopError) Error() string {
	return fmt.Sprintf("recognizer loops at position %d: %d expansions of %s without consuming input",
		e.Position, e.Expansions, e.Top)
}

func quoteAll(terms []string) string {
	q := make([]string, len(terms))
	for i, t := range terms {
		if t == EndOfInput {
			q[i] = "end of input"
		} else {
			q[i] = fmt.Sprintf("%q", t)
		}
	}
	return "[" + strings.Join(q, ", ") + "]"
}
