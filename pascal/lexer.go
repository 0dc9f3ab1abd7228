package pascal

import (
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/npillmayer/llpas"
	"github.com/npillmayer/llpas/ll/scanner"
	"github.com/npillmayer/schuko/gconf"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of toy-Pascal.
const (
	Identifier llpas.TokType = iota + 1
	Const
	Var // reserved words
	Begin
	End
	Integer
	CaseKw
	Of
	EndCase
	Write
	Read
	Plus // separators
	Minus
	Slash
	Equals
	Colon
	Comma
	Semicolon
	LParen
	RParen
)

var tokenNames = map[llpas.TokType]string{
	Identifier: "IDENTIFIER",
	Const:      "CONST",
	Var:        "VAR",
	Begin:      "BEGIN",
	End:        "END",
	Integer:    "INTEGER",
	CaseKw:     "CASE",
	Of:         "OF",
	EndCase:    "END_CASE",
	Write:      "WRITE",
	Read:       "READ",
	Plus:       "+",
	Minus:      "-",
	Slash:      "/",
	Equals:     "=",
	Colon:      ":",
	Comma:      ",",
	Semicolon:  ";",
	LParen:     "(",
	RParen:     ")",
}

// TokenName returns the name of a token type. Reserved words are named
// by themselves, separators by their character. Token names are the
// terminals of the table-driven Pascal grammar.
func TokenName(t llpas.TokType) string {
	if t == scanner.EOF {
		return "end of input"
	}
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("token(%d)", t)
}

var reservedWords = []string{"VAR", "BEGIN", "END", "INTEGER", "CASE", "OF", "END_CASE", "WRITE", "READ"}

var separators = []string{"+", "-", "/", "=", ":", ",", ";", "(", ")"}

var tokenIds map[string]int

func init() {
	tokenIds = make(map[string]int, len(tokenNames))
	for t, name := range tokenNames {
		tokenIds[name] = int(t)
	}
}

var identPattern = regexp.MustCompile(`^[A-Za-z]{1,11}$`)
var constPattern = regexp.MustCompile(`^[0-9]+$`)

// LexicalError is returned for input which is neither a reserved word, an
// identifier, a constant nor a separator.
type LexicalError struct {
	Pos    llpas.Span
	Lexeme string
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("unknown lexeme %q at %s", e.Lexeme, e.Pos)
}

// word is the action for runs of letters, digits and underscores which are
// not reserved words. Identifiers have at most 11 letters, constants are
// unsigned decimal numbers.
func word(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	lexeme := string(m.Bytes)
	switch {
	case identPattern.MatchString(lexeme):
		return s.Token(int(Identifier), lexeme, m), nil
	case constPattern.MatchString(lexeme):
		return s.Token(int(Const), lexeme, m), nil
	}
	return nil, &LexicalError{
		Pos:    llpas.Span{uint64(m.TC), uint64(m.TC + len(m.Bytes))},
		Lexeme: lexeme,
	}
}

var lexer struct {
	once    sync.Once
	adapter *scanner.LMAdapter
	err     error
}

func lexerAdapter() (*scanner.LMAdapter, error) {
	lexer.once.Do(func() {
		init := func(lm *lexmachine.Lexer) {
			lm.Add([]byte(`[A-Za-z0-9_]+`), word)
			lm.Add([]byte("( |\t|\r|\n)+"), scanner.Skip)
		}
		lexer.adapter, lexer.err = scanner.NewLMAdapter(init, separators, reservedWords,
			tokenIds, scanner.KeepKeywordCase())
	})
	return lexer.adapter, lexer.err
}

// Tokenize splits toy-Pascal source code into tokens. Reserved words and
// separators are tokens of their own, blanks, tabs and newlines are
// skipped. Words are matched longest first, i.e. "BEGINEND" is an identifier.
//
// Tokenize fails on the first lexical error.
func Tokenize(src string) ([]llpas.Token, error) {
	lm, err := lexerAdapter()
	if err != nil {
		return nil, err
	}
	scan, err := lm.Scanner(src)
	if err != nil {
		return nil, err
	}
	var lexErr error
	scan.SetErrorHandler(func(e error) {
		if lexErr == nil {
			lexErr = e
		}
	})
	var tokens []llpas.Token
	for {
		token := scan.NextToken()
		if lexErr != nil {
			return nil, asLexicalError(lexErr, src)
		}
		if token.TokType() == scanner.EOF {
			break
		}
		if gconf.GetBool("pascal.trace-tokens") {
			tracer().Debugf("%-10s %q %s", TokenName(token.TokType()), token.Lexeme(), token.Span())
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}

func asLexicalError(err error, src string) error {
	var lexErr *LexicalError
	if errors.As(err, &lexErr) {
		return lexErr
	}
	var ui *machines.UnconsumedInput
	if errors.As(err, &ui) {
		end := ui.FailTC
		if end <= ui.StartTC {
			end = ui.StartTC + 1
		}
		if end > len(src) {
			end = len(src)
		}
		return &LexicalError{
			Pos:    llpas.Span{uint64(ui.StartTC), uint64(end)},
			Lexeme: src[ui.StartTC:end],
		}
	}
	return err
}
