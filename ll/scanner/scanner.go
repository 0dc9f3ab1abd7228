/*
Package scanner defines an interface for scanners feeding the recognizers of
package ll and the parsers of package pascal.

Two default scanner implementations are provided: (1) a thin wrapper over the
Go std lib 'text/scanner', and (2) an adapter for lexmachine.

The LL(1) recognizer consumes plain symbol strings, not tokens. Function
Symbols drains a tokenizer and converts each token to a symbol using a
classification function, e.g. TokenClass for the Go tokenizer:

    tok := scanner.GoTokenizer("input", strings.NewReader("a + 12"))
    symbols := scanner.Symbols(tok, scanner.TokenClass)  // [Ident + Int]

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"io"
	"text/scanner"

	"github.com/npillmayer/llpas"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llpas.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("llpas.scanner")
}

// EOF is identical to text/scanner.EOF.
// Token types are replicated here for practical reasons.
const (
	EOF       = scanner.EOF
	Ident     = scanner.Ident
	Int       = scanner.Int
	Float     = scanner.Float
	Char      = scanner.Char
	String    = scanner.String
	RawString = scanner.RawString
	Comment   = scanner.Comment
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() llpas.Token
	SetErrorHandler(func(error))
}

// DefaultTokenizer is a default implementation, backed by scanner.Scanner.
// Create one with GoTokenizer.
type DefaultTokenizer struct {
	scanner.Scanner
	lastToken    rune        // last token this scanner has produced
	Error        func(error) // error handler
	unifyStrings bool        // convert single chars to strings
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// GoTokenizer creates a scanner/tokenizer accepting tokens similar to the Go language.
func GoTokenizer(sourceID string, input io.Reader, opts ...Option) *DefaultTokenizer {
	t := &DefaultTokenizer{}
	t.Error = logError
	t.Init(input)
	t.Filename = sourceID
	t.Scanner.Error = func(s *scanner.Scanner, msg string) {
		t.Error(fmt.Errorf("%s: %s", s.Position, msg))
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetErrorHandler sets an error handler for the scanner.
func (t *DefaultTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *DefaultTokenizer) NextToken() llpas.Token {
	t.lastToken = t.Scan()
	if t.lastToken == scanner.EOF {
		tracer().Debugf("DefaultTokenizer reached end of input")
	}
	if t.unifyStrings &&
		(t.lastToken == scanner.RawString || t.lastToken == scanner.Char) {
		t.lastToken = scanner.String
	}
	return DefaultToken{
		kind:   llpas.TokType(t.lastToken),
		lexeme: t.TokenText(),
		span:   llpas.Span{uint64(t.Position.Offset), uint64(t.Pos().Offset)},
	}
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the Go
// tokenizer as well as the lexmachine scanner.
type DefaultToken struct {
	kind   llpas.TokType
	lexeme string
	Val    interface{}
	span   llpas.Span
}

// MakeDefaultToken creates a token without a value.
func MakeDefaultToken(typ llpas.TokType, lexeme string, span llpas.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() llpas.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() llpas.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("<%d|%q %s>", t.kind, t.lexeme, t.span)
}

// --- Scanner options for the default (Go) tokenizer ---------------------------

// Option configures a default tokenizer.
type Option func(p *DefaultTokenizer)

// SkipComments sets or clears mode-flag SkipComments.
func SkipComments(b bool) Option {
	return func(t *DefaultTokenizer) {
		if b {
			t.Mode |= scanner.SkipComments
		} else {
			t.Mode &^= scanner.SkipComments
		}
	}
}

// UnifyStrings sets or clears option UnifyStrings:
// treat raw strings and single chars as strings.
func UnifyStrings(b bool) Option {
	return func(t *DefaultTokenizer) {
		t.unifyStrings = b
	}
}

// --- Tokens to symbols -----------------------------------------------------

// Tokens reads tokens from a tokenizer until EOF. The EOF token is not
// included.
func Tokens(t Tokenizer) []llpas.Token {
	var tokens []llpas.Token
	for {
		token := t.NextToken()
		if token.TokType() == EOF {
			return tokens
		}
		tokens = append(tokens, token)
	}
}

// Symbols drains a tokenizer and converts every token to a grammar symbol,
// using function classify.
func Symbols(t Tokenizer, classify func(llpas.Token) string) []string {
	tokens := Tokens(t)
	symbols := make([]string, len(tokens))
	for i, token := range tokens {
		symbols[i] = classify(token)
	}
	return symbols
}

// Lexeme is a classification function which uses a token's lexeme as symbol.
func Lexeme(token llpas.Token) string {
	return token.Lexeme()
}

// TokenClass is a classification function for tokens of the Go tokenizer.
// Identifiers, numbers and strings are classified by their token type
// ("Ident", "Int", "Float", "String", …), all other tokens by their lexeme.
func TokenClass(token llpas.Token) string {
	if class, ok := tokenClassNames[rune(token.TokType())]; ok {
		return class
	}
	return token.Lexeme()
}

var tokenClassNames = map[rune]string{
	Ident:     "Ident",
	Int:       "Int",
	Float:     "Float",
	Char:      "Char",
	String:    "String",
	RawString: "RawString",
	Comment:   "Comment",
}
