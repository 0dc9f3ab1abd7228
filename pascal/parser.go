package pascal

import (
	"fmt"

	"github.com/npillmayer/llpas"
	"github.com/npillmayer/llpas/ll/scanner"
	"github.com/npillmayer/llpas/runtime"
)

// SyntaxError is returned by the parser for unexpected tokens. Found is the
// name of the offending token, Expected what the parser would have accepted.
type SyntaxError struct {
	Pos      llpas.Span
	Found    string
	Expected string
	Msg      string
}

func (e *SyntaxError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
	}
	if e.Expected == "" {
		return fmt.Sprintf("%s: unexpected %q", e.Pos, e.Found)
	}
	return fmt.Sprintf("%s: unexpected %q, expected %q", e.Pos, e.Found, e.Expected)
}

// UndeclaredVariableError is returned for references to variables not
// declared in the VAR section.
type UndeclaredVariableError struct {
	Pos  llpas.Span
	Name string
}

func (e *UndeclaredVariableError) Error() string {
	return fmt.Sprintf("%s: unknown variable %s", e.Pos, e.Name)
}

// Parser is a recursive descent parser for toy-Pascal.
//
//    program    = VAR idlist ':' INTEGER ';' BEGIN { statement ';' } END
//    idlist     = IDENTIFIER { ',' IDENTIFIER }
//    statement  = assignment
//               | ( WRITE | READ ) '(' idlist ')'
//               | CASE expr OF { CONST ':' assignment ';' } END_CASE
//    assignment = IDENTIFIER '=' expr
//    expr       = operand [ op expr ] | '(' expr ')' [ op expr ] | '-' expr
//    operand    = IDENTIFIER | CONST
//    op         = '+' | '-' | '/'
//
// Parsers are not safe for concurrent use; create one parser per program.
type Parser struct {
	tokens *scanner.Cursor
	rt     *runtime.Runtime
	scope  *runtime.Scope
}

// NewParser creates a parser for a token sequence, as produced by Tokenize.
func NewParser(tokens []llpas.Token) *Parser {
	return &Parser{
		tokens: scanner.NewCursor(tokens),
		rt:     runtime.NewRuntimeEnvironment(),
	}
}

// Parse tokenizes and parses a toy-Pascal program.
func Parse(src string) (*Program, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return NewParser(tokens).Program()
}

// Scope returns the scope of the program's variables. It is nil before the
// variable declarations have been parsed.
func (p *Parser) Scope() *runtime.Scope {
	return p.scope
}

// Program parses a complete program. Tokens after the final END are an error.
func (p *Parser) Program() (*Program, error) {
	prog := &Program{}
	var err error
	if prog.Variables, err = p.varDef(); err != nil {
		return nil, err
	}
	if prog.Statements, err = p.statements(); err != nil {
		return nil, err
	}
	if !p.tokens.Done() {
		return nil, p.unexpected("")
	}
	tracer().Debugf("parsed program with %d statements", len(prog.Statements))
	return prog, nil
}

// --- Helpers ---------------------------------------------------------------

func (p *Parser) current() llpas.TokType {
	return p.tokens.Current().TokType()
}

func (p *Parser) unexpected(expected string) error {
	t := p.tokens.Current()
	return &SyntaxError{
		Pos:      t.Span(),
		Found:    TokenName(t.TokType()),
		Expected: expected,
	}
}

// expect matches a sequence of tokens.
func (p *Parser) expect(types ...llpas.TokType) error {
	for _, typ := range types {
		if p.current() != typ {
			return p.unexpected(TokenName(typ))
		}
		p.tokens.Advance()
	}
	return nil
}

func (p *Parser) checkDeclared(t llpas.Token) error {
	if tag, _ := p.scope.ResolveTag(t.Lexeme()); tag == nil {
		return &UndeclaredVariableError{Pos: t.Span(), Name: t.Lexeme()}
	}
	return nil
}

// --- Productions -----------------------------------------------------------

func (p *Parser) varDef() ([]string, error) {
	if err := p.expect(Var); err != nil {
		return nil, err
	}
	p.scope = p.rt.ScopeTree.PushNewScope("program")
	vars, err := p.identifierList(true)
	if err != nil {
		return nil, err
	}
	if err = p.expect(Colon, Integer, Semicolon); err != nil {
		return nil, err
	}
	return vars, nil
}

// identifierList parses a list of identifiers. In declarations, identifiers
// are declared in the program scope, otherwise they have to be declared.
func (p *Parser) identifierList(declaring bool) ([]string, error) {
	if p.current() != Identifier {
		return nil, p.unexpected(TokenName(Identifier))
	}
	var ids []string
	for p.current() == Identifier {
		t := p.tokens.Advance()
		if declaring {
			if _, err := p.scope.Declare(t.Lexeme(), runtime.IntegerType, t.Span()); err != nil {
				return nil, err
			}
		} else if err := p.checkDeclared(t); err != nil {
			return nil, err
		}
		ids = append(ids, t.Lexeme())
		if p.current() != Comma {
			break
		}
		p.tokens.Advance()
	}
	return ids, nil
}

func (p *Parser) statements() ([]Statement, error) {
	if err := p.expect(Begin); err != nil {
		return nil, err
	}
	var stmts []Statement
	for !p.tokens.Done() && p.current() != End {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if err := p.expect(End); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *Parser) statement() (stmt Statement, err error) {
	switch p.current() {
	case Identifier:
		stmt, err = p.assign()
	case Write, Read:
		name := "write"
		if p.tokens.Advance().TokType() == Read {
			name = "read"
		}
		if err = p.expect(LParen); err != nil {
			return nil, err
		}
		var args []string
		if args, err = p.identifierList(false); err != nil {
			return nil, err
		}
		if err = p.expect(RParen); err != nil {
			return nil, err
		}
		stmt = &Call{Name: name, Args: args}
	case CaseKw:
		stmt, err = p.caseStatement()
	default:
		t := p.tokens.Current()
		return nil, &SyntaxError{
			Pos:   t.Span(),
			Found: TokenName(t.TokType()),
			Msg:   fmt.Sprintf("invalid statement starting with %q", TokenName(t.TokType())),
		}
	}
	if err != nil {
		return nil, err
	}
	if err = p.expect(Semicolon); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) assign() (*Assign, error) {
	if p.current() != Identifier {
		return nil, p.unexpected(TokenName(Identifier))
	}
	t := p.tokens.Advance()
	if err := p.checkDeclared(t); err != nil {
		return nil, err
	}
	if err := p.expect(Equals); err != nil {
		return nil, err
	}
	right, err := p.expr()
	if err != nil {
		return nil, err
	}
	return &Assign{Left: t.Lexeme(), Right: right}, nil
}

func (p *Parser) caseStatement() (*Case, error) {
	if err := p.expect(CaseKw); err != nil {
		return nil, err
	}
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err = p.expect(Of); err != nil {
		return nil, err
	}
	c := &Case{Expr: e}
	index := make(map[string]int)
	for !p.tokens.Done() && p.current() != EndCase {
		if p.current() != Const {
			return nil, p.unexpected(TokenName(Const))
		}
		value := p.tokens.Advance().Lexeme()
		if err = p.expect(Colon); err != nil {
			return nil, err
		}
		var a *Assign
		if a, err = p.assign(); err != nil {
			return nil, err
		}
		if err = p.expect(Semicolon); err != nil {
			return nil, err
		}
		if i, dup := index[value]; dup {
			c.Choices[i].Assign = a
			continue
		}
		index[value] = len(c.Choices)
		c.Choices = append(c.Choices, Choice{Value: value, Assign: a})
	}
	if len(c.Choices) == 0 {
		t := p.tokens.Current()
		return nil, &SyntaxError{Pos: t.Span(), Found: TokenName(t.TokType()),
			Msg: "CASE without choices"}
	}
	if err = p.expect(EndCase); err != nil {
		return nil, err
	}
	return c, nil
}

func isOperator(t llpas.TokType) bool {
	return t == Plus || t == Minus || t == Slash
}

func isTerminator(t llpas.TokType) bool {
	return t == scanner.EOF || t == RParen || t == Semicolon || t == Of
}

func (p *Parser) expr() (Expr, error) {
	switch p.current() {
	case LParen:
		p.tokens.Advance()
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err = p.expect(RParen); err != nil {
			return nil, err
		}
		return p.rest(&Parentheses{Inner: inner})
	case Const, Identifier:
		t := p.tokens.Advance()
		if t.TokType() == Identifier {
			if err := p.checkDeclared(t); err != nil {
				return nil, err
			}
		}
		return p.rest(Atom(t.Lexeme()))
	case Minus:
		p.tokens.Advance()
		operand, err := p.expr()
		if err != nil {
			return nil, err
		}
		return &Expression{Operand1: operand, Op: "-"}, nil
	}
	t := p.tokens.Current()
	return nil, &SyntaxError{Pos: t.Span(), Found: TokenName(t.TokType()),
		Msg: fmt.Sprintf("expected expression, found %q", TokenName(t.TokType()))}
}

// rest parses an optional `op expr` after a first operand.
func (p *Parser) rest(operand1 Expr) (Expr, error) {
	if isTerminator(p.current()) {
		return operand1, nil
	}
	if !isOperator(p.current()) {
		return nil, p.unexpected("")
	}
	op := TokenName(p.tokens.Advance().TokType())
	operand2, err := p.expr()
	if err != nil {
		return nil, err
	}
	return &Expression{Operand1: operand1, Operand2: operand2, Op: op}, nil
}
