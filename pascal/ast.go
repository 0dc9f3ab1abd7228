package pascal

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// Program is the root node of a toy-Pascal AST.
type Program struct {
	Variables  []string
	Statements []Statement
}

// Statement is one of *Assign, *Call or *Case.
type Statement interface {
	fmt.Stringer
	isStatement()
}

// Assign is an assignment `Left = Right`.
type Assign struct {
	Left  string
	Right Expr
}

// Call is a call of a built-in procedure, i.e. "read" or "write".
type Call struct {
	Name string
	Args []string
}

// Case is a CASE statement. Choices are kept in source order; a choice value
// occurs at most once.
type Case struct {
	Expr    Expr
	Choices []Choice
}

// Choice is a single branch of a CASE statement.
type Choice struct {
	Value  string
	Assign *Assign
}

func (*Assign) isStatement() {}
func (*Call) isStatement()   {}
func (*Case) isStatement()   {}

// Expr is one of Atom, *Expression or *Parentheses.
type Expr interface {
	fmt.Stringer
	isExpr()
}

// Atom is an identifier or a constant.
type Atom string

// Expression is a binary expression `Operand1 Op Operand2`, or a unary
// expression `Op Operand1` if Operand2 is nil.
//
// Binary expressions are right-nested: `a - b + c` is parsed as
// Expression{a, -, Expression{b, +, c}}. A unary minus applies to the
// complete rest of the expression: `-a + 2` is Expression{-, Expression{a, +, 2}}.
// Evaluation does not follow this structure, but the usual precedence rules
// over the rendered expression (see Render).
type Expression struct {
	Operand1 Expr
	Operand2 Expr
	Op       string
}

// Parentheses is a parenthesized expression.
type Parentheses struct {
	Inner Expr
}

func (Atom) isExpr()         {}
func (*Expression) isExpr()  {}
func (*Parentheses) isExpr() {}

// IsUnary is a predicate.
func (e *Expression) IsUnary() bool {
	return e.Operand2 == nil
}

// --- Stringers -------------------------------------------------------------

func (a Atom) String() string {
	return string(a)
}

func (e *Expression) String() string {
	if e.IsUnary() {
		return fmt.Sprintf("(%s %s)", e.Op, e.Operand1)
	}
	return fmt.Sprintf("(%s %s %s)", e.Op, e.Operand1, e.Operand2)
}

func (p *Parentheses) String() string {
	return fmt.Sprintf("(paren %s)", p.Inner)
}

func (a *Assign) String() string {
	return fmt.Sprintf("%s = %s", a.Left, a.Right)
}

func (c *Call) String() string {
	return fmt.Sprintf("%s(%s)", c.Name, strings.Join(c.Args, ", "))
}

func (c *Case) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "case %s of", c.Expr)
	for _, ch := range c.Choices {
		fmt.Fprintf(&b, " %s: %s;", ch.Value, ch.Assign)
	}
	return b.String()
}

// Render returns the infix notation of an expression, with operators and
// operands separated by blanks and unary operators prefixed immediately.
func Render(e Expr) string {
	switch x := e.(type) {
	case Atom:
		return string(x)
	case *Parentheses:
		return "(" + Render(x.Inner) + ")"
	case *Expression:
		if x.IsUnary() {
			return x.Op + Render(x.Operand1)
		}
		return Render(x.Operand1) + " " + x.Op + " " + Render(x.Operand2)
	}
	return ""
}

// --- Tree output -----------------------------------------------------------

// LeveledList returns a program as a leveled list, suitable for printing
// with pterm's tree printer:
//
//    root := pterm.NewTreeFromLeveledList(prog.LeveledList())
//    pterm.DefaultTree.WithRoot(root).Render()
//
func (prog *Program) LeveledList() pterm.LeveledList {
	ll := pterm.LeveledList{
		{Level: 0, Text: "program"},
		{Level: 1, Text: "var " + strings.Join(prog.Variables, ", ")},
		{Level: 1, Text: "begin"},
	}
	for _, stmt := range prog.Statements {
		ll = appendStatement(ll, stmt, 2)
	}
	return ll
}

func appendStatement(ll pterm.LeveledList, stmt Statement, level int) pterm.LeveledList {
	switch s := stmt.(type) {
	case *Assign:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: s.Left + " ="})
		ll = appendExpr(ll, s.Right, level+1)
	case *Call:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: s.String()})
	case *Case:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: "case"})
		ll = appendExpr(ll, s.Expr, level+1)
		for _, ch := range s.Choices {
			ll = append(ll, pterm.LeveledListItem{Level: level + 1, Text: ch.Value + ":"})
			ll = appendStatement(ll, ch.Assign, level+2)
		}
	}
	return ll
}

func appendExpr(ll pterm.LeveledList, e Expr, level int) pterm.LeveledList {
	switch x := e.(type) {
	case Atom:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: string(x)})
	case *Parentheses:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: "( )"})
		ll = appendExpr(ll, x.Inner, level+1)
	case *Expression:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: x.Op})
		ll = appendExpr(ll, x.Operand1, level+1)
		if !x.IsUnary() {
			ll = appendExpr(ll, x.Operand2, level+1)
		}
	}
	return ll
}
