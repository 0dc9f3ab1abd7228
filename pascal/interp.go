package pascal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/llpas/runtime"
)

// ErrDivisionByZero is returned by the interpreter for a division by zero.
var ErrDivisionByZero = errors.New("division by zero")

// UnassignedVariableError is returned when a variable is read before a value
// has been assigned to it.
type UnassignedVariableError struct {
	Name string
}

func (e *UnassignedVariableError) Error() string {
	return fmt.Sprintf("variable %s has no value", e.Name)
}

// InputError is returned if the input for a READ statement cannot be used.
type InputError struct {
	Line   string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("READ: %s: %q", e.Reason, e.Line)
}

// Interpreter runs toy-Pascal programs. Arithmetic follows the Python
// translation (see Translate): it is done in floating point, assignments
// truncate to integer and expressions are evaluated with the usual operator
// precedence.
//
// READ differs for a single variable: READ(a) stores the integer read, where
// the translated a = [int(v) for v in ...] would bind a list of one. Every
// variable of an interpreted program always holds an integer.
type Interpreter struct {
	rt  *runtime.Runtime
	in  *bufio.Reader
	out io.Writer
}

// NewInterpreter creates an interpreter with READ statements reading from in
// and WRITE statements writing to out.
func NewInterpreter(in io.Reader, out io.Writer) *Interpreter {
	return &Interpreter{
		rt:  runtime.NewRuntimeEnvironment(),
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Run executes the statements of a program. Variables keep their values
// between runs.
func (ip *Interpreter) Run(prog *Program) error {
	for _, stmt := range prog.Statements {
		if err := ip.exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Value returns the current value of a variable.
func (ip *Interpreter) Value(name string) (int, bool) {
	v, ok := ip.rt.Globals().Load(name)
	if !ok {
		return 0, false
	}
	return v.(int), true
}

func (ip *Interpreter) exec(stmt Statement) error {
	switch s := stmt.(type) {
	case *Assign:
		return ip.assign(s)
	case *Call:
		if s.Name == "read" {
			return ip.read(s.Args)
		}
		return ip.write(s.Args)
	case *Case:
		x, err := ip.eval(s.Expr)
		if err != nil {
			return err
		}
		for _, ch := range s.Choices {
			v, err := strconv.ParseFloat(ch.Value, 64)
			if err != nil {
				return err
			}
			if x == v {
				return ip.assign(ch.Assign)
			}
		}
		return nil
	}
	return fmt.Errorf("unknown statement type %T", stmt)
}

func (ip *Interpreter) assign(a *Assign) error {
	x, err := ip.eval(a.Right)
	if err != nil {
		return err
	}
	ip.rt.Globals().Store(a.Left, int(math.Trunc(x)))
	return nil
}

func (ip *Interpreter) read(vars []string) error {
	line, err := ip.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return &InputError{Line: line, Reason: "no input"}
	}
	line = strings.TrimRight(line, "\r\n")
	fields := strings.Split(line, " ")
	if len(fields) != len(vars) {
		return &InputError{Line: line,
			Reason: fmt.Sprintf("expected %d values, have %d", len(vars), len(fields))}
	}
	values := make([]int, len(fields))
	for i, f := range fields {
		if values[i], err = strconv.Atoi(strings.TrimSpace(f)); err != nil {
			return &InputError{Line: line, Reason: fmt.Sprintf("not an integer: %q", f)}
		}
	}
	for i, name := range vars {
		ip.rt.Globals().Store(name, values[i])
	}
	return nil
}

func (ip *Interpreter) write(vars []string) error {
	values := make([]string, len(vars))
	for i, name := range vars {
		v, ok := ip.Value(name)
		if !ok {
			return &UnassignedVariableError{Name: name}
		}
		values[i] = strconv.Itoa(v)
	}
	_, err := fmt.Fprintln(ip.out, strings.Join(values, " "))
	return err
}

// --- Expression evaluation -------------------------------------------------

// The AST keeps the right-nested shape of the parser, which does not reflect
// operator precedence. Expressions are flattened back to infix and evaluated
// by precedence climbing:
//
//    sum     = product { ('+' | '-') product }
//    product = unary { '/' unary }
//    unary   = '-' unary | operand | '(' sum ')'

const unaryMinus = "~"

func flatten(e Expr, out []string) []string {
	switch x := e.(type) {
	case Atom:
		return append(out, string(x))
	case *Parentheses:
		out = append(out, "(")
		out = flatten(x.Inner, out)
		return append(out, ")")
	case *Expression:
		if x.IsUnary() {
			return flatten(x.Operand1, append(out, unaryMinus))
		}
		out = flatten(x.Operand1, out)
		return flatten(x.Operand2, append(out, x.Op))
	}
	return out
}

type evaluator struct {
	ip     *Interpreter
	tokens []string
	pos    int
}

func (ip *Interpreter) eval(e Expr) (float64, error) {
	ev := &evaluator{ip: ip, tokens: flatten(e, nil)}
	x, err := ev.sum()
	if err == nil && ev.pos < len(ev.tokens) {
		err = fmt.Errorf("malformed expression %q", Render(e))
	}
	return x, err
}

func (ev *evaluator) peek() string {
	if ev.pos < len(ev.tokens) {
		return ev.tokens[ev.pos]
	}
	return ""
}

func (ev *evaluator) next() string {
	t := ev.peek()
	ev.pos++
	return t
}

func (ev *evaluator) sum() (float64, error) {
	x, err := ev.product()
	for err == nil && (ev.peek() == "+" || ev.peek() == "-") {
		op := ev.next()
		var y float64
		if y, err = ev.product(); err == nil {
			if op == "+" {
				x += y
			} else {
				x -= y
			}
		}
	}
	return x, err
}

func (ev *evaluator) product() (float64, error) {
	x, err := ev.unary()
	for err == nil && ev.peek() == "/" {
		ev.next()
		var y float64
		if y, err = ev.unary(); err == nil {
			if y == 0 {
				return 0, ErrDivisionByZero
			}
			x /= y
		}
	}
	return x, err
}

func (ev *evaluator) unary() (float64, error) {
	switch t := ev.next(); t {
	case unaryMinus:
		x, err := ev.unary()
		return -x, err
	case "(":
		x, err := ev.sum()
		if err != nil {
			return 0, err
		}
		if ev.next() != ")" {
			return 0, errors.New("missing closing parenthesis")
		}
		return x, nil
	case "":
		return 0, errors.New("unexpected end of expression")
	default:
		if c, err := strconv.ParseFloat(t, 64); err == nil {
			return c, nil
		}
		v, ok := ev.ip.Value(t)
		if !ok {
			return 0, &UnassignedVariableError{Name: t}
		}
		return float64(v), nil
	}
}
