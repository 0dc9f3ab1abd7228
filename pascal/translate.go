package pascal

import (
	"fmt"
	"strings"
)

// Translate returns the Python equivalent of a program. Statements are
// translated one per line:
//
//    x = e                  →  x = int(e)
//    READ(a, b)             →  a, b = [int(v) for v in input().split(" ")]
//    WRITE(a, b)            →  print(a, b)
//    CASE e OF 1: x = y; …  →  if e == 1:
//                                  x = int(y)
//                              elif …
//
// CASE bodies are indented with a tab.
func Translate(prog *Program) string {
	code := make([]string, 0, len(prog.Statements))
	for _, stmt := range prog.Statements {
		code = append(code, translateStatement(stmt))
	}
	return strings.Join(code, "\n")
}

func translateStatement(stmt Statement) string {
	switch s := stmt.(type) {
	case *Assign:
		return fmt.Sprintf("%s = int(%s)", s.Left, Render(s.Right))
	case *Call:
		args := strings.Join(s.Args, ", ")
		if s.Name == "read" {
			return args + ` = [int(v) for v in input().split(" ")]`
		}
		return fmt.Sprintf("print(%s)", args)
	case *Case:
		var b strings.Builder
		expr := Render(s.Expr)
		for i, ch := range s.Choices {
			keyword := "elif"
			if i == 0 {
				keyword = "if"
			} else {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "%s %s == %s:\n\t%s", keyword, expr, ch.Value, translateStatement(ch.Assign))
		}
		return b.String()
	}
	panic(fmt.Sprintf("unknown statement type %T", stmt))
}
