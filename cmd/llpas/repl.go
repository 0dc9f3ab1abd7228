package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/llpas/ll"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Recognize input lines interactively",
	Long: `repl reads lines and recognizes each of them with the table-driven
recognizer. Lines starting with a colon are commands:

    :first <A>    print FIRST(<A>)
    :follow <A>   print FOLLOW(<A>)
    :table        print the transition table
    :quit         leave the REPL (or <ctrl>D)`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, start, err := loadGrammar()
		if err != nil {
			return err
		}
		r, err := ll.NewRecognizer(g)
		if err != nil {
			return err
		}
		repl, err := readline.New("llpas> ")
		if err != nil {
			return err
		}
		defer repl.Close()
		intp := &Intp{
			recognizer: r,
			analysis:   ll.Analysis(g),
			start:      start,
			repl:       repl,
			out:        os.Stdout,
		}
		pterm.Info.Println(fmt.Sprintf("Welcome to llpas, grammar %s, start symbol %s", g.Name, start))
		tracer().Infof("Quit with <ctrl>D")
		intp.REPL()
		return nil
	},
}

// Intp is our interpreter object
type Intp struct {
	recognizer *ll.Recognizer
	analysis   *ll.GrammarAnalysis
	start      string
	repl       *readline.Instance
	out        io.Writer
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	fmt.Fprintln(intp.out, "Good bye!")
}

// Eval executes a command or recognizes a line of input.
func (intp *Intp) Eval(line string) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		trace, err := intp.recognizer.Analyze(symbolsOf(line), intp.start)
		if err != nil {
			return false, err
		}
		pterm.Info.Println(trace.String())
		return false, nil
	}
	fields := strings.Fields(line[1:])
	if len(fields) == 0 {
		return false, fmt.Errorf("missing command")
	}
	switch fields[0] {
	case "quit", "q":
		return true, nil
	case "table":
		return false, ll.TableAsText(intp.recognizer.Table(), intp.out)
	case "first", "follow":
		if len(fields) != 2 {
			return false, fmt.Errorf("usage: :%s <A>", fields[0])
		}
		A := ll.N(fields[1])
		var set *ll.TermSet
		var err error
		if fields[0] == "first" {
			set, err = intp.analysis.First(A)
		} else {
			set, err = intp.analysis.Follow(A)
		}
		if err != nil {
			return false, err
		}
		fmt.Fprintf(intp.out, "%s(%s) = %s\n", strings.ToUpper(fields[0]), A, set)
		return false, nil
	}
	return false, fmt.Errorf("unknown command %q", fields[0])
}
