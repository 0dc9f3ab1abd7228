package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/llpas/pascal"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func readSource(path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	tracer().Debugf("read %d bytes of source from %s", len(src), path)
	return string(src), nil
}

func parseFile(path string) (*pascal.Program, error) {
	src, err := readSource(path)
	if err != nil {
		return nil, err
	}
	return pascal.Parse(src)
}

var lexCmd = &cobra.Command{
	Use:   "lex FILE",
	Short: "Print the tokens of a toy-Pascal program",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(args[0])
		if err != nil {
			return err
		}
		tokens, err := pascal.Tokenize(src)
		if err != nil {
			return err
		}
		for _, t := range tokens {
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %-14q %s\n", pascal.TokenName(t.TokType()), t.Lexeme(), t.Span())
		}
		return nil
	},
}

var recognizeCmd = &cobra.Command{
	Use:   "recognize FILE",
	Short: "Check a toy-Pascal program with the table-driven recognizer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(args[0])
		if err != nil {
			return err
		}
		trace, err := pascal.Recognize(src)
		if err != nil {
			return err
		}
		pterm.Info.Println(fmt.Sprintf("accepted, %d expansions", len(trace)))
		tracer().Debugf("trace = %s", trace)
		return nil
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Print the syntax tree of a toy-Pascal program",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prog, err := parseFile(args[0])
		if err != nil {
			return err
		}
		root := pterm.NewTreeFromLeveledList(prog.LeveledList())
		pterm.DefaultTree.WithRoot(root).Render()
		return nil
	},
}

var translateCmd = &cobra.Command{
	Use:   "translate FILE",
	Short: "Translate a toy-Pascal program to Python",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prog, err := parseFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), pascal.Translate(prog))
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Run a toy-Pascal program, reading input from stdin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prog, err := parseFile(args[0])
		if err != nil {
			return err
		}
		return pascal.NewInterpreter(cmd.InOrStdin(), cmd.OutOrStdout()).Run(prog)
	},
}

func init() {
	rootCmd.AddCommand(lexCmd, recognizeCmd, parseCmd, translateCmd, runCmd)
}
