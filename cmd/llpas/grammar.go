package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/llpas/ll"
	"github.com/npillmayer/llpas/ll/scanner"
	"github.com/npillmayer/llpas/pascal"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	grammarFile string
	startSymbol string
	useTokens   bool
	htmlOutput  bool
)

// loadGrammar loads the grammar given by flag --grammar, or the toy-Pascal
// grammar. It returns the grammar and its start symbol.
func loadGrammar() (*ll.Grammar, string, error) {
	var g *ll.Grammar
	var start string
	if grammarFile == "" {
		var err error
		if g, err = pascal.Grammar(); err != nil {
			return nil, "", err
		}
		start = pascal.StartSymbol
	} else {
		def, err := ll.LoadGrammarDef(grammarFile)
		if err != nil {
			return nil, "", err
		}
		if g, err = def.Grammar(); err != nil {
			return nil, "", err
		}
		start = def.StartSymbol()
	}
	if startSymbol != "" {
		start = startSymbol
	}
	tracer().Infof("using grammar %s, start symbol is %s", g.Name, start)
	g.Dump() // only visible in debug mode
	return g, start, nil
}

// nonTerminals returns the non-terminals named in args, or all non-terminals
// of g if args is empty.
func nonTerminals(g *ll.Grammar, args []string) []ll.Symbol {
	if len(args) == 0 {
		return g.NonTerminals()
	}
	syms := make([]ll.Symbol, len(args))
	for i, a := range args {
		syms[i] = ll.N(a)
	}
	return syms
}

type setFunc func(*ll.GrammarAnalysis, ll.Symbol) (*ll.TermSet, error)

func printSets(w io.Writer, name string, sets setFunc, args []string) error {
	g, _, err := loadGrammar()
	if err != nil {
		return err
	}
	ga := ll.Analysis(g)
	for _, A := range nonTerminals(g, args) {
		set, err := sets(ga, A)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s(%s) = %s\n", name, A, set)
	}
	return nil
}

var firstCmd = &cobra.Command{
	Use:   "first [NONTERMINAL...]",
	Short: "Print FIRST sets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printSets(cmd.OutOrStdout(), "FIRST", (*ll.GrammarAnalysis).First, args)
	},
}

var followCmd = &cobra.Command{
	Use:   "follow [NONTERMINAL...]",
	Short: "Print FOLLOW sets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printSets(cmd.OutOrStdout(), "FOLLOW", (*ll.GrammarAnalysis).Follow, args)
	},
}

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the LL(1) transition table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, _, err := loadGrammar()
		if err != nil {
			return err
		}
		table, err := g.Table()
		if err != nil {
			return err
		}
		if htmlOutput {
			return ll.TableAsHTML(table, cmd.OutOrStdout())
		}
		return ll.TableAsText(table, cmd.OutOrStdout())
	},
}

var checkCmd = &cobra.Command{
	Use:   "check INPUT...",
	Short: "Recognize input with the table-driven recognizer",
	Long: `check recognizes every argument with the table-driven recognizer. Input
is split into characters, or with flag --tokens into Go tokens, where
identifiers and literals are classified as Ident, Int, Float, String, ….`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, start, err := loadGrammar()
		if err != nil {
			return err
		}
		r, err := ll.NewRecognizer(g)
		if err != nil {
			return err
		}
		failed := 0
		for _, input := range args {
			if err := recognize(r, start, input); err != nil {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d inputs rejected", failed, len(args))
		}
		return nil
	},
}

func symbolsOf(input string) []string {
	if useTokens {
		return scanner.Symbols(scanner.GoTokenizer("input", strings.NewReader(input)), scanner.TokenClass)
	}
	return ll.SplitChars(input)
}

func recognize(r *ll.Recognizer, start string, input string) error {
	trace, err := r.Analyze(symbolsOf(input), start)
	if err != nil {
		pterm.Error.Println(fmt.Sprintf("%q: %v", input, err))
		return err
	}
	pterm.Info.Println(fmt.Sprintf("%q accepted: %s", input, trace))
	return nil
}

func init() {
	for _, cmd := range []*cobra.Command{firstCmd, followCmd, tableCmd, checkCmd, replCmd} {
		cmd.Flags().StringVarP(&grammarFile, "grammar", "g", "", "Grammar definition file (.toml, .yaml)")
		rootCmd.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{checkCmd, replCmd} {
		cmd.Flags().StringVarP(&startSymbol, "start", "s", "", "Start symbol")
		cmd.Flags().BoolVar(&useTokens, "tokens", false, "Split input into Go tokens")
	}
	tableCmd.Flags().BoolVar(&htmlOutput, "html", false, "Output HTML")
}
