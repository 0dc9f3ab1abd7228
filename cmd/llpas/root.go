package main

import (
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	traceLevel  string
	lenient     bool
	traceTokens bool
)

var rootCmd = &cobra.Command{
	Use:   "llpas",
	Short: "LL(1) grammar tables and a toy-Pascal front-end",
	Long: `llpas analyzes LL(1) grammars, builds their transition tables and
recognizes input with a table-driven recognizer. It also lexes, parses,
translates and runs programs in a toy Pascal dialect.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupConfig(cmd.Flags())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "Error", "Trace level [Debug|Info|Error]")
	rootCmd.PersistentFlags().BoolVar(&lenient, "lenient", false, "Accept input as soon as it is consumed")
	rootCmd.PersistentFlags().BoolVar(&traceTokens, "trace-tokens", false, "Trace Pascal tokens (needs --trace=Debug)")
}

// setupConfig installs a Go logger for all tracers and makes the command line
// flags available as global configuration.
func setupConfig(flags *pflag.FlagSet) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	gconf.Initialize(&flagConf{flags: flags})
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracer().SetTraceLevel(tracing.TraceLevelFromString(traceLevel))
	tracer().Infof("trace level is %s", tracer().GetTraceLevel())
}

// flagConf is a configuration backed by command line flags. Configuration keys
// are mapped to flag names.
type flagConf struct {
	flags *pflag.FlagSet
}

var configFlags = map[string]string{
	"ll.lenient-accept":   "lenient",
	"pascal.trace-tokens": "trace-tokens",
}

func (c *flagConf) InitDefaults() {}

func (c *flagConf) IsSet(key string) bool {
	if name, ok := configFlags[key]; ok {
		return c.flags.Changed(name)
	}
	return key == "tracing"
}

func (c *flagConf) GetString(key string) string {
	if key == "tracing" {
		return "go"
	}
	if strings.HasPrefix(key, "tracing") {
		return "Error"
	}
	if name, ok := configFlags[key]; ok {
		if f := c.flags.Lookup(name); f != nil {
			return f.Value.String()
		}
	}
	return ""
}

func (c *flagConf) GetInt(key string) int {
	n, _ := strconv.Atoi(c.GetString(key))
	return n
}

func (c *flagConf) GetBool(key string) bool {
	b, _ := strconv.ParseBool(c.GetString(key))
	return b
}

func (c *flagConf) IsInteractive() bool {
	return false
}
