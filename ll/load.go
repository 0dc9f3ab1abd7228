package ll

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// GrammarDef is the file format of a grammar definition.
// Rules are used in order of definition.
type GrammarDef struct {
	Name  string    `toml:"name" yaml:"name"`
	Start string    `toml:"start" yaml:"start"`
	Terms []string  `toml:"terms" yaml:"terms"`
	Rules []RuleDef `toml:"rules" yaml:"rules"`
}

// DecodeTOML reads a grammar definition in TOML format.
func DecodeTOML(r io.Reader) (*GrammarDef, error) {
	def := &GrammarDef{}
	if _, err := toml.NewDecoder(r).Decode(def); err != nil {
		return nil, fmt.Errorf("cannot decode grammar definition: %w", err)
	}
	return def, nil
}

// DecodeYAML reads a grammar definition in YAML format.
func DecodeYAML(r io.Reader) (*GrammarDef, error) {
	def := &GrammarDef{}
	if err := yaml.NewDecoder(r).Decode(def); err != nil {
		return nil, fmt.Errorf("cannot decode grammar definition: %w", err)
	}
	return def, nil
}

// LoadGrammarDef reads a grammar definition from a file. The format is
// selected by file extension: ".toml", or ".yaml"/".yml".
func LoadGrammarDef(path string) (*GrammarDef, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return DecodeTOML(f)
	case ".yaml", ".yml":
		return DecodeYAML(f)
	default:
		return nil, fmt.Errorf("unknown grammar file format %q", ext)
	}
}

// StartSymbol returns the start symbol of the definition. If none is set, the
// left hand side of the first rule is used.
func (def *GrammarDef) StartSymbol() string {
	if def.Start != "" || len(def.Rules) == 0 {
		return def.Start
	}
	return def.Rules[0].LHS
}

// Grammar creates the grammar for a definition. If a start symbol is
// given, it must be defined by one of the rules.
func (def *GrammarDef) Grammar() (*Grammar, error) {
	name := def.Name
	if name == "" {
		name = "G"
	}
	g, err := NewGrammar(name, def.Rules, def.Terms)
	if err != nil {
		return nil, err
	}
	if S := N(def.StartSymbol()); !g.IsDefined(S) {
		return nil, &UndefinedNonTerminalError{Symbol: S}
	}
	return g, nil
}
