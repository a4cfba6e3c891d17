// Package rulefile loads custom inflection rules from YAML files and
// applies them to an engine. A rule file is the configuration-level
// counterpart of the engine's Add* operations: entries register in
// document order, so everything in the file outranks the built-in rules.
package rulefile

import (
	"errors"
	"fmt"
	"os"

	"github.com/situ2001/oh-pluralize/pluralize"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// File is a parsed custom-rule document.
type File struct {
	Rules Rules `yaml:"rules" mapstructure:"rules"`
}

// Rules mirrors the engine's four registration operations.
type Rules struct {
	Plural      []Rule        `yaml:"plural" mapstructure:"plural"`
	Singular    []Rule        `yaml:"singular" mapstructure:"singular"`
	Irregular   []Irregular   `yaml:"irregular" mapstructure:"irregular"`
	Uncountable []Uncountable `yaml:"uncountable" mapstructure:"uncountable"`
}

// Rule is a pattern/template pair. The pattern is a regular expression
// compiled case-insensitively when the file is applied; templates may use
// $N capture references.
type Rule struct {
	Pattern  string `yaml:"pattern" mapstructure:"pattern"`
	Template string `yaml:"template" mapstructure:"template"`
}

// Irregular registers an exact singular/plural override.
type Irregular struct {
	Singular string `yaml:"singular" mapstructure:"singular"`
	Plural   string `yaml:"plural" mapstructure:"plural"`
}

// Uncountable marks a literal word or a pattern family as uncountable.
// Exactly one of Word and Pattern should be set.
type Uncountable struct {
	Word    string `yaml:"word" mapstructure:"word"`
	Pattern string `yaml:"pattern" mapstructure:"pattern"`
}

// Load parses a rule file at an explicit path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse rule file: %w", err)
	}
	return &file, nil
}

// Discover looks for a pluralize.yml in the working directory or the
// user's home directory, with PLURALIZE_* environment overrides. It
// returns a nil file without error when no config exists.
func Discover() (*File, string, error) {
	v := viper.New()
	v.SetConfigName("pluralize")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}

	v.SetEnvPrefix("PLURALIZE")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("failed to read rule config: %w", err)
	}

	var file File
	if err := v.Unmarshal(&file); err != nil {
		return nil, "", fmt.Errorf("failed to parse rule config: %w", err)
	}
	return &file, v.ConfigFileUsed(), nil
}

// Apply registers every entry in the file on the engine. All patterns are
// validated up front: an invalid entry rejects the whole file and leaves
// the engine untouched.
func Apply(engine *pluralize.Engine, file *File) error {
	if err := Validate(file); err != nil {
		return err
	}

	for _, r := range file.Rules.Plural {
		if err := engine.AddPluralRule(pluralize.Expr(r.Pattern), r.Template); err != nil {
			return err
		}
	}
	for _, r := range file.Rules.Singular {
		if err := engine.AddSingularRule(pluralize.Expr(r.Pattern), r.Template); err != nil {
			return err
		}
	}
	for _, p := range file.Rules.Irregular {
		engine.AddIrregularRule(p.Singular, p.Plural)
	}
	for _, u := range file.Rules.Uncountable {
		if err := engine.AddUncountableRule(u.pattern()); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks every entry in the file without mutating anything.
func Validate(file *File) error {
	for i, r := range file.Rules.Plural {
		if err := checkRule(r); err != nil {
			return fmt.Errorf("plural rule %d: %w", i+1, err)
		}
	}
	for i, r := range file.Rules.Singular {
		if err := checkRule(r); err != nil {
			return fmt.Errorf("singular rule %d: %w", i+1, err)
		}
	}
	for i, p := range file.Rules.Irregular {
		if p.Singular == "" || p.Plural == "" {
			return fmt.Errorf("irregular rule %d: both singular and plural are required", i+1)
		}
	}
	for i, u := range file.Rules.Uncountable {
		if (u.Word == "") == (u.Pattern == "") {
			return fmt.Errorf("uncountable rule %d: exactly one of word or pattern is required", i+1)
		}
		if err := u.pattern().Validate(); err != nil {
			return fmt.Errorf("uncountable rule %d: %w", i+1, err)
		}
	}
	return nil
}

func checkRule(r Rule) error {
	if r.Pattern == "" {
		return fmt.Errorf("pattern is required")
	}
	return pluralize.Expr(r.Pattern).Validate()
}

func (u Uncountable) pattern() pluralize.Pattern {
	if u.Pattern != "" {
		return pluralize.Expr(u.Pattern)
	}
	return pluralize.Word(u.Word)
}
