// Package config loads the .jsgen.toml file that supplies defaults
// (pretty/compact mode, output path) for the jsgen CLI; the indentation
// width and source list it also parses are not read by the CLI. It works the
// way internal/parser/toml/parser.go loads a schema definition: a small
// struct decoded straight off a toml.Decoder, then validated/defaulted by a
// converter step.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"jsgen/internal/codegen"
)

// file is the on-disk shape of .jsgen.toml.
type file struct {
	Indent  int    `toml:"indent"`
	Mode    string `toml:"mode"`
	Out     string `toml:"out"`
	Sources []string `toml:"sources"`
}

// Config is the validated, defaulted configuration jsgen's CLI consumes.
type Config struct {
	// IndentWidth is the indent width read from the file (default 2). The
	// generator always indents two spaces per level (spec §6), and the CLI
	// does not read IndentWidth.
	IndentWidth int
	Mode        codegen.Mode
	Out         string
	Sources     []string
}

// Default is the configuration used when no .jsgen.toml is present.
func Default() *Config {
	return &Config{IndentWidth: 2, Mode: codegen.Pretty, Out: "-"}
}

// Load reads and validates a .jsgen.toml file at path. A missing file is not
// an error: Load returns Default() instead, mirroring the teacher's
// tolerant-by-default CLI config loading.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes TOML content from r into a validated Config.
func Parse(r io.Reader) (*Config, error) {
	var tf file
	if _, err := toml.NewDecoder(r).Decode(&tf); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	return newConverter(&tf).convert()
}

type converter struct {
	tf *file
}

func newConverter(tf *file) *converter {
	return &converter{tf: tf}
}

func (c *converter) convert() (*Config, error) {
	cfg := Default()

	if c.tf.Indent != 0 {
		if c.tf.Indent < 0 {
			return nil, fmt.Errorf("config: indent must be non-negative, got %d", c.tf.Indent)
		}
		cfg.IndentWidth = c.tf.Indent
	}

	if c.tf.Mode != "" {
		mode, err := parseMode(c.tf.Mode)
		if err != nil {
			return nil, err
		}
		cfg.Mode = mode
	}

	if c.tf.Out != "" {
		cfg.Out = c.tf.Out
	}

	cfg.Sources = c.tf.Sources

	return cfg, nil
}

func parseMode(s string) (codegen.Mode, error) {
	switch s {
	case "pretty":
		return codegen.Pretty, nil
	case "compact":
		return codegen.Compact, nil
	default:
		return 0, fmt.Errorf("config: mode must be \"pretty\" or \"compact\", got %q", s)
	}
}
