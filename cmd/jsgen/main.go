// Command jsgen drives internal/wireast and internal/codegen from the
// command line: it decodes a wire-format AST, validates it, generates JS
// (with Flow and JSX) source plus a source map, and can print the wire
// format's own JSON Schema or dump an atom table for debugging.
//
// Modeled on cmd/smf/main.go's cobra root + per-subcommand RunE structure.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"jsgen/internal/ast"
	"jsgen/internal/atom"
	"jsgen/internal/codegen"
	"jsgen/internal/config"
	"jsgen/internal/sourcemap"
	"jsgen/internal/wireast"
	"jsgen/internal/wireschema"
)

type generateFlags struct {
	configPath string
	out        string
	mapOut     string
	mode       string
	sourceName string
}

type atomsFlags struct {
	format string
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "jsgen",
		Short: "JavaScript/Flow/JSX source generator",
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(schemaCmd())
	rootCmd.AddCommand(atomsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	flags := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate <wire-ast.json>",
		Short: "Decode a wire-format AST and emit JS source plus a source map",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runGenerate(args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", ".jsgen.toml", "Path to the jsgen config file")
	cmd.Flags().StringVarP(&flags.out, "output", "o", "", "Output file for generated source, - for stdout (default: from config, else stdout)")
	cmd.Flags().StringVar(&flags.mapOut, "map-output", "", "Output file for the source map, - for stdout (default: <output>.map; no map is written when output is stdout)")
	cmd.Flags().StringVar(&flags.mode, "mode", "", "Output mode: pretty or compact (default: pretty when writing to a terminal, else from config)")
	cmd.Flags().StringVar(&flags.sourceName, "source-name", "input.js", "Name recorded as the source map's \"sources\" entry")

	return cmd
}

func runGenerate(inputPath string, flags *generateFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	if flags.out == "" {
		flags.out = cfg.Out
	}

	mode := cfg.Mode
	switch flags.mode {
	case "pretty":
		mode = codegen.Pretty
	case "compact":
		mode = codegen.Compact
	case "":
		if flags.out == "" || flags.out == "-" {
			if term.IsTerminal(int(os.Stdout.Fd())) {
				mode = codegen.Pretty
			}
		}
	default:
		return fmt.Errorf("jsgen: --mode must be \"pretty\" or \"compact\", got %q", flags.mode)
	}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("jsgen: read %q: %w", inputPath, err)
	}

	atoms := atom.New()
	arena, root, err := wireast.Decode(raw, atoms)
	if err != nil {
		return err
	}
	if err := ast.Validate(arena, atoms); err != nil {
		slog.Error("malformed AST", "input", inputPath, "error", err)
		return err
	}

	out := os.Stdout
	if flags.out != "" && flags.out != "-" {
		f, err := os.Create(flags.out)
		if err != nil {
			return fmt.Errorf("jsgen: create %q: %w", flags.out, err)
		}
		defer f.Close()
		out = f
	}

	sm, err := codegen.Generate(arena, atoms, out, root, mode, flags.sourceName)
	if err != nil {
		slog.Error("generation failed", "input", inputPath, "error", err)
		return err
	}

	return writeSourceMap(sm, flags)
}

func writeSourceMap(sm *sourcemap.Map, flags *generateFlags) error {
	b, err := json.Marshal(sm)
	if err != nil {
		return fmt.Errorf("jsgen: encode source map: %w", err)
	}

	mapPath := flags.mapOut
	if mapPath == "" {
		if flags.out == "" || flags.out == "-" {
			return nil // stdout already carries the source; skip the map unless asked for one explicitly.
		}
		mapPath = flags.out + ".map"
	}

	var w io.Writer
	if mapPath == "-" {
		w = os.Stdout
	} else {
		f, err := os.Create(mapPath)
		if err != nil {
			return fmt.Errorf("jsgen: create %q: %w", mapPath, err)
		}
		defer f.Close()
		w = f
	}

	_, err = w.Write(append(b, '\n'))
	return err
}

func schemaCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for the wire AST input format",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runSchema(format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json or yaml")
	return cmd
}

func runSchema(format string) error {
	s := wireschema.Build()
	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case "yaml":
		b, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("jsgen: marshal schema: %w", err)
		}
		var generic any
		if err := json.Unmarshal(b, &generic); err != nil {
			return fmt.Errorf("jsgen: re-decode schema: %w", err)
		}
		y, err := yaml.Marshal(generic)
		if err != nil {
			return fmt.Errorf("jsgen: marshal yaml: %w", err)
		}
		_, err = os.Stdout.Write(y)
		return err
	default:
		return fmt.Errorf("jsgen: --format must be \"json\" or \"yaml\", got %q", format)
	}
}

func atomsCmd() *cobra.Command {
	flags := &atomsFlags{}
	cmd := &cobra.Command{
		Use:   "atoms <wire-ast.json>",
		Short: "Decode a wire-format AST and dump its interned atom table",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runAtoms(args[0], flags)
		},
	}
	cmd.Flags().StringVarP(&flags.format, "format", "f", "json", "Output format: json or yaml")
	return cmd
}

func runAtoms(inputPath string, flags *atomsFlags) error {
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("jsgen: read %q: %w", inputPath, err)
	}

	atoms := atom.New()
	_, _, err = wireast.Decode(raw, atoms)
	if err != nil {
		return err
	}

	// Render every interned atom as "N(text)" the same way a generator
	// crash dump would: by installing this table as the active debug
	// context for the duration of the render.
	var entries []string
	atom.WithDebugContext(atoms, func() {
		for i, text := range atoms.All() {
			entries = append(entries, atom.DebugString(atom.ID(i))+": "+text)
		}
	})

	switch flags.format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "yaml":
		y, err := yaml.Marshal(entries)
		if err != nil {
			return fmt.Errorf("jsgen: marshal yaml: %w", err)
		}
		_, err = os.Stdout.Write(y)
		return err
	default:
		return fmt.Errorf("jsgen: --format must be \"json\" or \"yaml\", got %q", flags.format)
	}
}
