package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/riceboard/export"
	"github.com/arthur-debert/riceboard/imports"
	"github.com/arthur-debert/riceboard/store"
	"github.com/arthur-debert/riceboard/types"
)

func (cli *CLI) newImportCommand() *cobra.Command {
	var (
		format  string
		replace bool
	)

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import features from a CSV, JSON or YAML file",
		Long: `Import features from a file ("-" reads stdin). Rows with problems are
reported individually; a bad row never blocks the rest. By default
imported features are merged into the existing board; --replace
discards the board first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args[0])
			if err != nil {
				return err
			}
			if format == "" {
				format = formatFromExtension(args[0])
			}

			var result imports.Result
			switch format {
			case "csv":
				result = imports.FromDelimited(string(data), imports.Options{})
			case "json":
				result = imports.FromJSON(data, imports.Options{})
			case "yaml":
				result = imports.FromYAML(data, imports.Options{})
			default:
				return fmt.Errorf("unknown import format %q (expected csv, json or yaml)", format)
			}

			for _, rowErr := range result.Errors {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", rowErr.Error())
			}

			s, err := cli.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			mode := store.Merge
			if replace {
				mode = store.Replace
			}
			if err := s.Apply(result.Features, mode); err != nil {
				return err
			}

			slog.Info("import finished",
				"features", len(result.Features), "errors", len(result.Errors), "replace", replace)
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d feature(s), %d problem(s)\n",
				len(result.Features), len(result.Errors))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Input format: csv|json|yaml (default: by file extension)")
	cmd.Flags().BoolVar(&replace, "replace", false, "Discard the existing board before importing")
	return cmd
}

func (cli *CLI) newExportCommand() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the board in priority order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := cli.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			out := cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer func() { _ = f.Close() }()
				out = f
			}
			return writeInterchange(out, s.List(), format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "csv", "Output format: csv|json|yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	return cmd
}

func (cli *CLI) newResetCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard all features and start a fresh board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("reset discards every feature; re-run with --force to confirm")
			}

			// Opens directly so a version-mismatched file can still be reset
			path := cli.viperInst.GetString("store")
			s, err := store.Open(path)
			if err != nil && s == nil {
				return err
			}
			defer func() { _ = s.Close() }()

			if err := s.Reset(); err != nil {
				return err
			}
			slog.Info("board reset", "store", path)
			fmt.Fprintln(cmd.OutOrStdout(), "Board reset")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Actually perform the reset")
	return cmd
}

// writeInterchange serializes features to w in the named format
func writeInterchange(w io.Writer, features []types.Feature, format string) error {
	switch format {
	case "csv":
		_, err := io.WriteString(w, export.ToDelimited(features))
		return err
	case "json":
		data, err := export.ToJSON(features)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "yaml":
		data, err := export.ToYAML(features)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unknown format %q (expected csv, json or yaml)", format)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}

func formatFromExtension(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "csv"
	}
}
