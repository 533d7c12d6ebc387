package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/apisig/format"
	"github.com/dhamidi/apisig/sig"
	"github.com/dhamidi/apisig/sig/parser"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <file>...",
		Short: "Parse signature files, merge them and dump the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if outputFormat == "" {
				outputFormat = cfg.Output
			}

			api, err := parser.ParsePaths(args, parserOptions(cfg)...)
			if err != nil {
				return fmt.Errorf("parse signature files: %w", err)
			}

			var encoder format.Encoder
			switch outputFormat {
			case "sig":
				encoder = format.NewSignatureEncoder(os.Stdout)
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "summary":
				printSummary(api)
				return nil
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(api); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (sig, json, summary)")

	return cmd
}

func printSummary(api *sig.Codebase) {
	classes := 0
	stubs := 0
	methods := 0
	fields := 0
	for _, c := range api.Classes() {
		if c.IsStub {
			stubs++
			continue
		}
		classes++
		methods += len(c.Constructors()) + len(c.Methods())
		fields += len(c.Fields())
	}
	fmt.Printf("format:   %s\n", api.Format())
	fmt.Printf("packages: %d\n", len(api.Packages()))
	fmt.Printf("classes:  %d (+%d referenced)\n", classes, stubs)
	fmt.Printf("methods:  %d\n", methods)
	fmt.Printf("fields:   %d\n", fields)
}
