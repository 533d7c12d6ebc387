package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/apisig/sig"
	"github.com/dhamidi/apisig/sig/parser"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <baseline> <current>...",
		Short: "Compare signature files against a baseline for removed API",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			opts := parserOptions(cfg)

			baseline, err := parser.ParseFile(args[0], opts...)
			if err != nil {
				return fmt.Errorf("parse baseline: %w", err)
			}
			current, err := parser.ParsePaths(args[1:], opts...)
			if err != nil {
				return fmt.Errorf("parse current: %w", err)
			}

			problems := sig.Diff(baseline, current)
			for _, p := range problems {
				fmt.Println(p)
			}
			if len(problems) > 0 {
				return fmt.Errorf("%d incompatible API change(s)", len(problems))
			}
			fmt.Println("no incompatible API changes")
			return nil
		},
	}
}
