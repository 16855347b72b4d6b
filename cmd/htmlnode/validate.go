package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlnode/pkg/node"
)

func validateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate file.json...",
		Short: "Check tree documents without rendering them",
		Long: `Decode each tree document and check that it renders: every leaf
has a value and every parent has a tag and a children list.

Examples:
  htmlnode validate pages/*.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, input := range args {
				tree, err := readTree(cmd.InOrStdin(), input)
				if err == nil {
					err = node.Validate(tree)
				}
				if err != nil {
					failed++
					errorMsg(cmd.OutOrStdout(), "%s: %v", input, err)
					continue
				}
				success(cmd.OutOrStdout(), "%s", input)
			}
			a.logger.Debug("validated", "documents", len(args), "failed", failed)
			if failed > 0 {
				return fmt.Errorf("%d of %d documents invalid", failed, len(args))
			}
			return nil
		},
	}
	return cmd
}
