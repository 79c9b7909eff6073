package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"structmapper/internal/mapping"
)

func newCheckCmd(root *rootOptions) *cobra.Command {
	var mappingsPath string

	cmd := &cobra.Command{
		Use:   "check -m <file> <packages...>",
		Short: "Validate a mapping file against packages",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mf, err := mapping.LoadFile(mappingsPath)
			if err != nil {
				return err
			}

			s, err := root.load(args)
			if err != nil {
				return err
			}

			diags := mapping.Validate(mf, s.resolver, s.oracle)

			out := cmd.OutOrStdout()
			for _, d := range diags.All() {
				fmt.Fprintf(out, "%s: %s\n", d.Severity(), d)
			}

			if diags.HasErrors() {
				return fmt.Errorf("%s: %w", mappingsPath, diags.Err())
			}

			fmt.Fprintf(out, "%s: %d mapping(s) ok\n", mappingsPath, len(mf.TypeMappings))

			return nil
		},
	}

	cmd.Flags().StringVarP(&mappingsPath, "mappings", "m", "", "YAML file with declared class maps")
	_ = cmd.MarkFlagRequired("mappings")

	return cmd
}
