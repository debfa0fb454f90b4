package cli

import (
	"fmt"

	"github.com/arthur-debert/tinct/pkg/width"
	"github.com/spf13/cobra"
)

func newWidthCmd() *cobra.Command {
	var cells bool

	cmd := &cobra.Command{
		Use:   "width [TEXT...]",
		Short: "Print the visible width of styled text",
		Long: `Print the visible width of each argument, or of each line of standard
input when no arguments are given. Escape sequences do not count.

By default the width is the number of codepoints. With --cells the terminal
cell width is printed next to it, counting wide characters as two cells.`,
		Example: `  tinct render -n "{red hi}" | tinct width
  tinct width --cells "日本語"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			emit := func(line string) error {
				if cells {
					_, err := fmt.Fprintf(out, "%d\t%d\n", width.Visible(line), width.Cells(line))
					return err
				}
				_, err := fmt.Fprintln(out, width.Visible(line))
				return err
			}

			if len(args) > 0 {
				for _, arg := range args {
					if err := emit(arg); err != nil {
						return err
					}
				}
				return nil
			}
			return eachLine(cmd.InOrStdin(), emit)
		},
	}

	cmd.Flags().BoolVar(&cells, "cells", false, "Also print the terminal cell width")
	return cmd
}
