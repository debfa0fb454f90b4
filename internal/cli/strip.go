package cli

import (
	"fmt"

	"github.com/arthur-debert/tinct/pkg/ansi"
	"github.com/spf13/cobra"
)

func newStripCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strip [FILE]",
		Short: "Remove escape sequences from text",
		Long: `Copy FILE, or standard input, to standard output with every CSI and OSC
escape sequence removed. Malformed sequences are kept.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			in, err := openInput(cmd, name)
			if err != nil {
				return err
			}
			defer func() { _ = in.Close() }()

			out := cmd.OutOrStdout()
			return eachLine(in, func(line string) error {
				_, err := fmt.Fprintln(out, ansi.Strip(line))
				return err
			})
		},
	}
}
