package cli

import (
	"fmt"
	"io"

	"github.com/arthur-debert/tinct/pkg/errors"
	"github.com/arthur-debert/tinct/pkg/markup"
	"github.com/arthur-debert/tinct/pkg/tags"
	"github.com/spf13/cobra"
)

func newConvertCmd(a *app) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "convert [FILE]",
		Short: "Convert tag markup to brace markup",
		Long: `Convert XML-style tag markup such as "<bold.red>x</bold.red>" read from
FILE, or standard input, into brace markup ("{bold.red x}").

With --check the result is also parsed against the active theme, so unknown
style names are reported.`,
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

			data, err := io.ReadAll(in)
			if err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, "failed to read input")
			}

			converted, err := tags.Convert(string(data))
			if err != nil {
				return err
			}

			if check {
				segments := []markup.Segment{markup.Lit(converted)}
				parser := markup.NewParser(markup.WithResolver(a.theme))
				if _, err := parser.Collect(segments); err != nil {
					return &diagnosticError{err: err, segments: segments}
				}
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), converted)
			return err
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Validate style names in the result")
	return cmd
}
