package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/tinct/pkg/errors"
	"github.com/arthur-debert/tinct/pkg/markup"
	"github.com/arthur-debert/tinct/pkg/render"
	"github.com/spf13/cobra"
)

func newRenderCmd(a *app) *cobra.Command {
	var noNewline bool

	cmd := &cobra.Command{
		Use:   "render TEMPLATE [VALUE...]",
		Short: "Render a markup template",
		Long: `Render a markup template to the terminal.

Each printf verb in TEMPLATE (%s, %d, %v, ...) takes the next VALUE. Values
are printed verbatim and never interpreted as markup. Use "-" as TEMPLATE
to read the template from standard input.`,
		Example: `  tinct render "{bold.red Error:} %s" "disk full"
  tinct render "{error failed} in {path %s}" ./config.toml
  echo "{green ok}" | tinct render -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			template, err := templateArg(cmd, args[0])
			if err != nil {
				return err
			}

			values := make([]interface{}, len(args)-1)
			for i, v := range args[1:] {
				values[i] = v
			}
			segments := markup.Format(template, values...)

			out := cmd.OutOrStdout()
			if err := renderTo(a.renderer(out), segments, out, !noNewline); err != nil {
				if errors.IsMarkupError(err) {
					return &diagnosticError{err: err, segments: segments, printf: true}
				}
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&noNewline, "no-newline", "n", false, "Do not print the trailing newline")
	return cmd
}

// templateArg returns arg, or standard input without its final newline
// when arg is "-".
func templateArg(cmd *cobra.Command, arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, "failed to read template from stdin")
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

func renderTo(rd *render.Renderer, segments []markup.Segment, w io.Writer, newline bool) error {
	if err := rd.Render(segments, w); err != nil {
		return err
	}
	if newline {
		if _, err := fmt.Fprintln(w); err != nil {
			return errors.Wrap(err, errors.ErrWrite, "failed to write output")
		}
	}
	return nil
}
