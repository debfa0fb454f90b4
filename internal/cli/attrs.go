package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/arthur-debert/tinct/pkg/markup"
	"github.com/arthur-debert/tinct/pkg/render"
	"github.com/arthur-debert/tinct/pkg/style"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newAttrsCmd(a *app) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "attrs",
		Short: "List the built-in style attributes",
		Long: `List every attribute name usable in a style list with its kind, SGR code
and a sample.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			rd := a.renderer(out)

			data := pterm.TableData{{"Name", "Kind", "Code", "Sample"}}
			for _, attr := range style.All() {
				if kind != "" && attr.Kind().String() != kind {
					continue
				}
				sample, err := rd.String([]markup.Segment{markup.Lit(sampleMarkup(attr))})
				if err != nil {
					return err
				}
				data = append(data, []string{attr.String(), attr.Kind().String(), strconv.Itoa(attr.Code()), sample})
			}
			return writeTable(out, data, rd)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Only list one kind: foreground, background or decoration")
	return cmd
}

// sampleMarkup pairs backgrounds with a readable foreground.
func sampleMarkup(attr style.Attribute) string {
	if attr.Kind() == style.KindBackground {
		return "{" + attr.String() + ".white sample}"
	}
	return "{" + attr.String() + " sample}"
}

// writeTable renders data as a pterm table with a header row. pterm's own
// styling follows the renderer's color setting.
func writeTable(w io.Writer, data pterm.TableData, rd *render.Renderer) error {
	if !rd.Color() {
		pterm.DisableStyling()
		defer pterm.EnableStyling()
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, table)
	return err
}
