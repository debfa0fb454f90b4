package cli

import (
	"fmt"

	"github.com/arthur-debert/tinct/pkg/markup"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newThemesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the aliases of the active theme",
		Long: `List every alias of the active theme with the attributes it stands for.
The active theme is the built-in one, overlaid with --theme and the
[theme.aliases] table of the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			rd := a.renderer(out)

			if name := a.theme.Name(); name != "" {
				if _, err := fmt.Fprintf(out, "Theme: %s\n", name); err != nil {
					return err
				}
			}

			data := pterm.TableData{{"Alias", "Style", "Sample"}}
			for _, alias := range a.theme.Aliases() {
				set, _ := a.theme.Style(alias)
				sample, err := rd.String([]markup.Segment{markup.Lit("{" + alias + " sample}")})
				if err != nil {
					return err
				}
				data = append(data, []string{alias, set.String(), sample})
			}
			return writeTable(out, data, rd)
		},
	}
}
