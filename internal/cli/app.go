package cli

import (
	"io"

	"github.com/arthur-debert/tinct/pkg/config"
	"github.com/arthur-debert/tinct/pkg/logging"
	"github.com/arthur-debert/tinct/pkg/paths"
	"github.com/arthur-debert/tinct/pkg/render"
	"github.com/arthur-debert/tinct/pkg/theme"
	"github.com/arthur-debert/tinct/pkg/ui"
)

// app holds what commands need once configuration has been loaded.
type app struct {
	cfg   *config.Config
	theme *theme.Theme
	color ui.ColorMode
}

func (a *app) init(cfg *config.Config) error {
	mode, err := ui.ParseColorMode(cfg.Render.Color)
	if err != nil {
		return err
	}
	th, err := loadTheme(cfg)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.theme = th
	a.color = mode
	return nil
}

// loadTheme layers the configured theme file and inline aliases over the
// built-in theme.
func loadTheme(cfg *config.Config) (*theme.Theme, error) {
	th := theme.Default()

	if cfg.Theme.File != "" {
		fromFile, err := theme.Load(paths.ThemePath(cfg.Theme.File))
		if err != nil {
			return nil, err
		}
		th = th.Merge(fromFile)
	}

	if len(cfg.Theme.Aliases) > 0 {
		inline, err := cfg.InlineTheme()
		if err != nil {
			return nil, err
		}
		th = th.Merge(inline)
	}
	return th, nil
}

// renderer builds a renderer for output going to w.
func (a *app) renderer(w io.Writer) *render.Renderer {
	return render.New(
		render.WithResolver(a.theme),
		render.WithColor(a.color.Enabled(w)),
		render.WithStreaming(a.cfg.Render.Streaming),
		render.WithLogger(logging.GetLogger("render")),
	)
}
