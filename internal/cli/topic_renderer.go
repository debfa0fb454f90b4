package cli

import (
	"os"

	"github.com/arthur-debert/tinct/pkg/cobrax/topics"
	"github.com/arthur-debert/tinct/pkg/markup"
	"github.com/arthur-debert/tinct/pkg/render"
	"github.com/arthur-debert/tinct/pkg/theme"
	"github.com/arthur-debert/tinct/pkg/ui"
)

// topicExt marks help topics written in tinct markup.
const topicExt = ".tinct"

// markupTopicRenderer renders help topics written in tinct markup with the
// user's theme and color settings.
type markupTopicRenderer struct {
	app *app
}

// Render implements topics.Renderer. Content that fails to parse is shown
// as written.
func (r *markupTopicRenderer) Render(content string, format string) string {
	out, err := r.renderer().String([]markup.Segment{markup.Lit(content)})
	if err != nil {
		return content
	}
	return out
}

// renderer is built per call since configuration is only loaded once a
// command runs. "tinct --help" skips that step and gets the defaults.
func (r *markupTopicRenderer) renderer() *render.Renderer {
	if r.app == nil || r.app.cfg == nil {
		return render.New(
			render.WithResolver(theme.Default()),
			render.WithColor(ui.DetectColor(os.Stdout)),
		)
	}
	return r.app.renderer(os.Stdout)
}

func newTopicRenderer(a *app) topics.Renderer {
	return &topics.ByFormat{
		Renderers: map[string]topics.Renderer{
			".md":    topics.NewGlamourRenderer(),
			topicExt: &markupTopicRenderer{app: a},
		},
		Default: &topics.PlainRenderer{},
	}
}
