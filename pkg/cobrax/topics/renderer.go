package topics

// Renderer defines the interface for rendering topic content
type Renderer interface {
	// Render takes raw content and returns formatted content for terminal display
	Render(content string, format string) string
}

// PlainRenderer is the default renderer that returns content as-is
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// ByFormat dispatches on the topic file extension, falling back to
// Default (or the content unchanged) for unknown formats.
type ByFormat struct {
	Renderers map[string]Renderer
	Default   Renderer
}

// Render implements Renderer.
func (r *ByFormat) Render(content string, format string) string {
	if rd, ok := r.Renderers[format]; ok {
		return rd.Render(content, format)
	}
	if r.Default != nil {
		return r.Default.Render(content, format)
	}
	return content
}
