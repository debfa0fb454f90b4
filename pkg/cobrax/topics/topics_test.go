package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"markup.md":         {Data: []byte("# Markup\n\nBlocks look like `{red x}`.\n")},
		"themes.txt":        {Data: []byte("Themes map aliases to styles")},
		"nested/colors.txt": {Data: []byte("Colors")},
		"notes.json":        {Data: []byte("{}")},
	}
}

func TestScan(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(testFS(), Options{})
		require.NoError(t, tm.Scan())
		assert.Equal(t, []string{"colors", "markup", "themes"}, tm.ListTopics())

		topic, ok := tm.GetTopic("themes")
		require.True(t, ok)
		assert.Equal(t, "Themes map aliases to styles", topic.Content)
		assert.Equal(t, ".txt", topic.Format())
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := New(testFS(), Options{Extensions: []string{".json"}})
		require.NoError(t, tm.Scan())
		assert.Equal(t, []string{"notes"}, tm.ListTopics())
	})

	t.Run("flag-style names", func(t *testing.T) {
		tm := New(testFS(), Options{})
		require.NoError(t, tm.Scan())
		_, ok := tm.GetTopic("--colors")
		assert.True(t, ok)
		_, ok = tm.GetTopic("missing")
		assert.False(t, ok)
	})
}

type upper struct{}

func (upper) Render(content, format string) string { return strings.ToUpper(content) }

func TestByFormat(t *testing.T) {
	r := &ByFormat{Renderers: map[string]Renderer{".txt": upper{}}}
	assert.Equal(t, "ABC", r.Render("abc", ".txt"))
	assert.Equal(t, "abc", r.Render("abc", ".md"))

	r.Default = upper{}
	assert.Equal(t, "ABC", r.Render("abc", ".md"))
}

func TestGlamourRendererSkipsNonMarkdown(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain", r.Render("plain", ".txt"))
}

func TestGlamourRendererMarkdown(t *testing.T) {
	r := &GlamourRenderer{Style: "notty", Width: 40}
	out := r.Render("# Title\n\nSome *text*.", ".md")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "text")
}

func newRoot() *cobra.Command {
	root := &cobra.Command{Use: "app", Short: "test app", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(&cobra.Command{Use: "sub", Short: "a subcommand", Run: func(*cobra.Command, []string) {}})
	return root
}

func runHelp(t *testing.T, root *cobra.Command, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(append([]string{"help"}, args...))
	require.NoError(t, root.Execute())
	return buf.String()
}

func TestInitialize(t *testing.T) {
	root := newRoot()
	tm, err := Initialize(root, testFS(), Options{})
	require.NoError(t, err)
	require.NotNil(t, tm)

	t.Run("lists topics", func(t *testing.T) {
		out := runHelp(t, root, "topics")
		assert.Contains(t, out, "Available help topics:")
		assert.Contains(t, out, "  markup")
		assert.Contains(t, out, "'app help <topic>'")
	})

	t.Run("shows topic", func(t *testing.T) {
		out := runHelp(t, root, "themes")
		assert.Equal(t, "Themes map aliases to styles", out)
	})

	t.Run("falls back to command help", func(t *testing.T) {
		out := runHelp(t, root, "sub")
		assert.Contains(t, out, "a subcommand")
	})
}
