package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fieldView struct {
	Name, Label, Value string
	Required           bool
	Options            []struct {
		Value    string
		Selected bool
	}
	Errors []string
}

type greetingView struct {
	Page
	Action string
	Fields []fieldView
	Name   string
	Known  bool
}

func TestNew_ParsesEveryPage(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	for _, name := range []string{"greeting.html", "enrollment.html", "404.html", "500.html"} {
		assert.Contains(t, r.pages, name)
	}
	assert.NotContains(t, r.pages, "layout.html")
}

func TestRender_EscapesAndWrapsLayout(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, "greeting.html", greetingView{
		Page:   Page{Title: "Visitor book", Flashes: []string{"hi there"}},
		Action: "/",
		Fields: []fieldView{{Name: "name", Label: "What is your name?", Value: "<b>x</b>", Required: true, Errors: []string{"bad"}}},
		Name:   "<script>",
		Known:  true,
	}, nil)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "<title>Visitor book</title>")
	assert.Contains(t, html, `<div class="alert" role="alert">hi there</div>`)
	assert.Contains(t, html, "Hello, &lt;script&gt;!")
	assert.Contains(t, html, "Happy to see you again!")
	assert.Contains(t, html, `value="&lt;b&gt;x&lt;/b&gt;"`)
	assert.Contains(t, html, `<span class="error">bad</span>`)
	assert.Contains(t, html, `lang="en"`)
}

func TestRender_UnknownTemplate(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	err = r.Render(&bytes.Buffer{}, "missing.html", Page{}, nil)
	assert.Error(t, err)
}

func TestFuncs_Elapsed(t *testing.T) {
	elapsed := funcs["elapsed"].(func(time.Duration) string)
	assert.Equal(t, "0s", elapsed(0))
	assert.Equal(t, "1m30s", elapsed(90*time.Second+400*time.Millisecond))
}
