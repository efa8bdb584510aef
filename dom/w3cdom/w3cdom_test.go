package w3cdom

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/thedom/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func page() *dom.Element {
	root := dom.New("")
	form := dom.NewElement("form", "login", "").AddClass("box")
	root.AddChildElements(dom.NewText("<!-- page -->"), form)
	user := dom.NewElement("input", "user", "").SetTagSelfCloses(true).
		SetAttribute("type", "text").SetAttribute("required", dom.Empty)
	pass := dom.NewElement("input", "pass", "").SetTagSelfCloses(true).
		SetAttribute("type", "password")
	group := dom.New("") // tagless
	group.AddChildElements(user, pass)
	p := dom.New("p").AddClass("hint").SetStyle("color", "red")
	p.AddChildElement(dom.NewText("a &lt; b"))
	form.AddChildElements(group, p)
	return root
}

func TestConvert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.dom")
	defer teardown()
	//
	doc := Convert(page())
	c := doc.Root.FirstChild
	require.NotNil(t, c)
	assert.Equal(t, html.CommentNode, c.Type)
	assert.Equal(t, "page", c.Data)
	form := c.NextSibling
	require.NotNil(t, form)
	assert.Equal(t, "form", form.Data)
	assert.Equal(t, []html.Attribute{{Key: "name", Val: "login"}, {Key: "id", Val: "login"},
		{Key: "class", Val: "box"}}, form.Attr)
	n := 0
	for ch := form.FirstChild; ch != nil; ch = ch.NextSibling {
		n++
	}
	assert.Equal(t, 3, n, "tagless group is transparent")
	assert.Equal(t, "a < b", TextContent(form))
	w, ok := doc.Widget(form)
	require.True(t, ok)
	assert.Equal(t, "login", w.Elem().ID())
}

func TestRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.dom")
	defer teardown()
	//
	var b strings.Builder
	require.NoError(t, Convert(page()).Render(&b))
	out := b.String()
	assert.True(t, strings.HasPrefix(out, `<!--page--><form name="login" id="login" class="box">`), out)
	assert.Contains(t, out, `required=""`)
	assert.Contains(t, out, `<p class="hint" style="color:red;">a &lt; b</p>`)
}

func TestQuery(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.dom")
	defer teardown()
	//
	root := page()
	widgets, err := Query(root, "form#login input[type=text]")
	require.NoError(t, err)
	require.Len(t, widgets, 1)
	assert.Equal(t, "user", widgets[0].Elem().ID())
	widgets, err = Query(root, "input")
	require.NoError(t, err)
	assert.Len(t, widgets, 2)
	widgets, err = Query(root, ".box > p.hint")
	require.NoError(t, err)
	assert.Len(t, widgets, 1)
	_, err = Query(root, "input[")
	assert.Error(t, err)
}
