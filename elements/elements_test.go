package elements

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/thedom/dom"
	"github.com/npillmayer/thedom/factory"
	"github.com/npillmayer/thedom/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.factory")
	defer teardown()
	//
	f := Tags()
	assert.Len(t, f.Products(), len(htmlTags))
	br := f.Build("BR", "", "", nil).Elem()
	assert.True(t, br.TagSelfCloses())
	assert.False(t, br.AllowsChildren())
	a := f.Build("a", "home", "", nil).Elem()
	require.NoError(t, a.SetProperties(dom.P("href", "/"), dom.P("class", "nav")))
	assert.Equal(t, `<a name="home" id="home" class="nav" href="/"></a>`, a.ToHTML(false))
}

func TestTextWidgets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.dom")
	defer teardown()
	//
	l := NewLabel()
	assert.Equal(t, "", l.Text())
	l.SetText("first")
	l.SetText("Caption")
	assert.Equal(t, "Caption", l.Text())
	assert.Equal(t, 1, l.Count())
	assert.Equal(t, "<label>Caption</label>", l.ToHTML(false))
	//
	b := NewButton()
	require.NoError(t, b.SetProperties(dom.P("text", "Go"), dom.P("onclick", "send()"),
		dom.P("disabled", true)))
	assert.Equal(t, `<button type="button" onclick="send()" disabled>Go</button>`, b.ToHTML(false))
	//
	a := NewAnchor().SetHref("/x")
	a.SetText("home")
	assert.Equal(t, `<a href="/x">home</a>`, a.ToHTML(false))
	//
	s := NewSpan()
	require.NoError(t, s.SetProperties(dom.P("text", "inline"), dom.P("style", "color: red")))
	assert.Equal(t, `<span style="color:red;">inline</span>`, s.ToHTML(false))
}

func TestContainerIsTagless(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.dom")
	defer teardown()
	//
	c := NewContainer()
	c.AddChildElements(NewBox(), dom.NewText("x"))
	assert.Equal(t, "<div></div>x", c.ToHTML(false))
}

func TestTextBox(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.dom")
	defer teardown()
	//
	tb := NewTextBox()
	tb.SetIdentity("age", "")
	assert.False(t, tb.AllowsChildren())
	assert.Equal(t, `<input name="age" id="age" type="text" />`, tb.ToHTML(false))
	require.NoError(t, tb.SetProperties(dom.P("value", "42"), dom.P("placeholder", "years")))
	assert.Equal(t, `<input name="age" id="age" type="text" value="42" placeholder="years" />`,
		tb.ToHTML(false))
	//
	box := NewBox()
	box.AddChildElement(tb)
	box.SetEditable(false)
	assert.Equal(t, `<div><input name="age" id="age" type="text" value="42" placeholder="years" readonly="readonly" /></div>`,
		box.ToHTML(false))
	box.SetEditable(true)
	assert.NotContains(t, box.ToHTML(false), "readonly")
}

func TestHiddenInputVariables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.dom")
	defer teardown()
	//
	h := NewHiddenInput()
	h.SetIdentity("token", "")
	h.InsertVariables(dom.Vars{"token": "abc"})
	assert.Equal(t, "abc", h.Value())
	assert.Equal(t, `<input name="token" id="token" type="hidden" value="abc" />`, h.ToHTML(false))
	vars := h.ExportVariables(dom.Vars{}, true)
	assert.Equal(t, "abc", vars["token"])
}

func TestField(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.dom")
	defer teardown()
	//
	f := NewField()
	require.NoError(t, f.SetProperties(dom.P("text", "Age"), dom.P("labelStyle", "color:red")))
	tb := NewTextBox()
	tb.SetIdentity("age", "")
	r := f.AddChildElement(tb)
	assert.True(t, r.OK())
	assert.Equal(t, f.Inputs().Elem(), tb.Parent().Elem())
	expected := `<div class="WField"><label style="color:red;" for="age">Age</label>` +
		`<div class="WInputs"><input name="age" id="age" type="text" /></div></div>`
	assert.Equal(t, expected, f.ToHTML(false))
	assert.Equal(t, "Age", f.Label().Text())
	w, ok := f.Delegate("inputs")
	require.True(t, ok)
	assert.Equal(t, "div", w.Elem().TagName())
	_, ok = f.Delegate("nothing")
	assert.False(t, ok)
}

func TestScripts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.dom")
	defer teardown()
	//
	page := dom.New("body")
	box := NewBox()
	page.AddChildElement(box)
	box.AddScript("init();")
	scripts := NewScripts()
	page.AddChildElement(scripts)
	page.SetScriptContainer(scripts)
	box.AddScript("init();")
	box.AddScript("run();")
	box.AddJSFunctions("WBox")
	assert.Equal(t, []string{"init();", "run();"}, scripts.Scripts())
	assert.Equal(t, []string{"WBox"}, scripts.ObjectTypes())
	assert.Equal(t, `<body><div></div><script type="text/javascript">init();`+"\n"+`run();</script></body>`,
		page.ToHTML(false))
	box.RemoveScript("init();")
	assert.Equal(t, []string{"run();"}, scripts.Scripts())
}

func TestBuildWidgetsFromTemplate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.factory")
	defer teardown()
	//
	tmpl, err := template.FromSHPAML("field#f text=Age\n  textbox#age placeholder=years\n")
	require.NoError(t, err)
	f := factory.NewComposite("ui", Tags(), NewFactory())
	n, err := f.BuildFromTemplate(tmpl, factory.WithVariables(dom.Vars{"age": "7"}))
	require.NoError(t, err)
	expected := `<div name="f" id="f" class="WField"><label for="age">Age</label>` +
		`<div class="WInputs"><input name="age" id="age" type="text" value="7" placeholder="years" /></div></div>`
	assert.Equal(t, expected, n.ToHTML(false))
	assert.True(t, f.HasProduct("dom-span"))
	assert.IsType(t, &Span{}, f.Build("span", "", "", nil), "widgets override plain tags")
}
