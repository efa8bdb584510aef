package dom

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/thedom/dom/style"
)

type input struct {
	ValueElement
}

func newInput(id, name string) *input {
	in := &input{}
	in.Init(in, "input")
	in.SetTagSelfCloses(true)
	in.SetAllowsChildren(false)
	in.SetIdentity(id, name)
	return in
}

func (in *input) Properties() *PropertyTable {
	return inputProperties
}

var inputProperties = NewPropertyTable(BaseProperties, ValueProperties)

type labeled struct {
	Element
	label *Element
	inner *Element
}

func newLabeled() *labeled {
	l := &labeled{}
	l.Init(l, "div")
	l.label = New("label")
	l.inner = New("div")
	l.AddChildElements(l.label, l.inner)
	l.SetAddChildElementsTo(l.inner)
	return l
}

func (l *labeled) Delegate(accessor string) (Widget, bool) {
	if accessor == "label" {
		return l.label, true
	}
	return nil, false
}

func (l *labeled) Properties() *PropertyTable {
	return labeledProperties
}

var labeledProperties = NewPropertyTable(BaseProperties).
	Define("labelTitle", DelegateTo("label", Attribute("title")))

func buildDocument() *Element {
	root := New("")
	html := New("html")
	head, body := New("head"), New("body")
	root.AddChildElement(html)
	html.AddChildElements(head, body)
	body.AddChildElement(New("br").SetTagSelfCloses(true))
	body.AddChildElement(New("div").SetID("myDiv"))
	return root
}

func TestRenderCompactAndFormatted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.dom")
	defer teardown()
	//
	root := buildDocument()
	compact := root.ToHTML(false)
	if compact != `<html><head></head><body><br /><div id="myDiv"></div></body></html>` {
		t.Errorf("unexpected compact output: %s", compact)
	}
	formatted := root.ToHTML(true)
	expected := "<html>\n <head>\n </head>\n <body>\n  <br />\n  <div id=\"myDiv\">\n  </div>\n </body>\n</html>"
	if formatted != expected {
		t.Errorf("unexpected formatted output:\n%s", formatted)
	}
}

func TestStartTag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.dom")
	defer teardown()
	//
	if s := NewElement("div", "1", "").StartTag(); s != `<div name="1" id="1">` {
		t.Errorf("expected name to default to id, start tag is %s", s)
	}
	in := newInput("2", "")
	in.SetAttribute("type", "text")
	if s := in.ToHTML(false); s != `<input name="2" id="2" type="text" />` {
		t.Errorf("unexpected self-closing tag %s", s)
	}
	e := NewElement("div", "x", "")
	e.AddClass("a").AddClass("b").AddClass("a")
	e.SetStyle("margin", "5px")
	e.SetAttribute("title", `say "hi"`)
	e.SetAttribute("value", Blank)
	e.SetAttribute("disabled", Empty)
	e.SetAttribute("data-n", Callback(func() any { return 42 }))
	e.SetAttribute("skipped", "")
	expected := `<div name="x" id="x" class="a b" style="margin:5px;" title="say &quot;hi&quot;" value="" disabled data-n="42">`
	if s := e.StartTag(); s != expected {
		t.Errorf("unexpected start tag\n  %s, expected\n  %s", s, expected)
	}
	if New("").StartTag() != "" || New("").EndTag() != "" {
		t.Errorf("expected tagless element to render no tags")
	}
}

func TestRenderingSignal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.dom")
	defer teardown()
	//
	in := newInput("x", "")
	in.Connect(SigRendering, func(e *Element, _ any) {
		if !e.Editable() {
			e.SetAttribute("readonly", "readonly")
		}
	})
	in.SetEditable(false)
	if s := in.ToHTML(false); s != `<input name="x" id="x" readonly="readonly" />` {
		t.Errorf("expected rendering hook to add readonly, output is %s", s)
	}
}

func TestAddChildIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.dom")
	defer teardown()
	//
	p := New("div")
	a, b := New("a"), New("b")
	p.AddChildElements(a, b)
	r := p.AddChildElement(a)
	if r.Status != AlreadyPresent || !r.OK() {
		t.Errorf("expected re-adding a to report already-present, is %s", r.Status)
	}
	if p.Count() != 2 || p.Child(0) != Node(a) {
		t.Errorf("expected a to stay at position 0 of 2 children")
	}
	r = p.AddChild(a, false)
	if r.Status != Added || p.Count() != 3 {
		t.Errorf("expected duplicate reference to be appended, have %d children", p.Count())
	}
	q := New("div")
	q.AddChildElement(b)
	if b.Parent() != Widget(q) || p.Count() != 2 {
		t.Errorf("expected b to move to q")
	}
}

func TestAddChildRejected(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.dom")
	defer teardown()
	//
	in := newInput("x", "")
	r := in.AddChildElement(New("span"))
	if r.OK() || !errors.Is(r.Err, ErrChildrenNotAllowed) {
		t.Errorf("expected input to reject children, result is %v", r)
	}
	if in.Count() != 0 {
		t.Errorf("expected input to stay childless")
	}
	p := New("div")
	c := New("div")
	p.AddChildElement(c)
	if r := c.AddChildElement(p); !errors.Is(r.Err, ErrCyclicChild) {
		t.Errorf("expected cycle to be rejected, result is %v", r)
	}
	if r := p.AddChildElement(nil); !errors.Is(r.Err, ErrNilChild) {
		t.Errorf("expected nil child to be rejected, result is %v", r)
	}
	var nilElement *Element
	if r := p.AddChildElement(nilElement); r.OK() {
		t.Errorf("expected typed nil child to be rejected")
	}
}

func TestAddChildElementsTo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.dom")
	defer teardown()
	//
	l := newLabeled()
	x := NewText("content")
	l.AddChildElement(x)
	if x.Parent() != Widget(l.inner) {
		t.Errorf("expected text to land in inner container, parent is %v", x.Parent())
	}
	if s := l.ToHTML(false); s != "<div><label></label><div>content</div></div>" {
		t.Errorf("unexpected composite output %s", s)
	}
	if !l.RemoveChild(x) || x.Parent() != nil {
		t.Errorf("expected text to be removed from inner container")
	}
}

func TestReplaceAndRemove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.dom")
	defer teardown()
	//
	lonely := New("p")
	if r := lonely.ReplaceWith(New("q")); !IsInvalid(r) {
		t.Errorf("expected replacing a rootless element to return Invalid")
	}
	p := New("div")
	a, b, c := New("a"), NewText("b"), New("c")
	p.AddChildElements(a, b)
	a.ReplaceWith(c)
	if p.Child(0) != Node(c) || a.Parent() != nil || c.Parent() != Widget(p) {
		t.Errorf("expected c to replace a")
	}
	b.ReplaceWith(NewText("B"))
	if s := p.ToHTML(false); s != "<div><c></c>B</div>" {
		t.Errorf("expected text to be replaced, output is %s", s)
	}
	c.Remove()
	if p.Count() != 1 {
		t.Errorf("expected c to be removed, have %d children", p.Count())
	}
	p.Reset()
	if p.Count() != 0 {
		t.Errorf("expected no children after reset")
	}
}

func TestPrefixInheritance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.dom")
	defer teardown()
	//
	root := New("form").SetPrefix("P-")
	mid := New("div")
	x := NewElement("input", "X", "")
	root.AddChildElement(mid)
	mid.AddChildElement(x)
	if x.FullID() != "P-X" || x.FullName() != "P-X" {
		t.Errorf("expected inherited prefix, fullId is %q", x.FullID())
	}
	mid.SetPrefix(" ")
	if x.FullID() != "X" {
		t.Errorf("expected single space prefix to clear inherited prefix, fullId is %q", x.FullID())
	}
	if mid.HasExplicitPrefix() != true || x.HasExplicitPrefix() {
		t.Errorf("unexpected explicit-prefix flags")
	}
	if New("div").FullID() != "" {
		t.Errorf("expected element without id to have empty full id")
	}
}

func TestInsertVariablesPriority(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.dom")
	defer teardown()
	//
	form := New("form").SetPrefix("p-")
	in := newInput("X", "Y")
	in.SetKey("a.b.c")
	form.AddChildElement(in)
	cases := []struct {
		vars     Vars
		expected string
	}{
		{Vars{"a": Vars{"b": Vars{"c": "v1"}}, "p-X": "v2", "X": "v3", "p-Y": "v4", "Y": "v5"}, "v1"},
		{Vars{"p-X": "v2", "X": "v3", "p-Y": "v4", "Y": "v5"}, "v2"},
		{Vars{"X": "v3", "p-Y": "v4", "Y": "v5"}, "v3"},
		{Vars{"p-Y": "v4", "Y": "v5"}, "v4"},
		{Vars{"Y": "v5"}, "v5"},
	}
	for i, c := range cases {
		form.InsertVariables(c.vars)
		if in.Value() != c.expected {
			t.Errorf("case %d: expected value %s, is %v", i, c.expected, in.Value())
		}
		if _, ok := c.vars["Y"]; ok {
			t.Errorf("case %d: expected consumed entries to be removed", i)
		}
	}
}

func TestInsertVariablesPopsLists(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.dom")
	defer teardown()
	//
	form := New("form")
	f1, f2 := newInput("", "f"), newInput("", "f")
	form.AddChildElements(f1, f2)
	vars := Vars{"f": []any{"1", "2"}, "other": "x"}
	form.InsertVariables(vars)
	if f1.Value() != "1" || f2.Value() != "2" {
		t.Errorf("expected repeated fields to take list entries in order, have %v/%v", f1.Value(), f2.Value())
	}
	if _, ok := vars["f"]; ok {
		t.Errorf("expected list entry to be consumed")
	}
	if vars["other"] != "x" {
		t.Errorf("expected unrelated entries to survive")
	}
	in := newInput("t", "")
	in.InsertVariables(Vars{"t": "a<b"})
	if in.Value() != "a&lt;b" {
		t.Errorf("expected value to be sanitized, is %v", in.Value())
	}
}

func TestExportVariables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.dom")
	defer teardown()
	//
	form := New("form")
	f1, f2, k := newInput("", "f"), newInput("", "f"), newInput("k", "")
	k.SetKey("a.b")
	form.AddChildElements(f1, f2, k)
	f1.SetValue("1")
	f2.SetValue("2")
	k.SetValue("deep")
	flat := form.ExportVariables(nil, true)
	list, ok := flat["f"].([]any)
	if !ok || len(list) != 2 || list[0] != "1" || list[1] != "2" {
		t.Errorf("expected repeated names to accumulate, have %v", flat["f"])
	}
	if flat["k"] != "deep" {
		t.Errorf("expected flat export by name, have %v", flat)
	}
	nested := form.ExportVariables(nil, false)
	if v, _ := NestedGet(nested, "a.b"); v != "deep" {
		t.Errorf("expected nested export at key a.b, have %v", nested)
	}
	if _, ok := nested["f"]; ok {
		t.Errorf("expected key-less fields to be left out of nested export")
	}
	vars := Vars{"f": "x", "k": "y", "z": "z"}
	form.ClearFromRequest(vars)
	if len(vars) != 1 {
		t.Errorf("expected only unrelated entry to survive clearing, have %v", vars)
	}
}

func TestVisibility(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.dom")
	defer teardown()
	//
	e := New("div")
	hidden, shown := 0, 0
	e.Connect(SigHidden, func(*Element, any) { hidden++ })
	e.Connect(SigShown, func(*Element, any) { shown++ })
	e.Show()
	if shown != 0 {
		t.Errorf("expected showing a visible element to be a no-op")
	}
	e.Hide()
	e.Hide()
	if hidden != 1 || e.Shown() {
		t.Errorf("expected exactly one hidden notification, have %d", hidden)
	}
	if s := e.StartTag(); s != `<div style="display:none;">` {
		t.Errorf("unexpected start tag of hidden element: %s", s)
	}
	e.Show()
	if shown != 1 || !e.Shown() {
		t.Errorf("expected element to be shown again")
	}
}

func TestEditableCascades(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.dom")
	defer teardown()
	//
	p := New("form")
	in := newInput("x", "")
	p.AddChildElement(in)
	if !in.Editable() {
		t.Errorf("expected elements to be editable by default")
	}
	changes := 0
	p.Connect(SigEditableChanged, func(*Element, any) { changes++ })
	p.SetEditable(false)
	p.SetEditable(false)
	if in.Editable() || changes != 1 {
		t.Errorf("expected editability to cascade with one notification, have %d", changes)
	}
	in.SetEditable(true)
	if !in.Editable() {
		t.Errorf("expected explicit setting to override parent")
	}
}

func TestValidators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.dom")
	defer teardown()
	//
	form := New("form").SetPrefix("f-")
	in := newInput("mail", "")
	nameless := newInput("", "n")
	failing := ValidatorFunc(func(v any) error {
		if v == "" || v == nil {
			return errors.New("required")
		}
		return nil
	})
	in.SetValidator(failing)
	nameless.SetValidator(failing)
	form.AddChildElements(in, nameless)
	vs := form.Validators(true)
	if len(vs) != 2 || vs["f-mail"] == nil || vs["f-n"] == nil {
		t.Errorf("expected validators keyed by full id or name, have %v", vs)
	}
	if vs := form.Validators(false); vs["mail"] == nil {
		t.Errorf("expected validators keyed by id, have %v", vs)
	}
	in.SetValue("me")
	errs := form.ValidateValues()
	if len(errs) != 1 || errs["f-n"] == nil {
		t.Errorf("expected one failing value, have %v", errs)
	}
	form.SetEditable(false)
	if vs := form.Validators(true); len(vs) != 0 {
		t.Errorf("expected uneditable elements to have no validators")
	}
}

func TestSetProperties(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.dom")
	defer teardown()
	//
	e := New("div")
	err := e.SetProperties(
		P("style", "margin:5px"),
		P("class", "a b"),
		P("title", "T"),
		P("hide", true),
		P("unknown", "x"),
		P("key", nil),
		P("javascriptEvents", map[string]string{"onclick": "go()"}),
	)
	if err != nil {
		t.Fatal(err)
	}
	expected := `<div class="a b" style="margin:5px;display:none;" title="T" onclick="go()">`
	if s := e.StartTag(); s != expected {
		t.Errorf("unexpected start tag\n  %s, expected\n  %s", s, expected)
	}
	if e.Key() != "" {
		t.Errorf("expected nil property value to be skipped")
	}
	err = e.SetProperties(P("style", "color red"))
	if !errors.Is(err, style.ErrMalformedStyle) {
		t.Errorf("expected malformed style error, is %v", err)
	}
	in := newInput("x", "")
	in.SetProperties(P("value", "v"), P("uneditable", "false"), P("validator", "required"))
	if in.Value() != "v" || !in.Editable() || in.Validator() == nil {
		t.Errorf("unexpected input state after setting properties")
	}
}

func TestDelegatedProperties(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.dom")
	defer teardown()
	//
	l := newLabeled()
	if err := l.SetProperties(P("labelTitle", "hello")); err != nil {
		t.Fatal(err)
	}
	if l.label.Attribute("title") != "hello" {
		t.Errorf("expected title to be delegated to label")
	}
	table := NewPropertyTable(BaseProperties).Define("x", DelegateTo("nowhere", Attribute("")))
	e := New("div").SetPropertyTable(table)
	if err := e.SetProperties(P("x", "y")); err == nil {
		t.Errorf("expected delegation to a non-delegator to fail")
	}
	pass := New("custom").SetPropertyTable(NewPropertyTable(BaseProperties).PassThrough())
	pass.SetProperties(P("a", "1"))
	if pass.Attribute("a") != "1" {
		t.Errorf("expected pass-through table to accept unknown properties")
	}
}

func TestJavascriptEvents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.dom")
	defer teardown()
	//
	e := New("button")
	e.AddJavascriptEvent("onclick", "a()").AddJavascriptEvent("onclick", "b()")
	if s := e.JavascriptEvent("onclick"); s != "a();b()" {
		t.Errorf("expected handlers to be joined by ';', are %q", s)
	}
	e.RemoveJavascriptEvent("onclick", "a()")
	if s := e.JavascriptEvent("onclick"); s != "b()" {
		t.Errorf("expected a() to be removed, handlers are %q", s)
	}
	e.AddJavascriptEvent("onclick", "c()")
	e.RemoveJavascriptEvent("onclick", "")
	if e.HasAttribute("onclick") {
		t.Errorf("expected all handlers to be removed")
	}
}

type scripts struct {
	added   []string
	objects []string
}

func (s *scripts) AddScript(script string) { s.added = append(s.added, script) }
func (s *scripts) RemoveScript(script string) {
	s.added = removeString(s.added, script)
}
func (s *scripts) AddJSFunctions(t string) { s.objects = append(s.objects, t) }

func TestScriptBuffering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.dom")
	defer teardown()
	//
	widget := New("div")
	widget.AddScript("s1")
	widget.AddScript("s1")
	widget.AddJSFunctions("widget")
	if len(widget.BufferedScripts()) != 1 {
		t.Errorf("expected duplicate scripts to be buffered once")
	}
	page := New("body")
	page.AddChildElement(widget)
	if len(widget.BufferedScripts()) != 0 || len(page.BufferedScripts()) != 1 {
		t.Errorf("expected scripts to move up to the root on adding")
	}
	c := &scripts{}
	widget.SetScriptContainer(c)
	if len(c.added) != 1 || c.added[0] != "s1" || len(c.objects) != 1 {
		t.Errorf("expected buffered scripts to be flushed, have %v / %v", c.added, c.objects)
	}
	widget.AddScript("s2")
	widget.RemoveScript("s1")
	if len(c.added) != 1 || c.added[0] != "s2" || page.ScriptContainer() != c {
		t.Errorf("expected scripts to go directly to the container, have %v", c.added)
	}
}

func TestQueries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.dom")
	defer teardown()
	//
	root := buildDocument()
	body := root.ChildElementsWithTagName("BODY")
	if len(body) != 1 {
		t.Fatalf("expected one body, have %d", len(body))
	}
	body[0].Elem().AddChildElement(NewElement("span", "s", "n").AddClass("c"))
	if w := root.ChildElementWithID("myDiv"); w == nil || w.Elem().TagName() != "div" {
		t.Errorf("expected to find div#myDiv")
	}
	if root.ChildElementWithID("none") != nil {
		t.Errorf("expected lookup of unknown id to fail")
	}
	if len(root.ChildElementsWithClass("c")) != 1 || len(root.ChildElementsWithName("n")) != 1 {
		t.Errorf("expected to find span by class and name")
	}
	if n := len(root.AllChildren()); n != 6 {
		t.Errorf("expected 6 descendants, have %d", n)
	}
	if !body[0].Elem().IsBlockElement() || New("span").IsBlockElement() {
		t.Errorf("unexpected block element classification")
	}
}

func TestInvalid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.dom")
	defer teardown()
	//
	inv := NewInvalid()
	inv.SetProperties(P("title", "x"))
	if s := inv.ToHTML(false); s != "<h2>Invalid Element</h2>" {
		t.Errorf("unexpected rendering of Invalid: %s", s)
	}
	if inv.AddChildElement(New("p")).OK() {
		t.Errorf("expected Invalid to reject children")
	}
}

func TestTextNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.dom")
	defer teardown()
	//
	txt := NewText("a < b")
	if txt.ToHTML(true) != "a < b" {
		t.Errorf("expected text to render verbatim")
	}
	if vars := txt.ExportVariables(nil, true); len(vars) != 0 {
		t.Errorf("expected text to export nothing")
	}
	if !IsInvalid(txt.ReplaceWith(NewText("x"))) {
		t.Errorf("expected rootless text replacement to return Invalid")
	}
}

func TestStringEventHandlers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.dom")
	defer teardown()
	//
	e := New("button")
	e.SetAttribute("onclick", "first()") // as stored by the parser
	e.AddJavascriptEvent("onclick", "second()")
	if s := e.JavascriptEvent("onclick"); s != "first();second()" {
		t.Errorf("expected existing handler to be kept, handlers are %q", s)
	}
	e.SetAttribute("onblur", "check()")
	e.RemoveJavascriptEvent("onblur", "check()")
	if e.HasAttribute("onblur") {
		t.Errorf("expected string handler to be removable")
	}
	e.SetAttribute("onfocus", "keep()")
	e.RemoveJavascriptEvent("onfocus", "other()")
	if s := e.JavascriptEvent("onfocus"); s != "keep()" {
		t.Errorf("expected unrelated handler to stay, is %q", s)
	}
}

func TestInsertAndReplaceRejectCycles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.dom")
	defer teardown()
	//
	p, c, d := New("div"), New("div"), New("span")
	p.AddChildElement(c)
	c.AddChildElement(d)
	if r := c.InsertChildAt(0, p); !errors.Is(r.Err, ErrCyclicChild) || r.OK() {
		t.Errorf("expected insertion of an ancestor to be rejected, result is %v", r)
	}
	if r := c.InsertChildAt(0, c); !errors.Is(r.Err, ErrCyclicChild) {
		t.Errorf("expected insertion of self to be rejected, result is %v", r)
	}
	if p.Parent() != nil || c.Parent() != Widget(p) {
		t.Errorf("expected tree to be unchanged")
	}
	if r := d.ReplaceWith(c); !IsInvalid(r) {
		t.Errorf("expected replacing a node by its parent to return Invalid")
	}
	if r := d.ReplaceWith(p); !IsInvalid(r) {
		t.Errorf("expected replacing a node by an ancestor to return Invalid")
	}
	if c.Parent() != Widget(p) || d.Parent() != Widget(c) {
		t.Errorf("expected tree to be unchanged after rejected replacements")
	}
	if s := p.ToHTML(false); s != "<div><div><span></span></div></div>" {
		t.Errorf("unexpected output %s", s)
	}
	x := New("b")
	p.AddChildElement(x)
	if r := c.InsertChildAt(-1, x); !errors.Is(r.Err, ErrNegativeIndex) {
		t.Errorf("expected negative index to be rejected, result is %v", r)
	}
	if x.Parent() != Widget(p) {
		t.Errorf("expected rejected child to stay with its parent")
	}
	if r := c.InsertChildAt(99, x); !r.OK() || c.Child(c.Count()-1) != Node(x) {
		t.Errorf("expected insertion past the end to append, result is %v", r)
	}
}

func TestInspectionDoesNotAllocate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.dom")
	defer teardown()
	//
	e := New("p")
	_ = e.ClassNames()
	_ = e.StyleText()
	_ = e.StyleProperties()
	_ = e.AttributeKeys()
	_, _ = e.AttributeValue("x")
	_ = e.ToHTML(false)
	if e.classes != nil || e.style != nil || e.attributes != nil {
		t.Errorf("expected read-only access to leave the element untouched")
	}
}
