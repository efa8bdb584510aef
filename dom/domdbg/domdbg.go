/*
Package domdbg implements helpers to debug an element tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/thedom/dom"
	"github.com/npillmayer/thedom/dom/style"
	tp "github.com/xlab/treeprint"
)

// Dump returns an indented tree view of the subtree of n, one line per node.
func Dump(n dom.Node) string {
	p := tp.New()
	dump(p, n)
	return p.String()
}

func dump(p tp.Tree, n dom.Node) {
	w, ok := n.(dom.Widget)
	if !ok {
		p.AddNode(label(n))
		return
	}
	if w.Elem().Count() == 0 {
		p.AddNode(label(n))
		return
	}
	branch := p.AddBranch(label(n))
	for _, ch := range w.Elem().Children() {
		dump(branch, ch)
	}
}

func label(n dom.Node) string {
	switch x := n.(type) {
	case *dom.TextNode:
		return fmt.Sprintf("%q", shorten(x.Text(), 20))
	case dom.Widget:
		e := x.Elem()
		var b strings.Builder
		if e.TagName() == "" {
			b.WriteString("(tagless)")
		} else {
			b.WriteString("<" + e.TagName() + ">")
		}
		if e.ID() != "" {
			b.WriteString(" #" + e.ID())
		}
		if names := e.ClassNames(); len(names) > 0 {
			b.WriteString(" ." + strings.Join(names, "."))
		}
		if e.Product() != "" && e.Product() != e.TagName() {
			b.WriteString(" [" + e.Product() + "]")
		}
		return b.String()
	}
	return fmt.Sprintf("%v", n)
}

func shorten(s string, max int) string {
	r := []rune(s)
	if len(r) > max {
		return string(r[:max]) + "…"
	}
	return s
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname  string
	NodeTmpl  *template.Template
	EdgeTmpl  *template.Template
	StyleTmpl *template.Template
}

type node struct {
	Name   string
	Label  string
	IsText bool
}

type edge struct {
	N1, N2 string
}

type styleNode struct {
	Owner      string
	Properties []style.KeyValue
}

// ToGraphViz outputs a diagram for an element tree. The diagram is in
// GraphViz (DOT) format. Elements with style declarations are connected to
// a record listing the declarations.
func ToGraphViz(root dom.Node, w io.Writer) error {
	head := template.Must(template.New("dom").Parse(graphHeadTmpl))
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.StyleTmpl = template.Must(template.New("styles").Parse(stylesTmpl))
	if err := head.Execute(w, gparams); err != nil {
		return err
	}
	count := 0
	if err := nodes(root, w, &count, &gparams); err != nil {
		return err
	}
	_, err := io.WriteString(w, "}\n")
	return err
}

func nodes(n dom.Node, w io.Writer, count *int, gparams *graphParamsType) error {
	*count++
	name := fmt.Sprintf("node%05d", *count)
	_, isText := n.(*dom.TextNode)
	if err := gparams.NodeTmpl.Execute(w, node{name, dotLabel(label(n)), isText}); err != nil {
		return err
	}
	wd, ok := n.(dom.Widget)
	if !ok {
		return nil
	}
	e := wd.Elem()
	if props := e.StyleProperties(); len(props) > 0 {
		if err := gparams.StyleTmpl.Execute(w, styleNode{name, props}); err != nil {
			return err
		}
	}
	for _, ch := range e.Children() {
		chname := fmt.Sprintf("node%05d", *count+1)
		if err := nodes(ch, w, count, gparams); err != nil {
			return err
		}
		if err := gparams.EdgeTmpl.Execute(w, edge{name, chname}); err != nil {
			return err
		}
	}
	return nil
}

func dotLabel(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return `"` + s + `"`
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if .IsText }}{{ .Name }}	[ label={{ .Label }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}{{ .Name }}	[ label={{ .Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}`

const stylesTmpl = `{{ .Owner }}_style [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">style</font></td></tr>
      {{ range .Properties }}<tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ end }}
    </table>> ] ;
{{ .Owner }} -> {{ .Owner }}_style [dir=none weight=1 style="dashed"] ;
`

const domEdgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`
