package elements

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"
	"strings"

	"github.com/npillmayer/thedom/dom"
)

// Scripts is a <script> element collecting the client-side scripts of a
// tree. It implements dom.ScriptContainer:
//
//     page := dom.New("body")
//     scripts := elements.NewScripts()
//     page.AddChildElement(scripts)
//     page.SetScriptContainer(scripts)
//
type Scripts struct {
	dom.Element
	scripts []string
	objects map[string]struct{}
}

var _ dom.ScriptContainer = &Scripts{}

// NewScripts creates an empty script container.
func NewScripts() *Scripts {
	s := &Scripts{objects: make(map[string]struct{})}
	s.Init(s, "script").SetAttribute("type", "text/javascript")
	return s
}

// AddScript appends a script, unless it is already present.
func (s *Scripts) AddScript(script string) {
	for _, x := range s.scripts {
		if x == script {
			return
		}
	}
	s.scripts = append(s.scripts, script)
}

// RemoveScript removes a script.
func (s *Scripts) RemoveScript(script string) {
	for i, x := range s.scripts {
		if x == script {
			s.scripts = append(s.scripts[:i], s.scripts[i+1:]...)
			return
		}
	}
}

// AddJSFunctions registers client-side support for a type of widget.
func (s *Scripts) AddJSFunctions(objectType string) {
	s.objects[objectType] = struct{}{}
}

// Scripts returns the collected scripts in order of addition.
func (s *Scripts) Scripts() []string {
	return append([]string(nil), s.scripts...)
}

// ObjectTypes returns the registered widget types, sorted.
func (s *Scripts) ObjectTypes() []string {
	types := make([]string, 0, len(s.objects))
	for t := range s.objects {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Content renders the scripts, one per line.
func (s *Scripts) Content(bool) string {
	return strings.Join(s.scripts, "\n")
}
