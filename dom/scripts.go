package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// ScriptContainer collects client-side scripts emitted by elements of a tree.
type ScriptContainer interface {
	AddScript(script string)
	RemoveScript(script string)
	AddJSFunctions(objectType string) // register client-side support for a type of widget
}

// SetScriptContainer attaches a script container to the root of the element's
// tree. Scripts buffered on the element or on the root are flushed into it.
func (e *Element) SetScriptContainer(c ScriptContainer) {
	if c == nil {
		return
	}
	root := e.RootElement()
	root.scriptContainer = c
	root.flushScripts(c)
	if root != e {
		e.flushScripts(c)
	}
}

// ScriptContainer returns the script container attached to the root of the
// element's tree, or nil.
func (e *Element) ScriptContainer() ScriptContainer {
	return e.RootElement().scriptContainer
}

// AddScript adds a client-side script. If no script container is attached to
// the tree, the script is buffered on the root until one is attached.
// Duplicate scripts are buffered once.
func (e *Element) AddScript(script string) {
	if script == "" {
		return
	}
	if c := e.ScriptContainer(); c != nil {
		c.AddScript(script)
	} else if p := e.Parent(); p != nil {
		p.Elem().AddScript(script)
	} else {
		e.scriptTemp = appendUnique(e.scriptTemp, script)
	}
}

// RemoveScript removes a script from the script container or from the buffer.
func (e *Element) RemoveScript(script string) {
	if c := e.ScriptContainer(); c != nil {
		c.RemoveScript(script)
	} else if p := e.Parent(); p != nil {
		p.Elem().RemoveScript(script)
	} else {
		e.scriptTemp = removeString(e.scriptTemp, script)
	}
}

// AddJSFunctions registers client-side support for a type of widget.
// It is buffered like AddScript.
func (e *Element) AddJSFunctions(objectType string) {
	if objectType == "" {
		return
	}
	if c := e.ScriptContainer(); c != nil {
		c.AddJSFunctions(objectType)
	} else if p := e.Parent(); p != nil {
		p.Elem().AddJSFunctions(objectType)
	} else {
		e.objectTemp = appendUnique(e.objectTemp, objectType)
	}
}

// BufferedScripts returns the scripts buffered on this element.
func (e *Element) BufferedScripts() []string {
	s := make([]string, len(e.scriptTemp))
	copy(s, e.scriptTemp)
	return s
}

func (e *Element) flushScripts(c ScriptContainer) {
	for _, s := range e.scriptTemp {
		c.AddScript(s)
	}
	for _, o := range e.objectTemp {
		c.AddJSFunctions(o)
	}
	e.scriptTemp, e.objectTemp = nil, nil
}

// adoptBufferedScripts moves scripts buffered on a new child up the tree.
func (e *Element) adoptBufferedScripts(child *Element) {
	if child == e || (len(child.scriptTemp) == 0 && len(child.objectTemp) == 0) {
		return
	}
	scripts, objects := child.scriptTemp, child.objectTemp
	child.scriptTemp, child.objectTemp = nil, nil
	for _, s := range scripts {
		e.AddScript(s)
	}
	for _, o := range objects {
		e.AddJSFunctions(o)
	}
}

func appendUnique(list []string, s string) []string {
	for _, x := range list {
		if x == s {
			return list
		}
	}
	return append(list, s)
}

func removeString(list []string, s string) []string {
	for i, x := range list {
		if x == s {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
