package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "strings"

// jsHandlers is the attribute value of a client-side event, e.g. onclick.
type jsHandlers []string

func (h jsHandlers) String() string {
	return strings.Join(h, ";")
}

// handlersOf returns a fresh copy of the scripts of an event attribute value.
// Parsed markup and templates store handlers as plain strings.
func handlersOf(v any) jsHandlers {
	switch h := v.(type) {
	case jsHandlers:
		return append(jsHandlers(nil), h...)
	case []string:
		return append(jsHandlers(nil), h...)
	case string:
		if h != "" {
			return jsHandlers{h}
		}
	}
	return nil
}

// AddJavascriptEvent appends a script to the handler of a client-side event,
// e.g. AddJavascriptEvent("onclick", "alert('hi')").
func (e *Element) AddJavascriptEvent(event string, script string) *Element {
	if event == "" || script == "" {
		return e
	}
	h, _ := e.attributes.Get(event)
	handlers := append(handlersOf(h), script)
	e.Attributes().Set(event, handlers)
	return e
}

// JavascriptEvent returns the scripts handling an event, joined by ';'.
func (e *Element) JavascriptEvent(event string) string {
	h, _ := e.attributes.Get(event)
	return Stringify(h)
}

// RemoveJavascriptEvent removes a script from the handler of an event.
// If script is empty, all scripts for the event are removed.
func (e *Element) RemoveJavascriptEvent(event string, script string) {
	if script == "" {
		e.attributes.Remove(event)
		return
	}
	h, _ := e.attributes.Get(event)
	handlers := handlersOf(h)
	i := 0
	for i < len(handlers) && handlers[i] != script {
		i++
	}
	if i == len(handlers) {
		return
	}
	handlers = append(handlers[:i], handlers[i+1:]...)
	if len(handlers) == 0 {
		e.attributes.Remove(event)
	} else {
		e.attributes.Set(event, handlers)
	}
}
