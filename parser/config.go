package parser

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"
	"strings"

	"github.com/npillmayer/schuko"
)

// Configuration keys for the tag tables of the parser. Values are comma
// separated lists of tags.
const (
	KeyVoidTags       = "parser.void-tags"
	KeyNoSelfNesting  = "parser.no-self-nesting"
	KeyCloseIfNested  = "parser.close-if-nested"
	KeyForceEndBefore = "parser.force-end-before"
	KeyRetainFormat   = "parser.retain-format"
)

// TagSet is a set of lower case tag names.
type TagSet map[string]struct{}

// NewTagSet creates a set of tags.
func NewTagSet(tags ...string) TagSet {
	ts := make(TagSet, len(tags))
	for _, t := range tags {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			ts[t] = struct{}{}
		}
	}
	return ts
}

// Has is a predicate wether a tag is in the set.
func (ts TagSet) Has(tag string) bool {
	_, ok := ts[tag]
	return ok
}

// Tags returns the tags of the set, sorted.
func (ts TagSet) Tags() []string {
	tags := make([]string, 0, len(ts))
	for t := range ts {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// Config holds the tag tables which drive the recovery from sloppy HTML.
type Config struct {
	VoidTags       TagSet // tags without content, rendered self-closing
	NoSelfNesting  TagSet // tags implicitly closed by a start tag of the same kind
	CloseIfNested  TagSet // like NoSelfNesting (links may not contain links)
	ForceEndBefore TagSet // tags which close any open tag except <html>; their frames accept any end tag
	RetainFormat   TagSet // tags whose content is taken verbatim
}

// DefaultConfig returns the tag tables of practical HTML usage.
func DefaultConfig() Config {
	return Config{
		VoidTags:       NewTagSet("img", "input", "br", "meta", "link", "hr", "form:error"),
		NoSelfNesting:  NewTagSet("td", "tr", "li"),
		CloseIfNested:  NewTagSet("a"),
		ForceEndBefore: NewTagSet("body", "head"),
		RetainFormat:   NewTagSet("script", "pre"),
	}
}

// ConfigFrom reads the tag tables from a configuration. Tables not
// configured keep their defaults.
func ConfigFrom(conf schuko.Configuration) Config {
	cfg := DefaultConfig()
	if conf == nil {
		return cfg
	}
	tables := []struct {
		key   string
		table *TagSet
	}{
		{KeyVoidTags, &cfg.VoidTags},
		{KeyNoSelfNesting, &cfg.NoSelfNesting},
		{KeyCloseIfNested, &cfg.CloseIfNested},
		{KeyForceEndBefore, &cfg.ForceEndBefore},
		{KeyRetainFormat, &cfg.RetainFormat},
	}
	for _, t := range tables {
		if conf.IsSet(t.key) {
			*t.table = NewTagSet(strings.Split(conf.GetString(t.key), ",")...)
			tracer().Debugf("parser config %s = %v", t.key, t.table.Tags())
		}
	}
	return cfg
}
