package parser

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "strings"

// scanner is the cursor into the HTML source. A single scanner is shared by
// all frames of a parse; frames move it forward and may rewind it.
type scanner struct {
	src string
	pos int
}

func (s *scanner) more() bool {
	return s.pos < len(s.src)
}

func (s *scanner) peek() byte {
	if s.pos >= len(s.src) {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) hasPrefix(p string) bool {
	return strings.HasPrefix(s.src[s.pos:], p)
}

// textTill reads up to the first occurrence of one of the delimiters and
// moves behind it. If more than one delimiter matches at the same position,
// the first one in the argument list wins. If no delimiter is found, the rest
// of the input is returned with an empty delimiter.
func (s *scanner) textTill(delims ...string) (text string, delim string) {
	start := s.pos
	for i := start; i < len(s.src); i++ {
		for _, d := range delims {
			if strings.HasPrefix(s.src[i:], d) {
				s.pos = i + len(d)
				return s.src[start:i], d
			}
		}
	}
	s.pos = len(s.src)
	return s.src[start:], ""
}

// textTillFold is like textTill with a single delimiter, compared
// case-insensitively.
func (s *scanner) textTillFold(delim string) (text string, found string) {
	start, n := s.pos, len(delim)
	for i := start; i+n <= len(s.src); i++ {
		if strings.EqualFold(s.src[i:i+n], delim) {
			s.pos = i + n
			return s.src[start:i], s.src[i : i+n]
		}
	}
	s.pos = len(s.src)
	return s.src[start:], ""
}

func (s *scanner) skipSpace() {
	for s.more() && isSpace(s.src[s.pos]) {
		s.pos++
	}
}

// line returns the 1-based line number of a position.
func (s *scanner) line(pos int) int {
	if pos > len(s.src) {
		pos = len(s.src)
	}
	return strings.Count(s.src[:pos], "\n") + 1
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\r' || c == '\t'
}

var whitespace = []string{" ", "\n", "\r", "\t"}

func isWhitespace(delim string) bool {
	return len(delim) == 1 && isSpace(delim[0])
}

// isTagName is true for names made of ASCII letters, digits, ':' and '-',
// starting with a letter.
func isTagName(name string) bool {
	if name == "" || !isLetter(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if c := name[i]; !isLetter(c) && !('0' <= c && c <= '9') && c != ':' && c != '-' {
			return false
		}
	}
	return true
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
