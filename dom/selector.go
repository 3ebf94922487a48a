package dom

import (
	"strings"
)

// The selector engine supports the subset needed for matching and
// delegation: tag, #id, .class, [attr] with the =, ~=, |=, ^=, $= and *=
// operators, the universal selector, compound forms of all of these, and
// comma-separated lists. Combinators (descendant, child, sibling) are not
// supported; QuerySelector gets its descendant semantics from tree
// traversal.

// attrMatcher matches one attribute condition of a compound selector.
type attrMatcher struct {
	name  string
	op    string // "" means presence-only
	value string
}

// simpleSelector is one compound selector: an optional tag plus any
// number of id, class, and attribute conditions.
type simpleSelector struct {
	tag     string // lowercase; "" or "*" matches any tag
	id      string
	classes []string
	attrs   []attrMatcher
}

// selectorList is a comma-separated list of compound selectors; it
// matches if any member matches.
type selectorList []simpleSelector

func (list selectorList) matches(e *Element) bool {
	for _, s := range list {
		if s.matchesElement(e) {
			return true
		}
	}
	return false
}

func (s *simpleSelector) matchesElement(e *Element) bool {
	if s.tag != "" && s.tag != "*" && s.tag != e.LocalName() {
		return false
	}
	if s.id != "" && e.Id() != s.id {
		return false
	}
	for _, class := range s.classes {
		if !e.ClassList().Contains(class) {
			return false
		}
	}
	for _, am := range s.attrs {
		if !am.matchesElement(e) {
			return false
		}
	}
	return true
}

func (am *attrMatcher) matchesElement(e *Element) bool {
	if !e.HasAttribute(am.name) {
		return false
	}
	if am.op == "" {
		return true
	}
	value := e.GetAttribute(am.name)
	switch am.op {
	case "=":
		return value == am.value
	case "~=":
		for _, word := range strings.Fields(value) {
			if word == am.value {
				return true
			}
		}
		return false
	case "|=":
		return value == am.value || strings.HasPrefix(value, am.value+"-")
	case "^=":
		return am.value != "" && strings.HasPrefix(value, am.value)
	case "$=":
		return am.value != "" && strings.HasSuffix(value, am.value)
	case "*=":
		return am.value != "" && strings.Contains(value, am.value)
	}
	return false
}

// parseSelectorList parses a comma-separated selector list. It returns
// ok=false for selectors it cannot parse; callers treat that as
// "matches nothing".
func parseSelectorList(selector string) (selectorList, bool) {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return nil, false
	}
	var list selectorList
	for _, part := range strings.Split(selector, ",") {
		part = strings.TrimSpace(part)
		s, ok := parseSimpleSelector(part)
		if !ok {
			return nil, false
		}
		list = append(list, s)
	}
	return list, true
}

// parseSimpleSelector parses one compound selector.
func parseSimpleSelector(selector string) (simpleSelector, bool) {
	var s simpleSelector
	if selector == "" || strings.ContainsAny(selector, " \t>+~") {
		return s, false
	}

	rest := selector
	// Leading tag name or universal selector.
	if idx := strings.IndexAny(rest, ".#["); idx != 0 {
		if idx == -1 {
			s.tag = strings.ToLower(rest)
			rest = ""
		} else {
			s.tag = strings.ToLower(rest[:idx])
			rest = rest[idx:]
		}
		if s.tag != "*" && !isIdentifier(s.tag) {
			return s, false
		}
	}

	for rest != "" {
		switch rest[0] {
		case '.':
			name, remaining := readIdentifier(rest[1:])
			if name == "" {
				return s, false
			}
			s.classes = append(s.classes, name)
			rest = remaining
		case '#':
			name, remaining := readIdentifier(rest[1:])
			if name == "" {
				return s, false
			}
			s.id = name
			rest = remaining
		case '[':
			end := strings.IndexByte(rest, ']')
			if end == -1 {
				return s, false
			}
			am, ok := parseAttrMatcher(rest[1:end])
			if !ok {
				return s, false
			}
			s.attrs = append(s.attrs, am)
			rest = rest[end+1:]
		default:
			return s, false
		}
	}
	return s, true
}

// parseAttrMatcher parses the inside of a bracketed attribute condition.
func parseAttrMatcher(body string) (attrMatcher, bool) {
	var am attrMatcher
	body = strings.TrimSpace(body)
	if body == "" {
		return am, false
	}
	for _, op := range []string{"~=", "|=", "^=", "$=", "*=", "="} {
		if idx := strings.Index(body, op); idx != -1 {
			am.name = strings.ToLower(strings.TrimSpace(body[:idx]))
			am.op = op
			am.value = strings.Trim(strings.TrimSpace(body[idx+len(op):]), `"'`)
			if am.name == "" {
				return am, false
			}
			return am, true
		}
	}
	am.name = strings.ToLower(body)
	return am, am.name != ""
}

// readIdentifier consumes an identifier from the front of s, returning
// it and the remainder.
func readIdentifier(s string) (string, string) {
	end := strings.IndexAny(s, ".#[")
	if end == -1 {
		return s, ""
	}
	return s[:end], s[end:]
}

func isIdentifier(s string) bool {
	return s != "" && !strings.ContainsAny(s, ".#[]=~|^$*")
}
