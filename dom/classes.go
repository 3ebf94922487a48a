package dom

import (
	"strings"
)

// Class manipulation helpers. All of them take a space-separated class
// string, operate on each token independently, and silently no-op on a
// nil element or a blank string rather than raising. Token-boundary
// correctness comes from the TokenList: removing "foo" never touches
// "foobar". strings.Fields yields neither empty nor whitespace-bearing
// tokens, so the TokenList validation errors cannot fire here and are
// discarded.

// AddClasses adds each class in the space-separated string to the
// element.
func AddClasses(el *Element, classes string) {
	if el == nil {
		return
	}
	tokens := strings.Fields(classes)
	if len(tokens) == 0 {
		return
	}
	el.ClassList().Add(tokens...)
}

// RemoveClasses removes each class in the space-separated string from
// the element.
func RemoveClasses(el *Element, classes string) {
	if el == nil {
		return
	}
	tokens := strings.Fields(classes)
	if len(tokens) == 0 {
		return
	}
	el.ClassList().Remove(tokens...)
}

// ToggleClasses toggles each class in the space-separated string:
// present classes are removed, absent ones added. Every token is
// evaluated against the element's state before any toggle in the same
// call is applied, so ToggleClasses(el, "a a") adds "a" twice (a no-op
// the second time) rather than adding and removing it.
func ToggleClasses(el *Element, classes string) {
	if el == nil {
		return
	}
	tokens := strings.Fields(classes)
	if len(tokens) == 0 {
		return
	}
	list := el.ClassList()
	had := make([]bool, len(tokens))
	for i, t := range tokens {
		had[i] = list.Contains(t)
	}
	for i, t := range tokens {
		if had[i] {
			list.Remove(t)
		} else {
			list.Add(t)
		}
	}
}

// HasClass returns true if the element has the given single class.
func HasClass(el *Element, class string) bool {
	if el == nil {
		return false
	}
	return el.ClassList().Contains(class)
}
