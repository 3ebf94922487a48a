package dom

import (
	"strings"
)

// TokenList maintains an ordered, deduplicated set of space-separated
// tokens stored in an element attribute. It is used for Element.ClassList.
// All reads and writes go through the attribute string, so token-boundary
// correctness ("foo" never matching inside "foobar") holds by
// construction.
type TokenList struct {
	element  *Element
	attrName string
}

func newTokenList(element *Element, attrName string) *TokenList {
	return &TokenList{element: element, attrName: attrName}
}

// validToken reports whether a token is usable: non-empty and free of
// ASCII whitespace, per the DOMTokenList spec.
func validToken(token string) bool {
	return token != "" && !strings.ContainsAny(token, " \t\n\r\f")
}

// validateTokens checks every token before any mutation runs, so a bad
// argument leaves the list untouched. Empty tokens report a SyntaxError
// and are checked across the whole argument list before whitespace
// tokens report an InvalidCharacterError, the order the DOMTokenList
// spec prescribes.
func validateTokens(tokens []string) error {
	for _, t := range tokens {
		if t == "" {
			return ErrSyntax("The token provided must not be empty.")
		}
	}
	for _, t := range tokens {
		if strings.ContainsAny(t, " \t\n\r\f") {
			return ErrInvalidCharacter("The token provided ('" + t + "') contains ASCII whitespace, which is not valid in tokens.")
		}
	}
	return nil
}

// tokens returns the current tokens, deduplicated, preserving order.
func (tl *TokenList) tokens() []string {
	if tl.element == nil {
		return nil
	}
	value := tl.element.GetAttribute(tl.attrName)
	if value == "" {
		return nil
	}
	all := strings.Fields(value)
	seen := make(map[string]bool, len(all))
	result := all[:0]
	for _, t := range all {
		if !seen[t] {
			seen[t] = true
			result = append(result, t)
		}
	}
	return result
}

// setTokens writes the tokens back to the attribute. The attribute is
// only created when there is something to store.
func (tl *TokenList) setTokens(tokens []string) {
	if tl.element == nil {
		return
	}
	if len(tokens) > 0 {
		tl.element.SetAttribute(tl.attrName, strings.Join(tokens, " "))
		return
	}
	if tl.element.HasAttribute(tl.attrName) {
		tl.element.SetAttribute(tl.attrName, "")
	}
}

// Length returns the number of tokens.
func (tl *TokenList) Length() int {
	return len(tl.tokens())
}

// Item returns the token at the given index, or "" if out of bounds.
func (tl *TokenList) Item(index int) string {
	tokens := tl.tokens()
	if index < 0 || index >= len(tokens) {
		return ""
	}
	return tokens[index]
}

// Contains returns true if the given token is in the list. Invalid
// tokens (empty or containing whitespace) report false.
func (tl *TokenList) Contains(token string) bool {
	if !validToken(token) {
		return false
	}
	for _, t := range tl.tokens() {
		if t == token {
			return true
		}
	}
	return false
}

// Add adds the given tokens to the list, skipping ones already present.
// An invalid token errors and leaves the list unchanged.
func (tl *TokenList) Add(tokens ...string) error {
	if err := validateTokens(tokens); err != nil {
		return err
	}
	current := tl.tokens()
	changed := false
	for _, token := range tokens {
		found := false
		for _, t := range current {
			if t == token {
				found = true
				break
			}
		}
		if !found {
			current = append(current, token)
			changed = true
		}
	}
	if changed {
		tl.setTokens(current)
	}
	return nil
}

// Remove removes the given tokens from the list, ignoring absent ones.
// An invalid token errors and leaves the list unchanged.
func (tl *TokenList) Remove(tokens ...string) error {
	if err := validateTokens(tokens); err != nil {
		return err
	}
	toRemove := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		toRemove[token] = true
	}
	current := tl.tokens()
	result := current[:0]
	changed := false
	for _, t := range current {
		if toRemove[t] {
			changed = true
			continue
		}
		result = append(result, t)
	}
	if changed {
		tl.setTokens(result)
	}
	return nil
}

// Toggle removes the token if present and adds it otherwise, returning
// true if the token is present after the call. An invalid token errors
// and leaves the list unchanged.
func (tl *TokenList) Toggle(token string) (bool, error) {
	if err := validateTokens([]string{token}); err != nil {
		return false, err
	}
	if tl.Contains(token) {
		tl.Remove(token)
		return false, nil
	}
	tl.Add(token)
	return true, nil
}

// Values returns a snapshot of the tokens.
func (tl *TokenList) Values() []string {
	return tl.tokens()
}

// String returns the underlying attribute value.
func (tl *TokenList) String() string {
	if tl.element == nil {
		return ""
	}
	return tl.element.GetAttribute(tl.attrName)
}
