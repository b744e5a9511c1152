// Package format implements the display-format template used by pulsebar
// blocks. A template is a plain string with `{name}` placeholders, e.g.
// "{average}° avg, {max}° max". Templates are parsed once at block
// construction and rendered against a value map on every update.
package format

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnterminated is returned by Parse when a `{` has no closing `}`.
var ErrUnterminated = errors.New("unterminated placeholder")

// ErrUnknownPlaceholder is returned by Render when the value map lacks a
// placeholder the template references. This is a configuration error, not
// a runtime data error.
var ErrUnknownPlaceholder = errors.New("unknown placeholder")

type token struct {
	text        string
	placeholder bool
}

// Template is a parsed display-format string: an ordered sequence of
// literal and placeholder tokens. Immutable after Parse.
type Template struct {
	source string
	tokens []token
}

// Parse splits a format string into literal and placeholder tokens.
// A `}` outside a placeholder is treated as a literal character.
func Parse(s string) (*Template, error) {
	t := &Template{source: s}
	for len(s) > 0 {
		open := strings.IndexByte(s, '{')
		if open < 0 {
			t.tokens = append(t.tokens, token{text: s})
			break
		}
		if open > 0 {
			t.tokens = append(t.tokens, token{text: s[:open]})
		}
		s = s[open+1:]
		end := strings.IndexByte(s, '}')
		if end < 0 {
			return nil, fmt.Errorf("%w: missing '}' after %q", ErrUnterminated, "{"+s)
		}
		t.tokens = append(t.tokens, token{text: s[:end], placeholder: true})
		s = s[end+1:]
	}
	return t, nil
}

// Render substitutes each placeholder with its mapped value and returns
// the concatenation. Rendering is pure: the same template and values
// always produce the same string.
func (t *Template) Render(values map[string]string) (string, error) {
	var b strings.Builder
	for _, tok := range t.tokens {
		if !tok.placeholder {
			b.WriteString(tok.text)
			continue
		}
		v, ok := values[tok.text]
		if !ok {
			return "", fmt.Errorf("%w: {%s} in %q", ErrUnknownPlaceholder, tok.text, t.source)
		}
		b.WriteString(v)
	}
	return b.String(), nil
}

// Placeholders returns the placeholder names in template order, with
// duplicates preserved. Useful for validating a template against the
// set of values a block can supply.
func (t *Template) Placeholders() []string {
	var names []string
	for _, tok := range t.tokens {
		if tok.placeholder {
			names = append(names, tok.text)
		}
	}
	return names
}

// String returns the original format string.
func (t *Template) String() string { return t.source }
