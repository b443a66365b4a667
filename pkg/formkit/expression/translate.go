package expression

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for condition translation.
var (
	// ErrUnterminatedPlaceholder indicates a "{" without a closing "}".
	ErrUnterminatedPlaceholder = errors.New("unterminated placeholder")

	// ErrEmptyPlaceholder indicates a "{}" with no value name inside.
	ErrEmptyPlaceholder = errors.New("empty placeholder")

	// ErrUnterminatedString indicates a quote without a closing quote.
	ErrUnterminatedString = errors.New("unterminated string literal")
)

// Translate converts placeholder condition syntax into expression source.
//
// Condition syntax references input values as "{name}" placeholders and
// allows the loose comparison forms common in form definitions:
//
//	{age} >= 18 and {country} = 'US'
//	{score} <> 0 or {override}
//
// Rewrites applied:
//   - "{name}" becomes the identifier name (non-identifier characters are
//     mapped to underscores, matching the value-map normalization in Run)
//   - a single "=" becomes "=="
//   - "<>" becomes "!="
//
// Quoted string literals (single or double quoted) pass through untouched.
// Everything else is already valid expression source and is copied as-is.
func Translate(text string) (string, error) {
	var out strings.Builder
	out.Grow(len(text))

	for i := 0; i < len(text); {
		c := text[i]
		switch {
		case c == '\'' || c == '"':
			j := strings.IndexByte(text[i+1:], c)
			if j < 0 {
				return "", fmt.Errorf("translate %q: %w", text, ErrUnterminatedString)
			}
			out.WriteString(text[i : i+j+2])
			i += j + 2

		case c == '{':
			j := strings.IndexByte(text[i+1:], '}')
			if j < 0 {
				return "", fmt.Errorf("translate %q: %w", text, ErrUnterminatedPlaceholder)
			}
			name := identifier(text[i+1 : i+1+j])
			if name == "" {
				return "", fmt.Errorf("translate %q: %w", text, ErrEmptyPlaceholder)
			}
			out.WriteString(name)
			i += j + 2

		case c == '<':
			if i+1 < len(text) && text[i+1] == '>' {
				out.WriteString("!=")
				i += 2
			} else if i+1 < len(text) && text[i+1] == '=' {
				out.WriteString("<=")
				i += 2
			} else {
				out.WriteByte('<')
				i++
			}

		case c == '>' || c == '!':
			out.WriteByte(c)
			if i+1 < len(text) && text[i+1] == '=' {
				out.WriteByte('=')
				i += 2
			} else {
				i++
			}

		case c == '=':
			out.WriteString("==")
			if i+1 < len(text) && text[i+1] == '=' {
				i += 2
			} else {
				i++
			}

		default:
			out.WriteByte(c)
			i++
		}
	}

	return out.String(), nil
}

// identifier maps a placeholder name to a valid expression identifier.
// Letters, digits, and underscores are kept; every other character becomes
// an underscore. A leading digit gets an underscore prefix. Whitespace at
// either end is dropped before mapping.
func identifier(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	var out strings.Builder
	out.Grow(len(name) + 1)
	for i, r := range name {
		valid := r == '_' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9')
		if i == 0 && r >= '0' && r <= '9' {
			out.WriteByte('_')
		}
		if valid {
			out.WriteRune(r)
		} else {
			out.WriteByte('_')
		}
	}
	return out.String()
}
