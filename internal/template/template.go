package template

import (
	"fmt"
	"strings"
)

// KeyError is returned by Expand when the template references a key that
// is not present in the variable map.
//
// The error carries the offending key so callers can report exactly which
// tag a file was missing:
//
//	_, err := template.Expand("{album}", vars)
//	var keyErr *template.KeyError
//	if errors.As(err, &keyErr) {
//	    fmt.Println("missing tag:", keyErr.Key)
//	}
type KeyError struct {
	// Key is the placeholder name that had no value.
	Key string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("template references unknown key %q", e.Key)
}

// SyntaxError is returned by Expand when the template itself is malformed:
// an unclosed brace, a stray closing brace, or an empty placeholder.
type SyntaxError struct {
	// Pos is the byte offset of the offending character.
	Pos int

	// Detail describes what was wrong at that position.
	Detail string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("template syntax error at offset %d: %s", e.Pos, e.Detail)
}

// Expand substitutes every {key} placeholder in tmpl with the
// corresponding value from vars.
//
// Placeholders use single braces: "{artist} - {title}" looks up "artist"
// and "title". Doubled braces are escapes: "{{" produces a literal "{"
// and "}}" a literal "}". Values are stringified with fmt.Sprint, so
// non-string tag values (integers, library wrapper types) render the same
// way they print.
//
// Expand fails with *KeyError when a placeholder names a key absent from
// vars, and with *SyntaxError when a brace is unclosed, a closing brace
// appears outside a placeholder, or a placeholder is empty. It never
// recovers from its own errors; policy (abort vs. skip) belongs to the
// caller.
func Expand(tmpl string, vars map[string]any) (string, error) {
	var b strings.Builder
	b.Grow(len(tmpl))

	for i := 0; i < len(tmpl); i++ {
		switch c := tmpl[i]; c {
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(tmpl[i+1:], '}')
			if end < 0 {
				return "", &SyntaxError{Pos: i, Detail: "unclosed '{'"}
			}
			key := tmpl[i+1 : i+1+end]
			if key == "" {
				return "", &SyntaxError{Pos: i, Detail: "empty placeholder"}
			}
			if strings.ContainsRune(key, '{') {
				return "", &SyntaxError{Pos: i, Detail: "'{' inside placeholder"}
			}
			value, ok := vars[key]
			if !ok {
				return "", &KeyError{Key: key}
			}
			b.WriteString(fmt.Sprint(value))
			i += end + 1
		case '}':
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", &SyntaxError{Pos: i, Detail: "'}' outside placeholder"}
		default:
			b.WriteByte(c)
		}
	}

	return b.String(), nil
}
