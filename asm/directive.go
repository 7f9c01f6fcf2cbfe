package asm

import (
	"fmt"
	"strings"
)

// directiveItem is one comma-separated item of a DB/DW argument list:
// either a numeric byte/word value or a quoted string's raw bytes
// (already escape-processed).
type directiveItem struct {
	isString bool
	n        int
	bytes    []byte
}

// parseDirectiveItems splits a DB/DW argument list on top-level commas
// and classifies each item as a string literal or a numeric value.
func parseDirectiveItems(s string) ([]directiveItem, error) {
	var items []directiveItem
	for _, tok := range splitOperands(s) {
		tok = strings.TrimSpace(tok)
		if strings.HasPrefix(tok, `"`) {
			b, err := parseStringLiteral(tok)
			if err != nil {
				return nil, err
			}
			items = append(items, directiveItem{isString: true, bytes: b})
			continue
		}
		n, ok := parseNumber(tok)
		if !ok {
			return nil, fmt.Errorf("malformed numeric literal %q", tok)
		}
		items = append(items, directiveItem{n: n})
	}
	return items, nil
}

// parseStringLiteral decodes a `"..."` token with the escapes §4.5
// defines: \n \t \r \\ \" \0, every other backslash-escaped byte taken
// literally.
func parseStringLiteral(tok string) ([]byte, error) {
	if len(tok) < 2 || tok[0] != '"' || tok[len(tok)-1] != '"' {
		return nil, fmt.Errorf("malformed string literal %q", tok)
	}
	body := tok[1 : len(tok)-1]
	var out []byte
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i == len(body)-1 {
			out = append(out, c)
			continue
		}
		i++
		switch body[i] {
		case 'n':
			out = append(out, '\n')
		case 't':
			out = append(out, '\t')
		case 'r':
			out = append(out, '\r')
		case '\\':
			out = append(out, '\\')
		case '"':
			out = append(out, '"')
		case '0':
			out = append(out, 0)
		default:
			out = append(out, body[i])
		}
	}
	return out, nil
}

// dbSize returns the number of bytes a DB directive's item list emits.
func dbSize(items []directiveItem) int {
	n := 0
	for _, it := range items {
		if it.isString {
			n += len(it.bytes)
		} else {
			n++
		}
	}
	return n
}

// defstrSize returns the byte count DEFSTR emits: the string's content
// bytes plus one NUL terminator.
func defstrSize(content []byte) int {
	return len(content) + 1
}
