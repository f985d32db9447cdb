package cfgtext

import (
	"errors"
	"strings"
	"unicode"
)

// FormatArray renders values as an array literal:
//
//	{
//		"first"
//		,"second"
//	}
//
// Whitespace other than plain spaces and any double quotes are removed from
// each element. It returns "" when there is nothing to write.
func FormatArray(values []string) string {
	if len(values) == 0 || (len(values) == 1 && values[0] == "") {
		return ""
	}

	items := make([]string, len(values))
	for i, v := range values {
		items[i] = `"` + cleanElement(v) + `"`
	}
	items[0] = "\t" + items[0]

	return "{\n" + strings.Join(items, "\n\t,") + "\n}"
}

func cleanElement(v string) string {
	v = strings.Map(func(r rune) rune {
		if r == '"' || (unicode.IsSpace(r) && r != ' ') {
			return -1
		}
		return r
	}, v)

	if strings.TrimSpace(v) == "" {
		v = strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, v)
	}
	return v
}

// ParseArray reads an array literal such as {"a", "b"} into its elements.
// Elements may be quoted or bare; empty slots are skipped.
func ParseArray(literal string) ([]string, error) {
	literal = strings.TrimSpace(literal)
	if !strings.HasPrefix(literal, "{") || !strings.HasSuffix(literal, "}") {
		return nil, errors.New("array must be enclosed in braces")
	}
	body := literal[1 : len(literal)-1]

	values := []string{}
	var (
		cur      strings.Builder
		inQuotes bool
	)
	flush := func() {
		item := strings.TrimSpace(cur.String())
		cur.Reset()
		if item == "" {
			return
		}
		values = append(values, unquote(item))
	}

	for _, r := range body {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			cur.WriteRune(r)
		case r == ',' && !inQuotes:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	if inQuotes {
		return nil, errors.New("unterminated string in array")
	}
	flush()

	return values, nil
}

// unquote strips one pair of surrounding double quotes, if present.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
