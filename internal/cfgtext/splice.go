package cfgtext

import "strings"

// RemoveNamedBlock deletes the first assignment starting with tag, from the
// tag through the first "};" after it. Text before the tag and after the
// terminator is left as is. The text is returned unchanged when the tag or
// its terminator cannot be found; blank text yields "".
func RemoveNamedBlock(text, tag string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	start := strings.Index(text, tag)
	if start < 0 {
		return text
	}

	end := strings.Index(text[start:], "};")
	if end < 0 {
		return text
	}

	return text[:start] + text[start+end+2:]
}

// RemoveClassBlock deletes the first top-level "class <name>" block through
// its matching "};" and the line break after it. When the block ends the
// text, the line break before it goes too. The text is returned unchanged
// when no such block exists or its braces do not balance.
func RemoveClassBlock(text, name string) string {
	start, end := findClassBlock(text, name)
	if start < 0 {
		return text
	}

	switch {
	case strings.HasPrefix(text[end:], "\r\n"):
		end += 2
	case strings.HasPrefix(text[end:], "\n"):
		end++
	}

	if strings.TrimSpace(text[end:]) == "" && start > 0 && text[start-1] == '\n' {
		start--
		if start > 0 && text[start-1] == '\r' {
			start--
		}
	}
	return text[:start] + text[end:]
}

func findClassBlock(text, name string) (start, end int) {
	depth := 0
	inQuotes := false

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '"':
			inQuotes = !inQuotes
		case inQuotes:
		case c == '/' && i+1 < len(text) && text[i+1] == '/':
			nl := strings.IndexByte(text[i:], '\n')
			if nl < 0 {
				return -1, -1
			}
			i += nl
		case c == '{':
			depth++
		case c == '}':
			if depth > 0 {
				depth--
			}
		case depth == 0 && classAt(text, i, name):
			open := strings.IndexAny(text[i:], "{;")
			if open < 0 {
				return -1, -1
			}
			if text[i+open] == ';' {
				// forward declaration
				i += open
				continue
			}
			if close := matchBrace(text, i+open); close >= 0 {
				end = close + 1
				for end < len(text) && (text[end] == ' ' || text[end] == '\t') {
					end++
				}
				if end < len(text) && text[end] == ';' {
					end++
				}
				return i, end
			}
			return -1, -1
		}
	}
	return -1, -1
}

// classAt reports whether "class <name>" starts at text[i].
func classAt(text string, i int, name string) bool {
	if i > 0 && !strings.ContainsRune(" \t\r\n;}", rune(text[i-1])) {
		return false
	}
	rest, ok := strings.CutPrefix(text[i:], "class")
	if !ok || rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
		return false
	}
	rest = strings.TrimLeft(rest, " \t")
	rest, ok = strings.CutPrefix(rest, name)
	if !ok {
		return false
	}
	return rest == "" || strings.ContainsRune(" \t\r\n{:", rune(rest[0]))
}

// matchBrace returns the index of the brace closing the one at open.
func matchBrace(text string, open int) int {
	depth := 0
	inQuotes := false
	for k := open; k < len(text); k++ {
		switch c := text[k]; {
		case c == '"':
			inQuotes = !inQuotes
		case inQuotes:
		case c == '/' && k+1 < len(text) && text[k+1] == '/':
			nl := strings.IndexByte(text[k:], '\n')
			if nl < 0 {
				return -1
			}
			k += nl
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return k
			}
		}
	}
	return -1
}
