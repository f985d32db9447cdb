package cfgtext

import (
	"slices"
	"strings"
)

// Statement is one "key = value;" assignment found in a config file.
type Statement struct {
	// Path is the chain of enclosing class names, outermost first.
	Path []string
	Key  string
	// Value is the raw value with surrounding whitespace and the trailing
	// semicolon removed. Quotes are kept.
	Value string
	// Line is the 1-based line the statement starts on.
	Line int
}

// Scan walks lines and returns every statement in document order, tracking
// the class blocks each statement is nested in. Multi-line array literals
// are joined into a single statement. Lines that are neither statements nor
// class boundaries are skipped.
func Scan(lines []string) []Statement {
	var (
		stmts []Statement
		path  []string
	)

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(stripComment(lines[i]))
		if line == "" || line == "{" {
			continue
		}

		if name, rest, ok := classHeader(line); ok {
			if strings.HasPrefix(rest, ";") {
				// forward declaration, no body
				continue
			}
			path = append(path, name)
			if strings.Contains(rest, "}") {
				path = path[:len(path)-1]
			}
			continue
		}

		if strings.HasPrefix(line, "}") {
			if len(path) > 0 {
				path = path[:len(path)-1]
			}
			continue
		}

		eq := strings.Index(line, "=")
		if eq < 0 {
			continue
		}

		start := i
		key := strings.TrimSpace(line[:eq])
		value := strings.TrimSpace(line[eq+1:])

		if value == "" {
			if j, next, ok := openingBrace(lines, i+1); ok {
				i = j
				value = next
			}
		}

		if strings.HasPrefix(value, "{") && !strings.Contains(value, "}") {
			var b strings.Builder
			b.WriteString(value)
			for i+1 < len(lines) {
				i++
				next := strings.TrimSpace(stripComment(lines[i]))
				b.WriteString("\n")
				b.WriteString(next)
				if strings.Contains(next, "}") {
					break
				}
			}
			value = b.String()
		}

		value = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), ";"))

		var stmtPath []string
		if len(path) > 0 {
			stmtPath = slices.Clone(path)
		}
		stmts = append(stmts, Statement{
			Path:  stmtPath,
			Key:   key,
			Value: value,
			Line:  start + 1,
		})
	}

	return stmts
}

// openingBrace finds the first non-blank line from start and reports it
// when it opens an array literal, as in
//
//	motd[] =
//	{
func openingBrace(lines []string, start int) (int, string, bool) {
	for j := start; j < len(lines); j++ {
		next := strings.TrimSpace(stripComment(lines[j]))
		if next == "" {
			continue
		}
		return j, next, strings.HasPrefix(next, "{")
	}
	return 0, "", false
}

// classHeader splits "class Name: Base {" into the class name and whatever
// follows the name and optional base class.
func classHeader(line string) (name, rest string, ok bool) {
	after, found := strings.CutPrefix(line, "class")
	if !found || after == "" || (after[0] != ' ' && after[0] != '\t') {
		return "", "", false
	}
	after = strings.TrimSpace(after)

	end := strings.IndexAny(after, " \t{:;")
	if end < 0 {
		return after, "", after != ""
	}
	name = after[:end]
	rest = strings.TrimSpace(after[end:])
	if strings.HasPrefix(rest, ":") {
		// skip the base class name
		rest = strings.TrimSpace(rest[1:])
		if j := strings.IndexAny(rest, " \t{;"); j >= 0 {
			rest = strings.TrimSpace(rest[j:])
		} else {
			rest = ""
		}
	}
	return name, rest, name != ""
}

// stripComment removes a trailing // comment that is not inside a string.
func stripComment(line string) string {
	inQuotes := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inQuotes = !inQuotes
		case '/':
			if !inQuotes && i+1 < len(line) && line[i+1] == '/' {
				return line[:i]
			}
		}
	}
	return line
}
