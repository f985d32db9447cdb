package mission

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/ossyrian/a3cfg/internal/cfgtext"
)

// WhitelistTag is the statement key of the mission whitelist array.
const WhitelistTag = "missionWhitelist[]"

// Decode reads the missions declared in the "class Missions" block of a
// server config. Every decoded mission is Selected, since its presence in
// the file means it was chosen before. Entries missing a template or a
// difficulty are dropped.
func Decode(lines []string) []Mission {
	missions, _ := decode(lines)
	return missions
}

// decode is Decode that also reports how many partial entries it dropped.
func decode(lines []string) (missions []Mission, dropped int) {
	_, start, ok := lo.FindIndexOf(lines, isMissionsHeader)
	if !ok || strings.Contains(lines[start], "}") {
		return []Mission{}, 0
	}

	missions = []Mission{}
	depth, opened := openDepth(lines, start)

	for i := start + 1; i < len(lines); i++ {
		line := lines[i]

		if depth == 1 && strings.Contains(line, "class Mission") {
			values := entryValues(lines[i:])
			if values["template"] == "" || values["difficulty"] == "" {
				dropped++
			} else {
				difficulty, _ := ParseDifficulty(values["difficulty"])
				missions = append(missions, Mission{
					Name:       values["template"],
					Difficulty: difficulty,
					Selected:   true,
				})
			}
		}

		depth += strings.Count(line, "{") - strings.Count(line, "}")
		if strings.Contains(line, "{") {
			opened = true
		}
		if opened && depth <= 0 {
			break
		}
	}

	return missions, dropped
}

// openDepth returns the brace depth right after the Missions header at
// lines[start]. A header that is not followed by "{" is treated as already
// open, so hand-written blocks missing their opening brace still decode.
func openDepth(lines []string, start int) (depth int, opened bool) {
	if strings.Contains(lines[start], "{") {
		return 1, true
	}
	for _, line := range lines[start+1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "{") {
			return 0, false
		}
		break
	}
	return 1, true
}

func isMissionsHeader(line string) bool {
	line = strings.TrimSpace(line)
	return line == "class Missions" ||
		strings.TrimSpace(strings.TrimSuffix(line, "{")) == "class Missions"
}

// entryValues collects the template and difficulty statements of the
// Mission_N block whose header is lines[0]. It stops at the end of the
// block or once both values are found.
func entryValues(lines []string) map[string]string {
	values := make(map[string]string, 2)
	depth := 0

	for _, line := range lines {
		if depth == 1 {
			parts := strings.Split(line, "=")
			if len(parts) == 2 {
				key := cleanToken(parts[0])
				if (key == "template" || key == "difficulty") && values[key] == "" {
					values[key] = cleanToken(parts[1])
				}
			}
			if len(values) == 2 {
				break
			}
		}

		depth += strings.Count(line, "{") - strings.Count(line, "}")
		if depth <= 0 && strings.Contains(line, "}") {
			break
		}
	}
	return values
}

func cleanToken(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, `"`, "")
	s = strings.ReplaceAll(s, ";", "")
	return strings.TrimSpace(s)
}

// Encode writes the selected missions as a "class Missions" block, one
// Mission_N class per mission numbered from 1 in input order. Missions
// without a difficulty are written as Recruit. It returns "" when nothing
// is selected. The input is not modified.
func Encode(missions []Mission) string {
	selected := lo.Filter(missions, func(m Mission, _ int) bool { return m.Selected })
	if len(selected) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\nclass Missions\n{\n")

	for i, m := range selected {
		if m.Difficulty == None {
			m.Difficulty = Recruit
		}

		fmt.Fprintf(&b, "\tclass Mission_%d\n\t{\n", i+1)
		for _, line := range Schema.Render(&m, 2) {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\t};\n")
	}

	b.WriteString("};\n")
	return b.String()
}

// EncodeWhitelist writes the names of whitelisted missions as a
// missionWhitelist[] statement preceded by a line break. It returns "" when
// no mission is whitelisted.
func EncodeWhitelist(missions []Mission) string {
	names := lo.FilterMap(missions, func(m Mission, _ int) (string, bool) {
		return m.Name, m.Whitelisted
	})
	if len(names) == 0 {
		return ""
	}
	return "\n" + WhitelistTag + " = " + cfgtext.FormatArray(names) + ";"
}
