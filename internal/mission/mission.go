// Package mission reads, merges and writes the mission rotation of an Arma 3
// server.cfg: the "class Missions" block and the missionWhitelist[] array.
package mission

import (
	"fmt"
	"strings"

	"github.com/ossyrian/a3cfg/internal/cfgtext"
)

// Mission is one playable scenario. Name is the mission template, e.g.
// "co10_Escape.Altis", and identifies the mission across a content scan
// and a config file.
type Mission struct {
	Name       string     `toml:"name"`
	Difficulty Difficulty `toml:"difficulty"`

	// Selected and Whitelisted hold user intent and are never written as
	// mission statements.
	Selected    bool `toml:"selected"`
	Whitelisted bool `toml:"whitelisted"`
}

// Schema maps a Mission onto the statements of one Mission_N class.
// The template keeps its case so names match the installed files; only the
// difficulty is lower-cased.
var Schema = cfgtext.NewSchema(
	cfgtext.String(cfgtext.FieldDescriptor{Key: "template", Quoted: true},
		func(m *Mission) *string { return &m.Name }),
	cfgtext.Enum(cfgtext.FieldDescriptor{Key: "difficulty", Quoted: true, LowerCase: true},
		func(m *Mission) *Difficulty { return &m.Difficulty }, ParseDifficulty),
	cfgtext.Ignored[Mission](), // Selected
	cfgtext.Ignored[Mission](), // Whitelisted
)

// Difficulty is a server difficulty preset.
type Difficulty int

const (
	None Difficulty = iota
	Recruit
	Regular
	Veteran
	Custom
)

var difficultyNames = map[Difficulty]string{
	None:    "None",
	Recruit: "Recruit",
	Regular: "Regular",
	Veteran: "Veteran",
	Custom:  "Custom",
}

// difficultyLiterals maps the lower-case literal used in config files to
// its preset.
var difficultyLiterals = map[string]Difficulty{
	"none":    None,
	"recruit": Recruit,
	"regular": Regular,
	"veteran": Veteran,
	"custom":  Custom,
}

func (d Difficulty) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return "Unknown"
}

// ParseDifficulty looks up a config literal, ignoring case. Unrecognised
// literals yield None and false.
func ParseDifficulty(s string) (Difficulty, bool) {
	d, ok := difficultyLiterals[strings.ToLower(strings.TrimSpace(s))]
	return d, ok
}

func (d Difficulty) MarshalText() ([]byte, error) {
	if _, ok := difficultyNames[d]; !ok {
		return nil, fmt.Errorf("unknown difficulty %d", int(d))
	}
	return []byte(strings.ToLower(d.String())), nil
}

func (d *Difficulty) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = None
		return nil
	}
	v, ok := ParseDifficulty(string(text))
	if !ok {
		return fmt.Errorf("unknown difficulty %q", text)
	}
	*d = v
	return nil
}
