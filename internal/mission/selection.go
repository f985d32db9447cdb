package mission

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
)

// selection is the on-disk shape of a selection file:
//
//	[[missions]]
//	name = "co10_Escape.Altis"
//	difficulty = "veteran"
//	selected = true
//	whitelisted = false
type selection struct {
	Missions []Mission `toml:"missions"`
}

// WriteSelection writes missions as a TOML selection file.
func WriteSelection(w io.Writer, missions []Mission) error {
	if err := toml.NewEncoder(w).Encode(selection{Missions: missions}); err != nil {
		return fmt.Errorf("failed to encode selection: %w", err)
	}
	return nil
}

// ReadSelection reads a TOML selection file. Unknown keys are rejected so
// typos do not silently drop a setting.
func ReadSelection(r io.Reader) ([]Mission, error) {
	var s selection
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode selection: %w", err)
	}
	if s.Missions == nil {
		s.Missions = []Mission{}
	}
	return s.Missions, nil
}
