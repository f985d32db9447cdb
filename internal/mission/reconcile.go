package mission

import (
	"slices"

	"github.com/samber/lo"
)

// Merge carries user intent from stored onto a fresh content scan.
//
// The discovered list decides which missions exist and in what order. For
// each stored mission, the first discovered mission with the same name takes
// its Selected, Whitelisted and Difficulty. When stored holds the same name
// more than once, the first one wins. Stored missions that were not
// discovered are dropped. Neither input is modified.
func Merge(discovered, stored []Mission) []Mission {
	merged := slices.Clone(discovered)
	applied := make(map[string]bool, len(stored))

	for _, s := range stored {
		if applied[s.Name] {
			continue
		}
		_, i, ok := lo.FindIndexOf(merged, func(m Mission) bool { return m.Name == s.Name })
		if !ok {
			continue
		}
		applied[s.Name] = true

		merged[i].Selected = s.Selected
		merged[i].Whitelisted = s.Whitelisted
		merged[i].Difficulty = s.Difficulty
	}

	return merged
}

// applyConfig marks every discovered mission that is declared in the config
// as Selected and takes the configured difficulty. It is the one-way
// override used when loading a server.cfg.
func applyConfig(discovered, configured []Mission) []Mission {
	out := slices.Clone(discovered)
	for i := range out {
		c, ok := lo.Find(configured, func(m Mission) bool { return m.Name == out[i].Name })
		if !ok {
			continue
		}
		out[i].Selected = true
		out[i].Difficulty = c.Difficulty
	}
	return out
}

// ApplyWhitelist marks the missions named in the server.cfg
// missionWhitelist[] array as Whitelisted. Other missions are unchanged.
func ApplyWhitelist(missions []Mission, names []string) []Mission {
	out := slices.Clone(missions)
	for i := range out {
		if lo.Contains(names, out[i].Name) {
			out[i].Whitelisted = true
		}
	}
	return out
}
