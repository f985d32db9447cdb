package mission

import (
	"log/slog"

	"github.com/ossyrian/a3cfg/internal/cfgtext"
)

// Discoverer lists the missions installed under a game directory. It must
// return an empty list, not fail, when the directory cannot be read.
type Discoverer interface {
	GetAll(root string) []Mission
}

// Director loads the mission rotation from a server config and writes it
// back.
type Director struct {
	discoverer Discoverer
	logger     *slog.Logger
}

// NewDirector creates a Director. A nil logger falls back to slog.Default.
func NewDirector(discoverer Discoverer, logger *slog.Logger) *Director {
	if logger == nil {
		logger = slog.Default()
	}
	return &Director{
		discoverer: discoverer,
		logger:     logger,
	}
}

// GetMissions scans root for installed missions and marks the ones declared
// in configLines as Selected, with their configured difficulty.
func (d *Director) GetMissions(configLines []string, root string) []Mission {
	configured, dropped := decode(configLines)
	if dropped > 0 {
		d.logger.Debug("dropped incomplete mission entries", "count", dropped)
	}

	discovered := d.discoverer.GetAll(root)

	missions := applyConfig(discovered, configured)

	d.logger.Info("loaded missions",
		"root", root,
		"discovered", len(discovered),
		"configured", len(configured),
	)

	return missions
}

// SaveMissions appends the selected missions and the whitelist to
// fileContent, replacing any existing missionWhitelist[] statement. An
// empty mission list leaves fileContent untouched.
//
// The "class Missions" block is appended, never replaced. Callers that
// re-save a file should strip the previous block first with
// cfgtext.RemoveClassBlock.
func (d *Director) SaveMissions(missions []Mission, fileContent string) string {
	if len(missions) == 0 {
		return fileContent
	}

	playable := Encode(missions)
	whitelist := EncodeWhitelist(missions)
	fileContent = cfgtext.RemoveNamedBlock(fileContent, WhitelistTag)

	d.logger.Debug("saving missions",
		"missions", len(missions),
		"has_playable", playable != "",
		"has_whitelist", whitelist != "",
	)

	return fileContent + whitelist + playable
}
