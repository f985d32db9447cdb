// Package content finds the missions installed on an Arma 3 server.
package content

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/ossyrian/a3cfg/internal/mission"
)

// MissionsDir is the folder, relative to the game root, the dedicated
// server loads multiplayer missions from.
const MissionsDir = "MPMissions"

// missionFile marks an unpacked mission folder.
const missionFile = "mission.sqm"

// Store lists installed missions. It implements mission.Discoverer.
type Store struct {
	fs     afero.Fs
	logger *slog.Logger
}

// NewStore creates a Store reading from fs. A nil logger falls back to
// slog.Default.
func NewStore(fs afero.Fs, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{fs: fs, logger: logger}
}

// GetAll returns one mission per packed mission (name.world.pbo) or unpacked
// mission folder (name.world/mission.sqm) in root/MPMissions, sorted by
// name. A missing or unreadable folder yields an empty list.
func (s *Store) GetAll(root string) []mission.Mission {
	missions := []mission.Mission{}
	if strings.TrimSpace(root) == "" {
		return missions
	}

	dir := filepath.Join(root, MissionsDir)
	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		s.logger.Warn("could not read missions folder", "dir", dir, "error", err)
		return missions
	}

	for _, e := range entries {
		name := e.Name()

		if e.IsDir() {
			ok, err := afero.Exists(s.fs, filepath.Join(dir, name, missionFile))
			if err != nil || !ok {
				s.logger.Debug("skipping folder without mission file", "folder", name)
				continue
			}
			missions = append(missions, mission.Mission{Name: name})
			continue
		}

		ext := filepath.Ext(name)
		if !strings.EqualFold(ext, ".pbo") {
			continue
		}
		missions = append(missions, mission.Mission{Name: strings.TrimSuffix(name, ext)})
	}

	s.logger.Debug("scanned missions folder", "dir", dir, "found", len(missions))

	return missions
}
