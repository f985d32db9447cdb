package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ossyrian/a3cfg/internal/cfgtext"
	"github.com/ossyrian/a3cfg/internal/config"
	"github.com/ossyrian/a3cfg/internal/configfile"
	"github.com/ossyrian/a3cfg/internal/content"
	"github.com/ossyrian/a3cfg/internal/mission"
)

var (
	errNoSelection         = errors.New("no selection given (use --selection)")
	errNoInstalledMissions = errors.New("no installed missions found")
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Write a mission selection into server.cfg",
	Long: `save reads a TOML selection file and writes the selected missions and the
mission whitelist into server.cfg. The previous Missions block is replaced
unless --append is set. The old file is kept next to it with a .bak suffix.

When --game-dir is set, missions that are no longer installed are left out,
and finding no installed missions at all is an error. A selection with
nothing selected or whitelisted leaves server.cfg unchanged.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return saveMissions(appFs, cmd.OutOrStdout(), cfg)
	},
}

func init() {
	saveCmd.Flags().StringP("selection", "s", "", "selection file to save (required)")
	saveCmd.Flags().Bool("append", false, "keep the existing Missions block and append the new one")
	saveCmd.Flags().Bool("dry-run", false, "print the resulting server.cfg instead of writing it")
}

// saveMissions runs the save command
func saveMissions(fs afero.Fs, stdout io.Writer, cfg *config.Config) error {
	if cfg.ServerConfig == "" {
		return errNoServerConfig
	}
	if cfg.Selection == "" {
		return errNoSelection
	}

	missions, err := readSelection(fs, cfg.Selection)
	if err != nil {
		return err
	}

	file, err := configfile.Read(fs, cfg.ServerConfig)
	if err != nil {
		return err
	}

	logger := slog.Default().With("server_config", cfg.ServerConfig)
	store := content.NewStore(fs, logger)

	if cfg.GameDir != "" {
		installed := store.GetAll(cfg.GameDir)
		if len(installed) == 0 {
			return fmt.Errorf("%w in %s", errNoInstalledMissions, filepath.Join(cfg.GameDir, content.MissionsDir))
		}
		missing := lo.CountBy(missions, func(m mission.Mission) bool {
			return !lo.ContainsBy(installed, func(i mission.Mission) bool { return i.Name == m.Name })
		})
		if missing > 0 {
			logger.Warn("skipping missions that are not installed", "count", missing)
		}
		missions = mission.Merge(installed, missions)
	}

	// an empty rotation never wipes the one already in the file
	if !lo.SomeBy(missions, func(m mission.Mission) bool { return m.Selected || m.Whitelisted }) {
		logger.Warn("nothing selected or whitelisted, leaving server config unchanged", "selection", cfg.Selection)
		return nil
	}

	text := file.Text
	if !cfg.Append {
		text = cfgtext.RemoveClassBlock(text, "Missions")
	}
	text = trimTrailingBlankLines(cfgtext.RemoveNamedBlock(text, mission.WhitelistTag))

	text = mission.NewDirector(store, logger).SaveMissions(missions, text)

	if cfg.DryRun {
		_, err := io.WriteString(stdout, text)
		return err
	}

	if err := configfile.Write(fs, cfg.ServerConfig, text); err != nil {
		return err
	}
	logger.Info("saved missions", "missions", len(missions))

	return nil
}

// trimTrailingBlankLines leaves text ending in exactly one line break.
func trimTrailingBlankLines(text string) string {
	text = strings.TrimRight(text, " \t\r\n")
	if text == "" {
		return ""
	}
	return text + "\n"
}
