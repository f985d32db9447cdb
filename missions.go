package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ossyrian/a3cfg/internal/config"
	"github.com/ossyrian/a3cfg/internal/configfile"
	"github.com/ossyrian/a3cfg/internal/content"
	"github.com/ossyrian/a3cfg/internal/mission"
	"github.com/ossyrian/a3cfg/internal/serverconfig"
)

var errNoServerConfig = errors.New("no server config given (use --server-config)")

var missionsCmd = &cobra.Command{
	Use:   "missions",
	Short: "List installed missions and their state in server.cfg",
	Long: `missions scans the MPMissions folder of the game directory and marks the
missions declared in server.cfg as selected, with their configured difficulty
and whitelist state. The result is written as a TOML selection file that the
save command reads back.

If --selection points to an earlier selection, its choices are carried over
onto the fresh scan instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listMissions(appFs, cmd.OutOrStdout(), cfg)
	},
}

func init() {
	missionsCmd.Flags().StringP("output", "o", "", "path to write the selection to (default stdout)")
	missionsCmd.Flags().StringP("selection", "s", "", "earlier selection to carry choices over from")
}

// listMissions runs the missions command
func listMissions(fs afero.Fs, stdout io.Writer, cfg *config.Config) error {
	if cfg.ServerConfig == "" {
		return errNoServerConfig
	}

	file, err := configfile.Read(fs, cfg.ServerConfig)
	if err != nil {
		return err
	}
	lines := file.Lines()

	server, err := serverconfig.ServerSchema.Parse(lines)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", cfg.ServerConfig, err)
	}

	logger := slog.Default().With("server_config", cfg.ServerConfig)
	director := mission.NewDirector(content.NewStore(fs, logger), logger)

	missions := director.GetMissions(lines, cfg.GameDir)
	missions = mission.ApplyWhitelist(missions, server.MissionWhitelist)

	if cfg.Selection != "" {
		stored, err := readSelection(fs, cfg.Selection)
		if err != nil {
			return err
		}
		missions = mission.Merge(missions, stored)
	}

	var buf bytes.Buffer
	if err := mission.WriteSelection(&buf, missions); err != nil {
		return err
	}

	if cfg.Output == "" {
		_, err := stdout.Write(buf.Bytes())
		return err
	}

	if err := afero.WriteFile(fs, cfg.Output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write selection: %w", err)
	}
	slog.Info("wrote selection", "output", cfg.Output, "missions", len(missions))

	return nil
}

func readSelection(fs afero.Fs, path string) ([]mission.Mission, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open selection: %w", err)
	}
	defer f.Close()

	return mission.ReadSelection(f)
}
