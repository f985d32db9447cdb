package main

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ossyrian/a3cfg/internal/cfgtext"
	"github.com/ossyrian/a3cfg/internal/config"
	"github.com/ossyrian/a3cfg/internal/configfile"
	"github.com/ossyrian/a3cfg/internal/serverconfig"
)

var renderCmd = &cobra.Command{
	Use:       "render {server|profile}",
	Short:     "Print a config file as a3cfg would write it",
	Long:      `render parses server.cfg or the server profile and prints the normalized form, with every known setting and its default filled in.`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"server", "profile"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return render(appFs, cmd.OutOrStdout(), cfg, args[0])
	},
}

// render runs the render command for kind "server" or "profile"
func render(fs afero.Fs, stdout io.Writer, cfg *config.Config, kind string) error {
	switch kind {
	case "server":
		return renderFile(fs, stdout, cfg.ServerConfig, "--server-config", serverconfig.ServerSchema)
	case "profile":
		return renderFile(fs, stdout, cfg.Profile, "--profile", serverconfig.ProfileSchema)
	default:
		return fmt.Errorf("unknown file kind %q", kind)
	}
}

func renderFile[T any](fs afero.Fs, stdout io.Writer, path, flag string, schema *cfgtext.Schema[T]) error {
	if path == "" {
		return fmt.Errorf("no file given (use %s)", flag)
	}

	file, err := configfile.Read(fs, path)
	if err != nil {
		return err
	}

	m, err := schema.Parse(file.Lines())
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	_, err = io.WriteString(stdout, schema.Serialize(m))
	return err
}
