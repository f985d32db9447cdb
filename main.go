package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ossyrian/a3cfg/internal/config"
	"github.com/ossyrian/a3cfg/internal/logging"
)

var (
	cfgFile string
	cfg     *config.Config

	// appFs is the file system every command reads and writes through
	appFs afero.Fs = afero.NewOsFs()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "a3cfg",
	Short: "Read and edit Arma 3 dedicated server config files",
	Long: `a3cfg reads server.cfg and server profiles, lists the missions installed
on the server and writes the mission rotation back into server.cfg.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to config file")

	// server files
	rootCmd.PersistentFlags().StringP("server-config", "c", "", "path to server.cfg")
	rootCmd.PersistentFlags().StringP("profile", "p", "", "path to the server profile (*.Arma3Profile)")
	rootCmd.PersistentFlags().StringP("game-dir", "g", "", "Arma 3 server directory containing MPMissions")

	// other opts
	rootCmd.PersistentFlags().String("log-level", "info", "log level (trace, debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().String("log-output-dir", "", "directory to write log files (if set, logs are written to both stderr and file)")

	viper.BindPFlag("server_config", rootCmd.PersistentFlags().Lookup("server-config"))
	viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
	viper.BindPFlag("game_dir", rootCmd.PersistentFlags().Lookup("game-dir"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_output_dir", rootCmd.PersistentFlags().Lookup("log-output-dir"))

	rootCmd.AddCommand(missionsCmd, saveCmd, renderCmd)
}

// initConfig reads in config file and environment variables if set
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "a3cfg"))
		}
		viper.AddConfigPath("/etc/a3cfg")
		viper.SetConfigName("config")
		viper.SetConfigType("toml")
	}

	viper.SetEnvPrefix("A3CFG")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig unmarshals the merged flags, env and config file into cfg and
// sets up logging before any subcommand runs
func loadConfig(cmd *cobra.Command, args []string) error {
	bindCommandFlags(cmd)

	cfg = &config.Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := logging.Setup(cfg.LogLevel, cfg.LogOutputDir); err != nil {
		return fmt.Errorf("could not set up logging: %w", err)
	}

	return nil
}

// bindCommandFlags binds the flags of the running subcommand. Subcommands
// share keys such as "selection", so they are bound only once the command
// to run is known.
func bindCommandFlags(cmd *cobra.Command) {
	cmd.LocalNonPersistentFlags().VisitAll(func(f *pflag.Flag) {
		viper.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
