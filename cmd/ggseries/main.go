// Command ggseries renders custom series scenes to PNG or SVG.
//
// Usage:
//
//	ggseries render scene.yaml --out chart.png
//	ggseries render scene.yaml --out chart.svg --scale 2
//	ggseries demo --out demo.png
//	ggseries backends
//
// Every flag can also be set from the environment with the GGSERIES_ prefix,
// for example GGSERIES_DEBUG=true or GGSERIES_FORMAT=svg.
package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/ggseries"

	_ "github.com/gogpu/ggseries/recording/backends/raster"
	_ "github.com/gogpu/ggseries/recording/backends/svg"
)

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "log every draw pass to stderr")
	rootCmd.PersistentFlags().String("format", "", "output format: png or svg (default from the --out extension)")

	viper.SetEnvPrefix("ggseries")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		slog.Error("failed to bind persistent flags", "err", err)
	}

	rootCmd.AddCommand(renderCmd, demoCmd, backendsCmd)
}

var rootCmd = &cobra.Command{
	Use:   "ggseries",
	Short: "render custom financial series",
	Long:  "ggseries renders band, ribbon, gradient ribbon, trend fill and signal series from YAML scenes.",

	Version: ggseries.Version,

	SilenceUsage: true,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(viper.GetBool("debug"))
	},
}

// setupLogging installs a text logger on stderr. Without debug only
// lifecycle events are logged.
func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	ggseries.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
