// invaders is a fixed-timestep Space Invaders simulation with a software
// sprite rasterizer.
//
// Usage:
//
//	invaders play                 - Play in an OpenGL window
//	invaders play --backend term  - Play in the terminal
//	invaders snapshot             - Run headless and write a PNG frame
//
// Global flags:
//
//	--config <path>     - TOML configuration file
//	--log-level <level> - Override logging.level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "invaders",
	Short:         "Space Invaders on a 224x256 software raster",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to TOML config (defaults built in)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(snapshotCmd)
}
