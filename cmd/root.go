package cmd

import (
	"fmt"
	"os"

	"github.com/patrickdmiller/trim-scripts/infrastructure/config"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "trim-scripts",
	Short: "Trim frames from videos to produce seamless loops",
	Long: `trim-scripts removes a fixed number of frames from the start and end of
video files, producing re-timed outputs that loop cleanly. It drives
ffprobe for frame metadata and ffmpeg for the actual trimming.

A single file or a whole directory of videos can be processed:

  trim-scripts trim render.mp4 10 15
  trim-scripts trim ./renders 10 15`,
}

// Execute runs the root command and exits non-zero on any error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config/config.yaml)")
}

func initConfig() {
	if cfgFile == "" {
		cfgFile = "config/config.yaml"
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		// The config file is optional; defaults cover every setting
		cfg = config.Default()
	}
}

// GetConfig returns the loaded configuration
func GetConfig() *config.Config {
	return cfg
}
