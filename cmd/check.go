package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickdmiller/trim-scripts/infrastructure/ffmpeg"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that the required external tools are available",
	Long: `Check that ffprobe and ffmpeg (at their configured paths) can be
executed. Exits non-zero if any required tool is missing.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	prober := ffmpeg.NewProber(ffmpeg.WithFFprobePath(cfg.Tools.FFprobePath))
	trimmer := ffmpeg.NewTrimmer(ffmpeg.WithFFmpegPath(cfg.Tools.FFmpegPath))

	tools := []struct {
		name string
		path string
		dep  verifiable
	}{
		{"ffprobe", cfg.Tools.FFprobePath, prober},
		{"ffmpeg", cfg.Tools.FFmpegPath, trimmer},
	}

	var missing int
	for _, tool := range tools {
		verifyCtx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		err := tool.dep.VerifyInstalled(verifyCtx)
		cancel()

		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s MISSING (%s): %v\n", tool.name, tool.path, err)
			missing++
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-8s OK (%s)\n", tool.name, tool.path)
	}

	if missing > 0 {
		return fmt.Errorf("%d required tool(s) missing", missing)
	}

	return nil
}
