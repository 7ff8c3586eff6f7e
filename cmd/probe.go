package cmd

import (
	"context"
	"fmt"

	"github.com/patrickdmiller/trim-scripts/domain/video"
	"github.com/patrickdmiller/trim-scripts/infrastructure/ffmpeg"
	"github.com/patrickdmiller/trim-scripts/infrastructure/filesystem"

	"github.com/spf13/cobra"
)

var probeCmd = &cobra.Command{
	Use:   "probe <video_file>",
	Short: "Show frame metadata for a video file",
	Long: `Probe a video file and print its frame rate, total frame count, and
duration. Useful for choosing trim counts before running trim.

Example:
  trim-scripts probe render.mp4`,
	Args: cobra.ExactArgs(1),
	RunE: runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)
}

func runProbe(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	prober := ffmpeg.NewProber(ffmpeg.WithFFprobePath(cfg.Tools.FFprobePath))
	fileChecker := filesystem.NewChecker()

	return RunProbeWithDependencies(cmd.Context(), prober, fileChecker, args[0], cmd.OutOrStdout())
}

// RunProbeWithDependencies runs the probe command with injected dependencies (for testing)
func RunProbeWithDependencies(ctx context.Context, prober video.Prober, fileChecker video.FileChecker, path string, output OutputWriter) error {
	if !fileChecker.Exists(path) || fileChecker.IsDir(path) {
		return fmt.Errorf("%w: %s", video.ErrFileNotFound, path)
	}

	meta, err := prober.Probe(ctx, path)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "Frame rate:   %.3f fps\n", meta.FrameRate)
	fmt.Fprintf(output, "Total frames: %d\n", meta.TotalFrames)
	fmt.Fprintf(output, "Duration:     %.3fs\n", meta.Duration())
	return nil
}
