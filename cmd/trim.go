package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	appbatch "github.com/patrickdmiller/trim-scripts/application/batch"
	appvideo "github.com/patrickdmiller/trim-scripts/application/video"
	"github.com/patrickdmiller/trim-scripts/domain/video"
	"github.com/patrickdmiller/trim-scripts/infrastructure/ffmpeg"
	"github.com/patrickdmiller/trim-scripts/infrastructure/filesystem"

	"github.com/spf13/cobra"
)

var trimCmd = &cobra.Command{
	Use:   "trim <input_file_or_directory> <frames_from_start> <frames_from_end>",
	Short: "Trim frames from the start and end of one or more videos",
	Long: `Trim the given number of frames from the start and end of a video.

When the input is a directory, every video file in it (matching the
configured extension, sorted by name) is trimmed in turn. A failure on one
file is reported but does not stop the rest of the batch, and the exit code
stays zero as long as the batch itself was dispatched; only single-file runs
exit non-zero on a pipeline failure.

Outputs are written next to their inputs (or into the configured output
directory) as {name}_trim_s_{start}_e_{end}{ext}, so re-running with the same
parameters overwrites the same file.

Example:
  trim-scripts trim render.mp4 10 15
  trim-scripts trim ./renders 10 15`,
	Args: cobra.ExactArgs(3),
	RunE: runTrim,
}

func init() {
	rootCmd.AddCommand(trimCmd)
}

func runTrim(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	framesFromStart, err := parseFrameCount(args[1], "frames_from_start")
	if err != nil {
		return err
	}
	framesFromEnd, err := parseFrameCount(args[2], "frames_from_end")
	if err != nil {
		return err
	}

	// Create dependencies using production implementations
	prober := ffmpeg.NewProber(ffmpeg.WithFFprobePath(cfg.Tools.FFprobePath))
	trimmer := ffmpeg.NewTrimmer(ffmpeg.WithFFmpegPath(cfg.Tools.FFmpegPath))
	fileChecker := filesystem.NewChecker()
	fileFinder := filesystem.NewFinder()

	return RunTrimWithDependencies(
		cmd.Context(),
		prober,
		trimmer,
		fileChecker,
		fileFinder,
		cfg.Paths.OutputDirectory,
		cfg.Video.Extension,
		args[0],
		framesFromStart,
		framesFromEnd,
		os.Stdout,
	)
}

// OutputWriter allows capturing output in tests
type OutputWriter interface {
	Write(p []byte) (n int, err error)
}

// RunTrimWithDependencies runs the trim command with injected dependencies (for testing)
func RunTrimWithDependencies(
	ctx context.Context,
	prober video.Prober,
	trimmer video.Trimmer,
	fileChecker video.FileChecker,
	fileFinder appbatch.FileFinder,
	outputDir string,
	extension string,
	inputPath string,
	framesFromStart int,
	framesFromEnd int,
	output OutputWriter,
) error {
	// Verify the external tools are available before touching any file
	if err := verifyTools(ctx, prober, trimmer); err != nil {
		return err
	}

	pipeline := appvideo.NewTrimService(prober, trimmer, fileChecker, outputDir)
	batch := appbatch.NewService(pipeline, fileChecker, fileFinder, extension, output)

	summary, err := batch.Run(ctx, inputPath, framesFromStart, framesFromEnd)
	if err != nil {
		return err
	}

	// Single-file runs surface the pipeline failure; batch runs report it in
	// the summary and keep a zero exit code
	if !summary.BatchMode && summary.Failed > 0 {
		return summary.Results[0].Err
	}

	return nil
}

// verifiable is implemented by adapters that can check their external tool
type verifiable interface {
	VerifyInstalled(ctx context.Context) error
}

func verifyTools(ctx context.Context, deps ...any) error {
	for _, dep := range deps {
		v, ok := dep.(verifiable)
		if !ok {
			continue
		}
		verifyCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := v.VerifyInstalled(verifyCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("dependency check failed: %w", err)
		}
	}
	return nil
}

func parseFrameCount(arg, name string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, arg)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must be >= 0, got %d", name, n)
	}
	return n, nil
}
