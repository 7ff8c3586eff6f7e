package ffmpeg

import (
	"context"
	"fmt"

	"github.com/patrickdmiller/trim-scripts/domain/video"
)

// Trimmer implements video.Trimmer using ffmpeg's select filter
type Trimmer struct {
	ffmpegPath string
	runner     CommandRunner
}

// TrimmerOption is a functional option for configuring Trimmer
type TrimmerOption func(*Trimmer)

// WithFFmpegPath sets a custom ffmpeg executable path
func WithFFmpegPath(path string) TrimmerOption {
	return func(t *Trimmer) {
		t.ffmpegPath = path
	}
}

// WithTrimmerCommandRunner sets a custom command runner (for testing)
func WithTrimmerCommandRunner(runner CommandRunner) TrimmerOption {
	return func(t *Trimmer) {
		t.runner = runner
	}
}

// NewTrimmer creates a new FFmpeg-based trimmer
func NewTrimmer(opts ...TrimmerOption) *Trimmer {
	t := &Trimmer{
		ffmpegPath: "ffmpeg",
		runner:     &ExecCommandRunner{},
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Trim implements video.Trimmer. It keeps only frames whose zero-based index
// falls in the plan's inclusive range, drops audio, and rebases timestamps so
// the first kept frame starts at zero.
func (t *Trimmer) Trim(ctx context.Context, req *video.TrimRequest, plan video.TrimPlan, outputPath string) error {
	// commas inside between() are escaped so the filter parser does not read
	// them as filter separators
	filter := fmt.Sprintf(`select=between(n\,%d\,%d),setpts=PTS-STARTPTS`, plan.StartIndex, plan.LastIndex)

	args := []string{
		"-i", req.SourcePath,
		"-vf", filter,
		"-an", // No audio
		"-y",  // Overwrite output file if it exists
		outputPath,
	}

	if err := t.runner.Run(ctx, t.ffmpegPath, args...); err != nil {
		return fmt.Errorf("ffmpeg trim failed: %w", err)
	}

	return nil
}

// VerifyInstalled checks that ffmpeg is available
func (t *Trimmer) VerifyInstalled(ctx context.Context) error {
	_, err := t.runner.Output(ctx, t.ffmpegPath, "-version")
	if err != nil {
		return fmt.Errorf("ffmpeg not found or not executable: %w", err)
	}
	return nil
}

// Ensure the adapters implement their ports
var (
	_ video.Trimmer = (*Trimmer)(nil)
	_ video.Prober  = (*Prober)(nil)
)
