package ffmpeg

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/patrickdmiller/trim-scripts/domain/video"
)

// Prober implements video.Prober using ffprobe
type Prober struct {
	ffprobePath string
	runner      CommandRunner
}

// ProberOption is a functional option for configuring Prober
type ProberOption func(*Prober)

// WithFFprobePath sets a custom ffprobe executable path
func WithFFprobePath(path string) ProberOption {
	return func(p *Prober) {
		p.ffprobePath = path
	}
}

// WithProberCommandRunner sets a custom command runner (for testing)
func WithProberCommandRunner(runner CommandRunner) ProberOption {
	return func(p *Prober) {
		p.runner = runner
	}
}

// NewProber creates a new ffprobe-based prober
func NewProber(opts ...ProberOption) *Prober {
	p := &Prober{
		ffprobePath: "ffprobe",
		runner:      &ExecCommandRunner{},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Probe implements video.Prober with a single ffprobe JSON call
func (p *Prober) Probe(ctx context.Context, path string) (video.VideoMeta, error) {
	out, err := p.runner.Output(ctx, p.ffprobePath,
		"-v", "quiet",
		"-print_format", "json",
		"-show_streams", "-show_format",
		path,
	)
	if err != nil {
		return video.VideoMeta{}, fmt.Errorf("ffprobe %q: %w", path, err)
	}

	meta, err := ParseProbeOutput(out)
	if err != nil {
		return video.VideoMeta{}, fmt.Errorf("ffprobe %q: %w", path, err)
	}

	return meta, nil
}

// VerifyInstalled checks that ffprobe is available
func (p *Prober) VerifyInstalled(ctx context.Context) error {
	_, err := p.runner.Output(ctx, p.ffprobePath, "-version")
	if err != nil {
		return fmt.Errorf("ffprobe not found or not executable: %w", err)
	}
	return nil
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Streams []ffprobeStream `json:"streams"`
	Format  ffprobeFormat   `json:"format"`
}

type ffprobeStream struct {
	CodecType    string         `json:"codec_type"`
	AvgFrameRate string         `json:"avg_frame_rate"`
	RFrameRate   string         `json:"r_frame_rate"`
	NbFrames     string         `json:"nb_frames"`
	Duration     string         `json:"duration"`
	Disposition  map[string]int `json:"disposition"`
}

type ffprobeFormat struct {
	Duration string `json:"duration"`
}

// ParseProbeOutput converts raw ffprobe JSON output into a VideoMeta.
// Exported for testing without a real ffprobe binary.
func ParseProbeOutput(data []byte) (video.VideoMeta, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return video.VideoMeta{}, fmt.Errorf("parse ffprobe JSON: %w", err)
	}

	stream := primaryVideoStream(raw.Streams)
	if stream == nil {
		return video.VideoMeta{}, video.ErrNoVideoStream
	}

	rate, err := frameRate(stream)
	if err != nil {
		return video.VideoMeta{}, err
	}

	total, err := totalFrames(stream, &raw.Format, rate)
	if err != nil {
		return video.VideoMeta{}, err
	}

	return video.VideoMeta{FrameRate: rate, TotalFrames: total}, nil
}

// primaryVideoStream returns the first video stream that is not an attached
// picture (cover art), or nil
func primaryVideoStream(streams []ffprobeStream) *ffprobeStream {
	for i := range streams {
		s := &streams[i]
		if s.CodecType == "video" && s.Disposition["attached_pic"] == 0 {
			return s
		}
	}
	return nil
}

func frameRate(s *ffprobeStream) (float64, error) {
	rate, err := video.ParseFrameRate(s.AvgFrameRate)
	if err == nil {
		return rate, nil
	}

	// avg_frame_rate is 0/0 for some containers; fall back to r_frame_rate
	rate, err = video.ParseFrameRate(s.RFrameRate)
	if err != nil {
		return 0, fmt.Errorf("frame rate could not be determined: %w", err)
	}

	return rate, nil
}

// totalFrames prefers the container's declared frame count and falls back to
// duration times frame rate when the container does not carry one
func totalFrames(s *ffprobeStream, f *ffprobeFormat, rate float64) (int, error) {
	if n, err := strconv.Atoi(s.NbFrames); err == nil && n > 0 {
		return n, nil
	}

	duration := s.Duration
	if duration == "" {
		duration = f.Duration
	}

	seconds, err := strconv.ParseFloat(duration, 64)
	if err != nil || seconds <= 0 {
		return 0, fmt.Errorf("frame count could not be determined")
	}

	return int(math.Round(seconds * rate)), nil
}
