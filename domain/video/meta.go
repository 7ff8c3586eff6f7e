package video

import (
	"fmt"
	"strconv"
	"strings"
)

// VideoMeta holds the frame-level metadata of a single video file, produced
// once per file by a Prober and discarded after planning
type VideoMeta struct {
	FrameRate   float64
	TotalFrames int
}

// Validate checks that the metadata is usable for trim planning
func (m VideoMeta) Validate() error {
	if m.FrameRate <= 0 {
		return fmt.Errorf("frame rate must be positive, got %g", m.FrameRate)
	}

	if m.TotalFrames <= 0 {
		return fmt.Errorf("total frames must be positive, got %d", m.TotalFrames)
	}

	return nil
}

// Duration returns the video duration in seconds
func (m VideoMeta) Duration() float64 {
	return float64(m.TotalFrames) / m.FrameRate
}

// ParseFrameRate parses an ffprobe-style frame rate, either a plain decimal
// ("25") or a rational ("30000/1001")
func ParseFrameRate(s string) (float64, error) {
	s = strings.TrimSpace(s)

	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid frame rate %q: %w", s, err)
		}
		d, err := strconv.ParseFloat(den, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid frame rate %q: %w", s, err)
		}
		if d == 0 {
			return 0, fmt.Errorf("invalid frame rate %q: zero denominator", s)
		}
		if n <= 0 {
			return 0, fmt.Errorf("invalid frame rate %q: must be positive", s)
		}
		return n / d, nil
	}

	rate, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid frame rate %q: %w", s, err)
	}
	if rate <= 0 {
		return 0, fmt.Errorf("invalid frame rate %q: must be positive", s)
	}

	return rate, nil
}
