package video

import (
	"fmt"
	"path/filepath"
	"strings"
)

// TrimRequest represents a request to trim a fixed number of frames from the
// start and end of a video
type TrimRequest struct {
	SourcePath      string
	FramesFromStart int
	FramesFromEnd   int
}

// NewTrimRequest creates a new TrimRequest and validates it
func NewTrimRequest(sourcePath string, framesFromStart, framesFromEnd int) (*TrimRequest, error) {
	req := &TrimRequest{
		SourcePath:      sourcePath,
		FramesFromStart: framesFromStart,
		FramesFromEnd:   framesFromEnd,
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	return req, nil
}

// Validate checks that the trim request is valid
func (r *TrimRequest) Validate() error {
	if r.SourcePath == "" {
		return fmt.Errorf("source path is required")
	}

	if r.FramesFromStart < 0 {
		return fmt.Errorf("frames from start must be >= 0, got %d", r.FramesFromStart)
	}

	if r.FramesFromEnd < 0 {
		return fmt.Errorf("frames from end must be >= 0, got %d", r.FramesFromEnd)
	}

	return nil
}

// OutputFilename returns the output filename derived from the source base name
// and the two trim counts, preserving the source extension. Re-running with
// identical parameters yields the same name, so outputs overwrite
// deterministically instead of accumulating.
func (r *TrimRequest) OutputFilename() string {
	name := filepath.Base(r.SourcePath)
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	return fmt.Sprintf("%s_trim_s_%d_e_%d%s", base, r.FramesFromStart, r.FramesFromEnd, ext)
}

// OutputPath returns the full output path. An empty outputDir places the
// output alongside the source file.
func (r *TrimRequest) OutputPath(outputDir string) string {
	if outputDir == "" {
		outputDir = filepath.Dir(r.SourcePath)
	}
	return filepath.Join(outputDir, r.OutputFilename())
}
