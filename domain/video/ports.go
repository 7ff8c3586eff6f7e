package video

import "context"

// Prober defines the interface for querying a video's frame metadata
// This is a port that can be implemented by different infrastructure adapters
type Prober interface {
	// Probe returns the frame rate and total frame count of the video at path
	Probe(ctx context.Context, path string) (VideoMeta, error)
}

// Trimmer defines the interface for frame-range trimming operations
type Trimmer interface {
	// Trim writes a copy of the request's source video to outputPath
	// containing only the frames in the plan's retained range, with
	// timestamps rebased so the first kept frame starts at zero
	Trim(ctx context.Context, req *TrimRequest, plan TrimPlan, outputPath string) error
}

// FileChecker defines the interface for checking paths on disk
// This is used to validate inputs before any external tool is invoked
type FileChecker interface {
	// Exists returns true if the path exists
	Exists(path string) bool

	// IsDir returns true if the path exists and is a directory
	IsDir(path string) bool
}
