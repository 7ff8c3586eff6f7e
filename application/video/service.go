package video

import (
	"context"
	"fmt"

	"github.com/patrickdmiller/trim-scripts/domain/video"
)

// Stage identifies where in the single-file pipeline a failure occurred
type Stage string

const (
	StageCheck     Stage = "check"
	StageProbe     Stage = "probe"
	StagePlan      Stage = "plan"
	StageTranscode Stage = "transcode"
)

// PipelineError wraps a failure in one stage of the single-file pipeline.
// A failure is terminal for that file; no stage is retried.
type PipelineError struct {
	Path  string
	Stage Stage
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s failed: %v", e.Path, e.Stage, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// TrimResult contains the result of a successful trim
type TrimResult struct {
	OutputPath string
	Meta       video.VideoMeta
	Plan       video.TrimPlan
}

// TrimService runs the single-file trim pipeline:
// check -> probe -> plan -> transcode
type TrimService struct {
	prober      video.Prober
	trimmer     video.Trimmer
	fileChecker video.FileChecker
	outputDir   string
}

// NewTrimService creates a new TrimService. An empty outputDir writes each
// output alongside its source file.
func NewTrimService(prober video.Prober, trimmer video.Trimmer, fileChecker video.FileChecker, outputDir string) *TrimService {
	return &TrimService{
		prober:      prober,
		trimmer:     trimmer,
		fileChecker: fileChecker,
		outputDir:   outputDir,
	}
}

// Trim trims a single video according to the request. Each stage releases its
// resources before the next begins; the trimmer is never invoked unless a
// valid plan exists.
func (s *TrimService) Trim(ctx context.Context, req *video.TrimRequest) (*TrimResult, error) {
	if err := req.Validate(); err != nil {
		return nil, &PipelineError{Path: req.SourcePath, Stage: StageCheck, Err: err}
	}

	if !s.fileChecker.Exists(req.SourcePath) || s.fileChecker.IsDir(req.SourcePath) {
		return nil, &PipelineError{Path: req.SourcePath, Stage: StageCheck, Err: video.ErrFileNotFound}
	}

	meta, err := s.prober.Probe(ctx, req.SourcePath)
	if err != nil {
		return nil, &PipelineError{Path: req.SourcePath, Stage: StageProbe, Err: err}
	}
	if err := meta.Validate(); err != nil {
		return nil, &PipelineError{Path: req.SourcePath, Stage: StageProbe, Err: err}
	}

	plan, err := video.Plan(meta.TotalFrames, req.FramesFromStart, req.FramesFromEnd)
	if err != nil {
		return nil, &PipelineError{Path: req.SourcePath, Stage: StagePlan, Err: err}
	}

	outputPath := req.OutputPath(s.outputDir)
	if err := s.trimmer.Trim(ctx, req, plan, outputPath); err != nil {
		return nil, &PipelineError{Path: req.SourcePath, Stage: StageTranscode, Err: err}
	}

	return &TrimResult{
		OutputPath: outputPath,
		Meta:       meta,
		Plan:       plan,
	}, nil
}
