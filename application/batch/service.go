package batch

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	appvideo "github.com/patrickdmiller/trim-scripts/application/video"
	"github.com/patrickdmiller/trim-scripts/domain/video"
)

// FileFinder abstracts directory enumeration for batch runs
type FileFinder interface {
	// ListVideos returns the full paths of the immediate entries of dir whose
	// extension matches ext, sorted by name. Subdirectories are skipped.
	ListVideos(dir, ext string) ([]string, error)
}

// FileTrimmer runs the single-file trim pipeline for one candidate
type FileTrimmer interface {
	Trim(ctx context.Context, req *video.TrimRequest) (*appvideo.TrimResult, error)
}

// Result is the outcome for one file in a batch. It is created once per file
// and never mutated afterwards.
type Result struct {
	SourcePath string
	OutputPath string // set on success
	Err        error  // set on failure
}

// Succeeded reports whether the file was trimmed
func (r Result) Succeeded() bool {
	return r.Err == nil
}

// Summary aggregates the per-file results of one batch run
type Summary struct {
	Results   []Result
	Succeeded int
	Failed    int
	BatchMode bool // true when the input resolved to a directory
}

// Service resolves an input path into candidate files and trims each one
// sequentially. A failure on one file never aborts the rest of the batch.
type Service struct {
	trimmer     FileTrimmer
	fileChecker video.FileChecker
	fileFinder  FileFinder
	extension   string
	output      io.Writer
}

// NewService creates a new batch service. extension is the candidate filter
// for directory inputs, e.g. ".mp4".
func NewService(trimmer FileTrimmer, fileChecker video.FileChecker, fileFinder FileFinder, extension string, output io.Writer) *Service {
	return &Service{
		trimmer:     trimmer,
		fileChecker: fileChecker,
		fileFinder:  fileFinder,
		extension:   extension,
		output:      output,
	}
}

// Run trims inputPath, a single file or a directory of candidates. It returns
// an error only for batch-level problems (invalid path, unreadable directory,
// no candidates); per-file failures are recorded in the summary.
func (s *Service) Run(ctx context.Context, inputPath string, framesFromStart, framesFromEnd int) (*Summary, error) {
	if !s.fileChecker.Exists(inputPath) {
		return nil, fmt.Errorf("%w: %s", video.ErrInvalidPath, inputPath)
	}

	summary := &Summary{BatchMode: s.fileChecker.IsDir(inputPath)}

	candidates := []string{inputPath}
	if summary.BatchMode {
		var err error
		candidates, err = s.fileFinder.ListVideos(inputPath, s.extension)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", inputPath, err)
		}
		if len(candidates) == 0 {
			return nil, fmt.Errorf("no %s files found in %s", s.extension, inputPath)
		}
	}

	for i, path := range candidates {
		// SIGINT lands here: finish the current file, stop before the next
		if err := ctx.Err(); err != nil {
			return summary, fmt.Errorf("batch interrupted after %d of %d files: %w", i, len(candidates), err)
		}

		summary.add(s.processOne(ctx, i, len(candidates), path, framesFromStart, framesFromEnd))
	}

	fmt.Fprintf(s.output, "Done! %d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	return summary, nil
}

func (s *Service) processOne(ctx context.Context, i, total int, path string, framesFromStart, framesFromEnd int) Result {
	fmt.Fprintf(s.output, "[%d/%d] Trimming %s...\n", i+1, total, filepath.Base(path))

	req, err := video.NewTrimRequest(path, framesFromStart, framesFromEnd)
	if err != nil {
		fmt.Fprintf(s.output, "      Failed: %v\n", err)
		return Result{SourcePath: path, Err: err}
	}

	result, err := s.trimmer.Trim(ctx, req)
	if err != nil {
		fmt.Fprintf(s.output, "      Failed: %v\n", err)
		return Result{SourcePath: path, Err: err}
	}

	fmt.Fprintf(s.output, "      Created: %s\n", result.OutputPath)
	return Result{SourcePath: path, OutputPath: result.OutputPath}
}

func (s *Summary) add(r Result) {
	s.Results = append(s.Results, r)
	if r.Succeeded() {
		s.Succeeded++
	} else {
		s.Failed++
	}
}
