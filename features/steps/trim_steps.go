//go:build integration

package steps

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/patrickdmiller/trim-scripts/cmd"
	"github.com/patrickdmiller/trim-scripts/domain/video"

	"github.com/cucumber/godog"
)

// mockProber serves canned frame metadata per path
type mockProber struct {
	metas map[string]video.VideoMeta
	errs  map[string]error
}

func (m *mockProber) Probe(ctx context.Context, path string) (video.VideoMeta, error) {
	if err, ok := m.errs[path]; ok {
		return video.VideoMeta{}, err
	}
	if meta, ok := m.metas[path]; ok {
		return meta, nil
	}
	return video.VideoMeta{}, fmt.Errorf("no metadata registered for %s", path)
}

// mockTrimmer records calls to Trim for verification
type mockTrimmer struct {
	calls []trimCall
}

type trimCall struct {
	req        *video.TrimRequest
	plan       video.TrimPlan
	outputPath string
}

func (m *mockTrimmer) Trim(ctx context.Context, req *video.TrimRequest, plan video.TrimPlan, outputPath string) error {
	m.calls = append(m.calls, trimCall{req: req, plan: plan, outputPath: outputPath})
	return nil
}

// mockFileChecker simulates files and directories on disk
type mockFileChecker struct {
	files map[string]bool
	dirs  map[string]bool
}

func (m *mockFileChecker) Exists(path string) bool { return m.files[path] || m.dirs[path] }
func (m *mockFileChecker) IsDir(path string) bool  { return m.dirs[path] }

// mockFileFinder lists the registered videos of a directory sorted by name
type mockFileFinder struct {
	videos map[string][]string
}

func (m *mockFileFinder) ListVideos(dir, ext string) ([]string, error) {
	var matching []string
	for _, path := range m.videos[dir] {
		if strings.EqualFold(filepath.Ext(path), ext) {
			matching = append(matching, path)
		}
	}
	return matching, nil
}

// trimContext holds test state for trim scenarios
type trimContext struct {
	prober  *mockProber
	trimmer *mockTrimmer
	checker *mockFileChecker
	finder  *mockFileFinder
	output  bytes.Buffer
	runErr  error
}

func (tc *trimContext) reset() {
	tc.prober = &mockProber{metas: map[string]video.VideoMeta{}, errs: map[string]error{}}
	tc.trimmer = &mockTrimmer{}
	tc.checker = &mockFileChecker{files: map[string]bool{}, dirs: map[string]bool{}}
	tc.finder = &mockFileFinder{videos: map[string][]string{}}
	tc.output.Reset()
	tc.runErr = nil
}

// InitializeTrimScenario registers the trim steps
func InitializeTrimScenario(sc *godog.ScenarioContext) {
	tc := &trimContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	sc.Step(`^a video "([^"]*)" with (\d+) frames at (\d+) fps$`, tc.aVideo)
	sc.Step(`^a video "([^"]*)" that cannot be probed$`, tc.anUnprobableVideo)
	sc.Step(`^a directory "([^"]*)" containing a video "([^"]*)" with (\d+) frames at (\d+) fps$`, tc.aDirectoryVideo)
	sc.Step(`^the directory "([^"]*)" also contains a file "([^"]*)"$`, tc.aDirectoryExtraFile)
	sc.Step(`^I trim (\d+) frames from the start and (\d+) from the end of "([^"]*)"$`, tc.iTrim)
	sc.Step(`^the command succeeds$`, tc.commandSucceeds)
	sc.Step(`^the command fails with "([^"]*)"$`, tc.commandFailsWith)
	sc.Step(`^the output "([^"]*)" is created$`, tc.outputIsCreated)
	sc.Step(`^frames (\d+) through (\d+) are kept$`, tc.framesAreKept)
	sc.Step(`^(\d+) files? (?:was|were) dispatched$`, tc.filesWereDispatched)
	sc.Step(`^the summary reports (\d+) succeeded and (\d+) failed$`, tc.summaryReports)
	sc.Step(`^no transcode was attempted$`, tc.noTranscodeAttempted)
}

func (tc *trimContext) aVideo(name string, frames, fps int) error {
	tc.checker.files[name] = true
	tc.prober.metas[name] = video.VideoMeta{FrameRate: float64(fps), TotalFrames: frames}
	return nil
}

func (tc *trimContext) anUnprobableVideo(name string) error {
	tc.checker.files[name] = true
	tc.prober.errs[name] = fmt.Errorf("no video stream found")
	return nil
}

func (tc *trimContext) aDirectoryVideo(dir, name string, frames, fps int) error {
	path := filepath.Join(dir, name)
	tc.checker.dirs[dir] = true
	tc.checker.files[path] = true
	tc.prober.metas[path] = video.VideoMeta{FrameRate: float64(fps), TotalFrames: frames}
	tc.finder.videos[dir] = insertSorted(tc.finder.videos[dir], path)
	return nil
}

func (tc *trimContext) aDirectoryExtraFile(dir, name string) error {
	path := filepath.Join(dir, name)
	tc.checker.dirs[dir] = true
	tc.checker.files[path] = true
	tc.finder.videos[dir] = insertSorted(tc.finder.videos[dir], path)
	return nil
}

func (tc *trimContext) iTrim(fromStart, fromEnd int, input string) error {
	tc.runErr = cmd.RunTrimWithDependencies(
		context.Background(),
		tc.prober,
		tc.trimmer,
		tc.checker,
		tc.finder,
		"",
		".mp4",
		input,
		fromStart,
		fromEnd,
		&tc.output,
	)
	return nil
}

func (tc *trimContext) commandSucceeds() error {
	if tc.runErr != nil {
		return fmt.Errorf("expected success, got: %w", tc.runErr)
	}
	return nil
}

func (tc *trimContext) commandFailsWith(substr string) error {
	if tc.runErr == nil {
		return fmt.Errorf("expected failure containing %q, command succeeded", substr)
	}
	if !strings.Contains(tc.runErr.Error(), substr) {
		return fmt.Errorf("expected error containing %q, got: %v", substr, tc.runErr)
	}
	return nil
}

func (tc *trimContext) outputIsCreated(outputPath string) error {
	for _, call := range tc.trimmer.calls {
		if call.outputPath == outputPath {
			return nil
		}
	}
	return fmt.Errorf("no trim produced %q; outputs: %v", outputPath, tc.outputPaths())
}

func (tc *trimContext) framesAreKept(start, last int) error {
	for _, call := range tc.trimmer.calls {
		if call.plan.StartIndex == start && call.plan.LastIndex == last {
			return nil
		}
	}
	return fmt.Errorf("no trim kept frames %d through %d", start, last)
}

func (tc *trimContext) filesWereDispatched(n int) error {
	dispatched := strings.Count(tc.output.String(), "] Trimming ")
	if dispatched != n {
		return fmt.Errorf("expected %d dispatched files, got %d:\n%s", n, dispatched, tc.output.String())
	}
	return nil
}

func (tc *trimContext) summaryReports(succeeded, failed int) error {
	want := fmt.Sprintf("Done! %d succeeded, %d failed", succeeded, failed)
	if !strings.Contains(tc.output.String(), want) {
		return fmt.Errorf("expected summary %q in output:\n%s", want, tc.output.String())
	}
	return nil
}

func (tc *trimContext) noTranscodeAttempted() error {
	if len(tc.trimmer.calls) != 0 {
		return fmt.Errorf("expected no transcode, got %d", len(tc.trimmer.calls))
	}
	return nil
}

func (tc *trimContext) outputPaths() []string {
	var paths []string
	for _, call := range tc.trimmer.calls {
		paths = append(paths, call.outputPath)
	}
	return paths
}

func insertSorted(paths []string, path string) []string {
	paths = append(paths, path)
	for i := len(paths) - 1; i > 0 && paths[i] < paths[i-1]; i-- {
		paths[i], paths[i-1] = paths[i-1], paths[i]
	}
	return paths
}
