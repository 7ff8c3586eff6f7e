package video

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound is returned when the source video does not exist
	ErrFileNotFound = errors.New("source file does not exist")

	// ErrInvalidPath is returned when an input path is neither an existing
	// file nor a directory
	ErrInvalidPath = errors.New("input path is neither a file nor a directory")

	// ErrNoVideoStream is returned when a probed file contains no video stream
	ErrNoVideoStream = errors.New("no video stream found")
)

// InsufficientFramesError is returned when the requested trim counts leave no
// frames to keep
type InsufficientFramesError struct {
	TotalFrames     int
	FramesFromStart int
	FramesFromEnd   int
}

func (e *InsufficientFramesError) Error() string {
	return fmt.Sprintf("trimming %d + %d frames leaves nothing of a %d-frame video",
		e.FramesFromStart, e.FramesFromEnd, e.TotalFrames)
}
