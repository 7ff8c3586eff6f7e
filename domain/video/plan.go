package video

// TrimPlan is the retained frame-index range derived from a video's frame
// count and a trim request. Indices are zero-based and the range is inclusive.
type TrimPlan struct {
	StartIndex   int
	LastIndex    int
	FramesToKeep int
}

// Plan computes the retained frame range for a video with totalFrames frames
// when framesFromStart frames are cut from the start and framesFromEnd from
// the end. It returns an InsufficientFramesError when the trim counts consume
// the entire video or more; an invalid plan must never reach a trimmer.
func Plan(totalFrames, framesFromStart, framesFromEnd int) (TrimPlan, error) {
	framesToKeep := totalFrames - framesFromStart - framesFromEnd

	if framesToKeep <= 0 {
		return TrimPlan{}, &InsufficientFramesError{
			TotalFrames:     totalFrames,
			FramesFromStart: framesFromStart,
			FramesFromEnd:   framesFromEnd,
		}
	}

	return TrimPlan{
		StartIndex:   framesFromStart,
		LastIndex:    totalFrames - framesFromEnd - 1,
		FramesToKeep: framesToKeep,
	}, nil
}
