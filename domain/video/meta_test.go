package video

import (
	"math"
	"testing"
)

func TestParseFrameRate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "plain integer", input: "25", want: 25},
		{name: "plain decimal", input: "23.976", want: 23.976},
		{name: "ntsc rational", input: "30000/1001", want: 30000.0 / 1001.0},
		{name: "whole rational", input: "24/1", want: 24},
		{name: "surrounding whitespace", input: " 60/1 ", want: 60},
		{name: "zero denominator", input: "0/0", wantErr: true},
		{name: "zero rate", input: "0", wantErr: true},
		{name: "negative rate", input: "-24", wantErr: true},
		{name: "not a number", input: "N/A", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFrameRate(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseFrameRate(%q) expected error, got %g", tt.input, got)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseFrameRate(%q) unexpected error: %v", tt.input, err)
			}

			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ParseFrameRate(%q) = %g, want %g", tt.input, got, tt.want)
			}
		})
	}
}

func TestVideoMeta_Validate(t *testing.T) {
	tests := []struct {
		name    string
		meta    VideoMeta
		wantErr bool
	}{
		{name: "valid", meta: VideoMeta{FrameRate: 30, TotalFrames: 300}},
		{name: "zero frame rate", meta: VideoMeta{FrameRate: 0, TotalFrames: 300}, wantErr: true},
		{name: "zero frames", meta: VideoMeta{FrameRate: 30, TotalFrames: 0}, wantErr: true},
		{name: "negative frames", meta: VideoMeta{FrameRate: 30, TotalFrames: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.meta.Validate()
			if tt.wantErr && err == nil {
				t.Errorf("VideoMeta.Validate() expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("VideoMeta.Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestVideoMeta_Duration(t *testing.T) {
	meta := VideoMeta{FrameRate: 25, TotalFrames: 250}
	if got := meta.Duration(); math.Abs(got-10) > 1e-9 {
		t.Errorf("VideoMeta.Duration() = %g, want 10", got)
	}
}
