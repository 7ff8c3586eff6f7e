package video

import (
	"errors"
	"testing"
)

func TestPlan(t *testing.T) {
	tests := []struct {
		name        string
		totalFrames int
		fromStart   int
		fromEnd     int
		want        TrimPlan
		wantErr     bool
	}{
		{
			name:        "typical trim",
			totalFrames: 100,
			fromStart:   10,
			fromEnd:     15,
			want:        TrimPlan{StartIndex: 10, LastIndex: 84, FramesToKeep: 75},
		},
		{
			name:        "no trimming keeps everything",
			totalFrames: 50,
			fromStart:   0,
			fromEnd:     0,
			want:        TrimPlan{StartIndex: 0, LastIndex: 49, FramesToKeep: 50},
		},
		{
			name:        "single frame survives",
			totalFrames: 21,
			fromStart:   10,
			fromEnd:     10,
			want:        TrimPlan{StartIndex: 10, LastIndex: 10, FramesToKeep: 1},
		},
		{
			name:        "counts exceed video",
			totalFrames: 20,
			fromStart:   10,
			fromEnd:     15,
			wantErr:     true,
		},
		{
			name:        "counts exactly consume video",
			totalFrames: 25,
			fromStart:   10,
			fromEnd:     15,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Plan(tt.totalFrames, tt.fromStart, tt.fromEnd)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("Plan() expected error, got plan %+v", got)
				}
				var insufficient *InsufficientFramesError
				if !errors.As(err, &insufficient) {
					t.Fatalf("Plan() error = %T, want *InsufficientFramesError", err)
				}
				if insufficient.TotalFrames != tt.totalFrames {
					t.Errorf("InsufficientFramesError.TotalFrames = %d, want %d", insufficient.TotalFrames, tt.totalFrames)
				}
				return
			}

			if err != nil {
				t.Fatalf("Plan() unexpected error: %v", err)
			}

			if got != tt.want {
				t.Errorf("Plan() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPlan_Deterministic(t *testing.T) {
	first, err := Plan(100, 10, 15)
	if err != nil {
		t.Fatalf("Plan() unexpected error: %v", err)
	}

	second, err := Plan(100, 10, 15)
	if err != nil {
		t.Fatalf("Plan() unexpected error: %v", err)
	}

	if first != second {
		t.Errorf("Plan() is not deterministic: %+v vs %+v", first, second)
	}
}

func TestPlan_FramesToKeepArithmetic(t *testing.T) {
	// framesToKeep must always equal totalFrames - s - e when the plan is valid
	for _, c := range []struct{ total, s, e int }{
		{1, 0, 0}, {100, 0, 99}, {100, 99, 0}, {240, 24, 24}, {3, 1, 1},
	} {
		plan, err := Plan(c.total, c.s, c.e)
		if err != nil {
			t.Fatalf("Plan(%d, %d, %d) unexpected error: %v", c.total, c.s, c.e, err)
		}
		if plan.FramesToKeep != c.total-c.s-c.e {
			t.Errorf("Plan(%d, %d, %d).FramesToKeep = %d, want %d",
				c.total, c.s, c.e, plan.FramesToKeep, c.total-c.s-c.e)
		}
		if plan.LastIndex-plan.StartIndex+1 != plan.FramesToKeep {
			t.Errorf("Plan(%d, %d, %d) range [%d, %d] does not span %d frames",
				c.total, c.s, c.e, plan.StartIndex, plan.LastIndex, plan.FramesToKeep)
		}
	}
}
