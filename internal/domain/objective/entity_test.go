package objective

import (
	"errors"
	"testing"
)

func TestObjectiveApply(t *testing.T) {
	cases := []struct {
		name       string
		from       Status
		percentage int
		wantStatus Status
		wantPct    int
		wantErr    error
	}{
		{"not started moves to in progress", StatusNotStarted, 10, StatusInProgress, 10, nil},
		{"zero still starts it", StatusNotStarted, 0, StatusInProgress, 0, nil},
		{"in progress stays in progress", StatusInProgress, 60, StatusInProgress, 60, nil},
		{"hundred completes", StatusInProgress, 100, StatusCompleted, 100, nil},
		{"hundred completes from not started", StatusNotStarted, 100, StatusCompleted, 100, nil},
		{"cancelled keeps its status below hundred", StatusCancelled, 40, StatusCancelled, 40, nil},
		{"above range", StatusInProgress, 101, StatusInProgress, 5, ErrCompletionOutOfRange},
		{"negative", StatusInProgress, -1, StatusInProgress, 5, ErrCompletionOutOfRange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := Objective{Status: tc.from, CompletionPercentage: 5}
			err := o.Apply(tc.percentage)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected err %v, got %v", tc.wantErr, err)
			}
			if o.Status != tc.wantStatus || o.CompletionPercentage != tc.wantPct {
				t.Fatalf("expected %s/%d, got %s/%d", tc.wantStatus, tc.wantPct, o.Status, o.CompletionPercentage)
			}
		})
	}
}
