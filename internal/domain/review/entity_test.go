package review

import (
	"errors"
	"testing"
)

func TestRatings_Overall(t *testing.T) {
	cases := []struct {
		name string
		in   Ratings
		want string
	}{
		{name: "all fives", in: Ratings{5, 5, 5, 5, 5, 5}, want: "5"},
		{name: "all ones", in: Ratings{1, 1, 1, 1, 1, 1}, want: "1"},
		{name: "mixed", in: Ratings{4, 3, 5, 4, 4, 4}, want: "4"},
		{name: "repeating", in: Ratings{4, 4, 4, 4, 4, 3}, want: "3.83"},
		{name: "half up", in: Ratings{5, 4, 4, 4, 4, 4}, want: "4.17"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Overall()
			if got.String() != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got.String())
			}
		})
	}
}

func TestRatings_Validate(t *testing.T) {
	if err := (Ratings{1, 2, 3, 4, 5, 3}).Validate(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := (Ratings{0, 2, 3, 4, 5, 3}).Validate(); !errors.Is(err, ErrRatingOutOfRange) {
		t.Fatalf("expected ErrRatingOutOfRange, got %v", err)
	}
	if err := (Ratings{1, 2, 3, 4, 6, 3}).Validate(); !errors.Is(err, ErrRatingOutOfRange) {
		t.Fatalf("expected ErrRatingOutOfRange, got %v", err)
	}
}
