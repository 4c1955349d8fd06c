package theme

import (
	"image/color"
	"testing"
)

func TestOutcomeColor(t *testing.T) {
	cases := []struct {
		outcome string
		want    color.Color
	}{
		{"flash", Accent},
		{"send", Success},
		{"dirty", Secondary},
		{"fail", Error},
		{"warmup", TextDim},
		{"", TextDim},
	}
	for _, tc := range cases {
		if got := OutcomeColor(tc.outcome); got != tc.want {
			t.Errorf("OutcomeColor(%q) = %v, want %v", tc.outcome, got, tc.want)
		}
	}
}
