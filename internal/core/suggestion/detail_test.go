package suggestion

import (
	"testing"
)

func TestSplitSteps(t *testing.T) {
	tests := []struct {
		name         string
		instructions string
		want         []string
	}{
		{
			"basic lines",
			"Chop the onion.\nFry until golden.",
			[]string{"Chop the onion.", "Fry until golden."},
		},
		{
			"blank lines and whitespace dropped",
			"\nStep one.\n\n   \n  Step two.  \n",
			[]string{"Step one.", "Step two."},
		},
		{
			"windows line endings",
			"Step one.\r\nStep two.",
			[]string{"Step one.", "Step two."},
		},
		{
			"empty instructions",
			"",
			[]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSteps(tt.instructions)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitSteps(%q) = %v, want %v", tt.instructions, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("step %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestEstimatorRanges(t *testing.T) {
	est := NewEstimator(42)

	for i := 0; i < 100; i++ {
		e := est.Estimate()
		if e.CookTimeMinutes < 15 || e.CookTimeMinutes > 45 {
			t.Fatalf("cook time out of range: %d", e.CookTimeMinutes)
		}
		if e.PrepTimeMinutes < 5 || e.PrepTimeMinutes > 20 {
			t.Fatalf("prep time out of range: %d", e.PrepTimeMinutes)
		}
		if e.Servings < 2 || e.Servings > 4 {
			t.Fatalf("servings out of range: %d", e.Servings)
		}
		if e.Calories < 200 || e.Calories > 700 {
			t.Fatalf("calories out of range: %d", e.Calories)
		}
	}
}

func TestEstimatorDeterministicWithSeed(t *testing.T) {
	a := NewEstimator(7)
	b := NewEstimator(7)

	for i := 0; i < 10; i++ {
		ea, eb := a.Estimate(), b.Estimate()
		if ea != eb {
			t.Fatalf("same seed produced different estimates at step %d: %+v vs %+v", i, ea, eb)
		}
	}
}
