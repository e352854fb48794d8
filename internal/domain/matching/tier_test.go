package matching

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		score    int
		exact    int
		required int
		want     Tier
	}{
		{"perfect", 85, 5, 5, TierPerfect},
		{"perfect at boundary", 80, 4, 5, TierPerfect},
		{"good score but low coverage", 85, 3, 5, TierGood},
		{"good", 65, 3, 5, TierGood},
		{"partial", 45, 2, 5, TierPartial},
		{"high score low coverage", 100, 1, 5, TierStretch},
		{"low score full coverage", 20, 5, 5, TierStretch},
		{"zero everything", 0, 0, 0, TierStretch},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.score, tc.exact, tc.required); got != tc.want {
				t.Fatalf("Classify(%d, %d, %d) = %s, want %s", tc.score, tc.exact, tc.required, got, tc.want)
			}
		})
	}
}

func TestParseTier(t *testing.T) {
	cases := []struct {
		in   string
		want Tier
		ok   bool
	}{
		{"perfect", TierPerfect, true},
		{" Good ", TierGood, true},
		{"PARTIAL", TierPartial, true},
		{"stretch", TierStretch, true},
		{"excellent", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := ParseTier(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseTier(%q) = (%s, %v), want (%s, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
