package gamestate

import "testing"

func TestParseHighScore(t *testing.T) {
	tests := []struct {
		raw      string
		expected int
	}{
		{"42", 42},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"  17", 17},
		{"+8", 8},
		{"12abc", 12},
		{"3.9", 3},
		{"-5", -5},
		{" -12px", -12},
		{"-0", 0},
		{"-", 0},
		{"- 3", 0},
		{"99999999999999999999999", 0},
	}

	for _, tc := range tests {
		got := ParseHighScore(tc.raw)
		if got != tc.expected {
			t.Errorf("ParseHighScore(%q) = %d, expected %d", tc.raw, got, tc.expected)
		}
	}
}

func TestFormatHighScoreRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 150, 1234567, -2} {
		if got := ParseHighScore(FormatHighScore(n)); got != n {
			t.Errorf("round trip of %d gave %d", n, got)
		}
	}
}
