package gamestate

import "strconv"

// HighScoreKey is the storage key the high score is persisted under.
const HighScoreKey = "dragon-highscore"

// ParseHighScore reads a persisted high score.
// Leading whitespace and an optional sign are accepted, then as many decimal
// digits as follow; anything after them is ignored. A value without digits
// yields 0. Negative values are kept, since IncrementScore can record one.
func ParseHighScore(raw string) int {
	i := 0
	for i < len(raw) && isSpace(raw[i]) {
		i++
	}

	neg := false
	if i < len(raw) && (raw[i] == '+' || raw[i] == '-') {
		neg = raw[i] == '-'
		i++
	}

	start := i
	for i < len(raw) && raw[i] >= '0' && raw[i] <= '9' {
		i++
	}
	if i == start {
		return 0
	}

	n, err := strconv.Atoi(raw[start:i])
	if err != nil {
		// Only overflow gets here
		return 0
	}
	if neg {
		return -n
	}
	return n
}

// FormatHighScore renders a high score the way it is persisted.
func FormatHighScore(n int) string {
	return strconv.Itoa(n)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
