package service

import "math/rand/v2"

// Chooser picks an index in [0, n). n is always positive.
type Chooser func(n int) int

// RandomChooser picks uniformly at random.
func RandomChooser(n int) int {
	return rand.IntN(n)
}

// FirstChooser always picks the first option. Useful for deterministic output.
func FirstChooser(int) int {
	return 0
}

func pick(choose Chooser, options []string) string {
	if len(options) == 0 {
		return ""
	}
	i := choose(len(options))
	if i < 0 || i >= len(options) {
		i = 0
	}
	return options[i]
}
