// Package core provides fundamental types and utilities for the color game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Wrap maps val into [0, n) cyclically. Returns 0 when n <= 0.
func Wrap(val, n int) int {
	if n <= 0 {
		return 0
	}
	val %= n
	if val < 0 {
		val += n
	}
	return val
}
