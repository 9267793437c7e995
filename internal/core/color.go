package core

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// RGB is a color as a triple of 8-bit channel intensities.
// Two RGB values are the same color iff the structs are equal; this is the
// only comparison the game ever performs.
type RGB struct {
	R, G, B uint8
}

// String returns the canonical text encoding, e.g. "rgb(12, 34, 56)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex returns the color as "#rrggbb", the form terminal styles accept.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RandomRGB draws each channel independently and uniformly from [0, 255].
func RandomRGB(rng *rand.Rand) RGB {
	return RGB{
		R: uint8(rng.Intn(256)),
		G: uint8(rng.Intn(256)),
		B: uint8(rng.Intn(256)),
	}
}

// ParseRGB parses either the canonical "rgb(r, g, b)" form (case-insensitive,
// any spacing) or "#rrggbb".
func ParseRGB(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}

	lower := strings.ToLower(s)
	if !strings.HasPrefix(lower, "rgb(") || !strings.HasSuffix(lower, ")") {
		return RGB{}, fmt.Errorf("core: invalid color %q", s)
	}

	parts := strings.Split(lower[len("rgb("):len(lower)-1], ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("core: invalid color %q: want 3 channels", s)
	}

	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("core: invalid channel in %q: %w", s, err)
		}
		ch[i] = uint8(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

func parseHex(s string) (RGB, error) {
	if len(s) != 7 {
		return RGB{}, fmt.Errorf("core: invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("core: invalid hex color %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// MustParseRGB is ParseRGB for constants; it panics on malformed input.
func MustParseRGB(s string) RGB {
	c, err := ParseRGB(s)
	if err != nil {
		panic(err)
	}
	return c
}
