package model

import (
	"math/rand/v2"
	"regexp"
)

// Palette is the set of pastel colors offered for spending items.
var Palette = []string{
	"#ffdab9", "#b0e57c", "#9fe2bf", "#87ceeb", "#dda0dd",
	"#ffb6c1", "#ffcccb", "#f0e68c", "#add8e6", "#ffebcd",
	"#ff7f50", "#98fb98", "#afeeee", "#db7093", "#f4a460",
	"#fafad2", "#d8bfd8", "#e0ffff", "#ffe4e1", "#ffdead",
	"#e6e6fa", "#d3ffce", "#ffefd5", "#ffc0cb", "#f5deb3",
	"#bc8f8f", "#f0fff0", "#c3b091", "#eedd82", "#ffb347",
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidColor reports whether s is a #rrggbb color.
func ValidColor(s string) bool {
	return hexColor.MatchString(s)
}

// RandomColor picks a palette color. A nil source uses the global one.
func RandomColor(r *rand.Rand) string {
	if r == nil {
		return Palette[rand.IntN(len(Palette))]
	}
	return Palette[r.IntN(len(Palette))]
}
