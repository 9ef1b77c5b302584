// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/color.go
// Summary: Immutable ANSI color name table shared by SGR dispatch.
// Notes: Constructed once at package init, never mutated - the "shared
// global state" pattern flagged in spec §9 is avoided by making the
// table read-only data rather than a mutable lookup.

package parser

var ansiColorNames = [16]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-black", "bright-red", "bright-green", "bright-yellow",
	"bright-blue", "bright-magenta", "bright-cyan", "bright-white",
}

func namedColor(index int) ColorSpec {
	return ColorSpec{Mode: ColorNamed, Name: ansiColorNames[index]}
}

func indexedColor(n int) ColorSpec {
	return ColorSpec{Mode: ColorIndexed, Index: uint8(n)}
}

func rgbColor(r, g, b int) ColorSpec {
	return ColorSpec{Mode: ColorRGB, R: uint8(r), G: uint8(g), B: uint8(b)}
}
