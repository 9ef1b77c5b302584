// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/params.go
// Summary: Parameter Parser - converts accumulated parameter-region
// bytes into a numeric list with separator kinds, reusable across CSI,
// SGR, and DCS.
// Usage: Called once per dispatch from the state machine's param_text
// buffer; never mutates shared state.

package parser

// Separator is the byte that followed a parameter value, or SepNone if
// the value was the last in the list.
type Separator byte

const (
	SepNone      Separator = 0
	SepSemicolon Separator = ';'
	SepColon     Separator = ':'
)

// Param is one (value, separator-to-next) pair.
type Param struct {
	Value int
	Sep   Separator
}

const maxParamValue = 16383

// parseParams splits text on ';' or ':' into a Param list, clamping
// overflow values to maxParamValue and retaining at most maxParams
// entries (extras are parsed but dropped, and not counted).
func parseParams(text []byte, maxParams int) []Param {
	if len(text) == 0 {
		return nil
	}
	params := make([]Param, 0, maxParams)
	start := 0
	appendToken := func(tok []byte, sep Separator) {
		val := 0
		for _, c := range tok {
			if c < '0' || c > '9' {
				continue
			}
			val = val*10 + int(c-'0')
			if val > maxParamValue {
				val = maxParamValue
			}
		}
		if len(params) < maxParams {
			params = append(params, Param{Value: val, Sep: sep})
		}
	}
	for i, c := range text {
		if c == ';' || c == ':' {
			appendToken(text[start:i], Separator(c))
			start = i + 1
		}
	}
	appendToken(text[start:], SepNone)
	return params
}

// intValues extracts the bare integer values from a Param list, ignoring
// separators - used by dispatch paths that only care about the ordered
// value sequence (DEC mode lists, window-manipulation sub-params).
func intValues(params []Param) []int {
	if len(params) == 0 {
		return nil
	}
	out := make([]int, len(params))
	for i, p := range params {
		out[i] = p.Value
	}
	return out
}

// paramDefault1 returns params[i].Value, substituting def when the slot
// is absent OR present-but-zero - the convention for repeat-count style
// parameters (cursor motion, insert/delete, scroll) where a literal 0
// means "use the default" per §4.4.
func paramDefault1(params []Param, i int, def int) int {
	if i < len(params) && params[i].Value != 0 {
		return params[i].Value
	}
	return def
}

// paramOrAbsent returns (value, true) when the slot is present,
// (def, false) otherwise - used for mode-style parameters where a
// literal 0 is a distinct value from "absent" (erase-in-display mode,
// window-manipulation operation).
func paramOrAbsent(params []Param, i int, def int) (int, bool) {
	if i < len(params) {
		return params[i].Value, true
	}
	return def, false
}
