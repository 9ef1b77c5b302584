// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/sgr.go
// Summary: SGR Dispatcher (§4.6) - turns a CSI ... m parameter list into
// an ordered sequence of typed attribute messages, including the
// extended 256-color and RGB color forms.
// Usage: Invoked by stepCsi when the final byte is 'm'.
// Notes: Grounded on apps/texelterm/parser/vterm_sgr.go's handleSGR loop
// shape (index-advancing switch over params), generalized from
// VTerm-attribute mutation to message construction, plus the
// private/enhanced/with-intermediate wrapper forms and the ITU T.416
// colon color grammar the teacher does not implement.

package parser

// dispatchSGR is a pure function of the CSI ... m sequence's parsed
// pieces -> SgrSequence.
func dispatchSGR(raw []byte, params []Param, private byte, intermediates []byte) SgrSequence {
	seq := SgrSequence{Raw: raw}

	if private == '>' {
		seq.Variant = SgrVariantEnhanced
		seq.Params = paramValues(params)
		seq.Implemented = false
		return seq
	}
	if private == '?' {
		seq.Variant = SgrVariantPrivate
		seq.Params = paramValues(params)
		if len(params) == 1 && params[0].Value == 4 {
			seq.Messages = []SgrMessage{{Kind: SgrUnderline, Implemented: true, Underline: UnderlineSingle}}
			seq.Implemented = true
			return seq
		}
		seq.Implemented = false
		return seq
	}
	if len(intermediates) > 0 {
		seq.Variant = SgrVariantWithIntermediate
		seq.Intermediate = intermediates[0]
		seq.Params = paramValues(params)
		if intermediates[0] == '%' && len(params) == 1 && params[0].Value == 0 {
			seq.Messages = []SgrMessage{{Kind: SgrReset, Implemented: true}}
			seq.Implemented = true
			return seq
		}
		seq.Implemented = false
		return seq
	}

	if len(params) == 0 {
		seq.Messages = []SgrMessage{{Kind: SgrReset, Implemented: true}}
		seq.Implemented = true
		return seq
	}

	all := true
	for i := 0; i < len(params); i++ {
		v := params[i].Value
		switch {
		case v == 0:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrReset, Implemented: true})
		case v == 1:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrBold, Implemented: true})
		case v == 2:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrFaint, Implemented: true})
		case v == 3:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrItalic, Implemented: true})
		case v == 4:
			if params[i].Sep == SepColon && i+1 < len(params) {
				i++
				seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrUnderline, Implemented: true, Underline: underlineStyleFor(params[i].Value)})
			} else {
				seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrUnderline, Implemented: true, Underline: UnderlineSingle})
			}
		case v == 5:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrSlowBlink, Implemented: true})
		case v == 6:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrRapidBlink, Implemented: true})
		case v == 7:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrInverse, Implemented: true})
		case v == 8:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrHidden, Implemented: true})
		case v == 9:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrStrikethrough, Implemented: true})
		case v >= 10 && v <= 19:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrFont, Implemented: true, Font: v - 10})
		case v == 20:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrFraktur, Implemented: true})
		case v == 21:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrDoubleUnderline, Implemented: true})
		case v == 22:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrNormalIntensity, Implemented: true})
		case v == 23:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrNotItalic, Implemented: true})
		case v == 24:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrNotUnderlined, Implemented: true})
		case v == 25:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrNotBlinking, Implemented: true})
		case v == 26:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrProportionalSpacing, Implemented: true})
		case v == 27:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrNotInverse, Implemented: true})
		case v == 28:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrNotHidden, Implemented: true})
		case v == 29:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrNotStrikethrough, Implemented: true})
		case v >= 30 && v <= 37:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrForegroundColor, Implemented: true, Color: namedColor(v - 30)})
		case v == 38:
			msg, consumed, ok := parseExtendedColor(params, i)
			if ok {
				seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrForegroundColor, Implemented: true, Color: msg})
				i += consumed
			} else {
				seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrUnknown, Implemented: false, Params: []int{38}})
				all = false
			}
		case v == 39:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrDefaultForeground, Implemented: true})
		case v >= 40 && v <= 47:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrBackgroundColor, Implemented: true, Color: namedColor(v - 40)})
		case v == 48:
			msg, consumed, ok := parseExtendedColor(params, i)
			if ok {
				seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrBackgroundColor, Implemented: true, Color: msg})
				i += consumed
			} else {
				seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrUnknown, Implemented: false, Params: []int{48}})
				all = false
			}
		case v == 49:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrDefaultBackground, Implemented: true})
		case v == 50:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrDisableProportionalSpacing, Implemented: true})
		case v == 51:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrFramed, Implemented: true})
		case v == 52:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrEncircled, Implemented: true})
		case v == 53:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrOverlined, Implemented: true})
		case v == 54:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrNotFramed, Implemented: true})
		case v == 55:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrNotOverlined, Implemented: true})
		case v == 58:
			msg, consumed, ok := parseExtendedColor(params, i)
			if ok {
				seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrUnderlineColor, Implemented: true, Color: msg})
				i += consumed
			} else {
				seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrUnknown, Implemented: false, Params: []int{58}})
				all = false
			}
		case v == 59:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrDefaultUnderlineColor, Implemented: true})
		case v >= 60 && v <= 65:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrIdeogram, Implemented: true, Ideogram: IdeogramStyle(v - 60)})
		case v == 73:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrSuperscript, Implemented: true})
		case v == 74:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrSubscript, Implemented: true})
		case v == 75:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrNotSuperscriptSubscript, Implemented: true})
		case v >= 90 && v <= 97:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrForegroundColor, Implemented: true, Color: namedColor(v - 90 + 8)})
		case v >= 100 && v <= 107:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrBackgroundColor, Implemented: true, Color: namedColor(v - 100 + 8)})
		default:
			seq.Messages = append(seq.Messages, SgrMessage{Kind: SgrUnknown, Implemented: false, Params: []int{v}})
			all = false
		}
	}
	seq.Implemented = all
	return seq
}

func underlineStyleFor(n int) UnderlineStyle {
	switch n {
	case 2:
		return UnderlineDouble
	case 3:
		return UnderlineCurly
	case 4:
		return UnderlineDotted
	case 5:
		return UnderlineDashed
	default:
		return UnderlineSingle
	}
}

// parseExtendedColor consumes the 256-color or RGB forms that follow a
// 38/48/58 introducer at params[i], accepting both ';'-separated and the
// ITU T.416 colon forms (including the empty-colorspace-slot and
// colorspace-id variants of "38:2:...:r:g:b"). Returns the decoded
// color, how many extra params were consumed, and whether parsing
// succeeded.
func parseExtendedColor(params []Param, i int) (ColorSpec, int, bool) {
	if i+1 >= len(params) {
		return ColorSpec{}, 0, false
	}
	switch params[i+1].Value {
	case 5:
		if i+2 >= len(params) {
			return ColorSpec{}, 0, false
		}
		n := params[i+2].Value
		if n < 0 || n > 255 {
			return ColorSpec{}, 0, false
		}
		return indexedColor(n), 2, true
	case 2:
		// Plain: 38;2;r;g;b (3 following values, no colorspace slot).
		// Colon forms carry a 4th trailing value - the colorspace id,
		// empty or not - ahead of r;g;b: 38:2::r:g:b, 38:2:id:r:g:b.
		// Detected by the separator on the "2" token itself, since a
		// colon form joins every param in the sequence with ':'.
		if params[i+1].Sep == SepColon {
			if i+5 < len(params) {
				r, g, b := params[i+3].Value, params[i+4].Value, params[i+5].Value
				if valid8(r) && valid8(g) && valid8(b) {
					return rgbColor(r, g, b), 5, true
				}
			}
			return ColorSpec{}, 0, false
		}
		if i+4 < len(params) {
			r, g, b := params[i+2].Value, params[i+3].Value, params[i+4].Value
			if valid8(r) && valid8(g) && valid8(b) {
				return rgbColor(r, g, b), 4, true
			}
		}
		return ColorSpec{}, 0, false
	default:
		return ColorSpec{}, 0, false
	}
}

func valid8(v int) bool { return v >= 0 && v <= 255 }
