// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/messages.go
// Summary: Typed message variants emitted to a Handler. Closed tagged
// variants (Kind + payload fields) rather than runtime-typed dicts.
// Usage: Produced by the recognizer and sub-grammar dispatchers, consumed
// by the caller's Handler implementation.

package parser

// ControlKind identifies a recognized C0 control effect.
type ControlKind int

const (
	Bell ControlKind = iota
	Backspace
	Tab
	LineFeed
	FormFeed
	CarriageReturn
	ShiftIn
	ShiftOut
)

// NormalCharacter is a printable code point, either plain ASCII or the
// result of a completed (or best-effort recovered) UTF-8 decode.
type NormalCharacter struct {
	CodePoint      rune
	IsUTF8Sequence bool
}

// CharsetSlot names one of the four G-set designation registers.
type CharsetSlot int

const (
	SlotG0 CharsetSlot = iota
	SlotG1
	SlotG2
	SlotG3
)

// EscKind identifies the kind of a recognized ESC <letter> message.
type EscKind int

const (
	EscSaveCursor EscKind = iota
	EscRestoreCursor
	EscIndex
	EscReverseIndex
	EscNextLine
	EscHorizontalTabSet
	EscResetToInitialState
	EscDesignateCharacterSet
	EscOpaque
)

// EscMessage is a fully parsed ESC-introduced, non-CSI/OSC/DCS message.
type EscMessage struct {
	Kind        EscKind
	Raw         []byte
	Implemented bool
	Slot        CharsetSlot // valid when Kind == EscDesignateCharacterSet
	Charset     byte        // the final byte designating the character set
}

// CsiKind identifies the recognized shape of a CSI message.
type CsiKind int

const (
	CsiCursorUp CsiKind = iota
	CsiCursorDown
	CsiCursorForward
	CsiCursorBackward
	CsiCursorNextLine
	CsiCursorPrevLine
	CsiCursorHorizontalAbsolute
	CsiCursorVerticalAbsolute
	CsiCursorPosition
	CsiEraseInDisplay
	CsiSelectiveEraseInDisplay
	CsiEraseInLine
	CsiSelectiveEraseInLine
	CsiInsertLines
	CsiDeleteLines
	CsiInsertCharacters
	CsiDeleteCharacters
	CsiEraseCharacter
	CsiScrollUp
	CsiScrollDown
	CsiSetScrollRegion
	CsiRestoreCursorPosition
	CsiPrimaryDeviceAttributes
	CsiSecondaryDeviceAttributes
	CsiCursorPositionReport
	CsiTerminalSizeQuery
	CsiCharacterSetQuery
	CsiWindowManipulation
	CsiInsertMode
	CsiDecModeSet
	CsiDecModeReset
	CsiSetCursorStyle
	CsiCursorTabForward
	CsiCursorTabBackward
	CsiTabClear
	CsiSoftTerminalReset
	CsiRequestMode
	CsiInsertColumns
	CsiDeleteColumns
	CsiSaveCursorOrSetMargins
	CsiUnknownViSequence
	CsiUnknown
)

// CsiMessage is a fully parsed Control Sequence Introducer message.
// Only the fields relevant to Kind are meaningful; the zero value of an
// unused field is never mistaken for data since Implemented/Kind gate
// interpretation.
type CsiMessage struct {
	Kind          CsiKind
	Parameters    []Param
	PrivateMarker byte
	Intermediates []byte
	Raw           []byte
	Final         byte
	Implemented   bool

	Count      int   // cursor motion / insert-delete repeat count
	Row, Col   int   // CursorPosition
	Mode       int   // erase mode, tab-clear mode, cursor style, window-manip operation, request-mode value
	Modes      []int // DecModeSet/Reset mode numbers, window-manipulation sub-params
	Top, Bot   int   // scroll region
}

// SgrAttrKind identifies one inner SGR attribute message.
type SgrAttrKind int

const (
	SgrReset SgrAttrKind = iota
	SgrBold
	SgrFaint
	SgrItalic
	SgrUnderline
	SgrSlowBlink
	SgrRapidBlink
	SgrInverse
	SgrHidden
	SgrStrikethrough
	SgrFont
	SgrFraktur
	SgrDoubleUnderline
	SgrNormalIntensity
	SgrNotItalic
	SgrNotUnderlined
	SgrNotBlinking
	SgrProportionalSpacing
	SgrNotInverse
	SgrNotHidden
	SgrNotStrikethrough
	SgrForegroundColor
	SgrDefaultForeground
	SgrBackgroundColor
	SgrDefaultBackground
	SgrDisableProportionalSpacing
	SgrFramed
	SgrEncircled
	SgrOverlined
	SgrNotFramed
	SgrNotOverlined
	SgrUnderlineColor
	SgrDefaultUnderlineColor
	SgrIdeogram
	SgrSuperscript
	SgrSubscript
	SgrNotSuperscriptSubscript
	SgrUnknown
)

// UnderlineStyle distinguishes the SGR 4:n sub-parameter underline forms.
type UnderlineStyle int

const (
	UnderlineSingle UnderlineStyle = iota
	UnderlineDouble
	UnderlineCurly
	UnderlineDotted
	UnderlineDashed
)

// IdeogramStyle enumerates the ECMA-48 ideogram attributes (SGR 60-65).
type IdeogramStyle int

const (
	IdeogramUnderline IdeogramStyle = iota
	IdeogramDoubleUnderline
	IdeogramOverline
	IdeogramDoubleOverline
	IdeogramStressMarking
	IdeogramReset
)

// ColorMode distinguishes the three SGR color specification forms.
type ColorMode int

const (
	ColorNamed ColorMode = iota
	ColorIndexed
	ColorRGB
)

// ColorSpec is a fully resolved SGR foreground/background/underline color.
type ColorSpec struct {
	Mode    ColorMode
	Name    string // one of the 16 ANSI names, valid when Mode == ColorNamed
	Index   uint8  // valid when Mode == ColorIndexed
	R, G, B uint8  // valid when Mode == ColorRGB
}

// SgrMessage is one inner attribute of an SgrSequence.
type SgrMessage struct {
	Kind        SgrAttrKind
	Implemented bool
	Underline   UnderlineStyle
	Font        int
	Color       ColorSpec
	Ideogram    IdeogramStyle
	Params      []int // raw parameter(s), valid when Kind == SgrUnknown
}

// SgrVariant distinguishes the four shapes an SGR (CSI ... m) sequence
// may take per §4.6.
type SgrVariant int

const (
	SgrVariantPlain SgrVariant = iota
	SgrVariantEnhanced         // CSI > ... m
	SgrVariantPrivate          // CSI ? ... m
	SgrVariantWithIntermediate // CSI ... <intermediate> m
)

// SgrSequence is the outer message for a whole CSI ... m sequence. It
// decomposes into zero or more inner SgrMessage values in parameter
// order.
type SgrSequence struct {
	Raw          []byte
	Messages     []SgrMessage
	Implemented  bool // AND of every inner message's Implemented; false when a non-plain variant carries no inner message
	Variant      SgrVariant
	Intermediate byte
	Params       []int // raw params, valid for Enhanced/Private/WithIntermediate variants
}

// OscTerminator distinguishes how an OSC (or DCS) string was closed.
type OscTerminator int

const (
	TerminatorBel OscTerminator = iota
	TerminatorSt
)

// OscKind identifies the recognized shape of an OSC payload.
type OscKind int

const (
	OscSetTitleAndIcon OscKind = iota
	OscSetIconName
	OscSetWindowTitle
	OscQueryWindowTitle
	OscQueryForegroundColor
	OscQueryBackgroundColor
	OscHyperlink
	OscOpaque
)

// OscMessage is a fully parsed Operating System Command message.
type OscMessage struct {
	Raw           []byte
	Terminator    OscTerminator
	Kind          OscKind
	Implemented   bool
	Title         string // SetTitleAndIcon, SetWindowTitle
	Name          string // SetIconName
	URL           string // Hyperlink
	ID            string // Hyperlink, from params' id=<value>
	CommandNumber int    // Opaque
	Text          string // Opaque
}

// DcsMessage is a fully collected Device Control String message. The
// core never interprets the payload beyond the command/parameters/raw
// bytes framing it.
type DcsMessage struct {
	Raw           []byte
	Terminator    OscTerminator
	Command       byte
	PrivateMarker byte
	Intermediates []byte
	Parameters    []Param
	Payload       []byte
	Implemented   bool
}
