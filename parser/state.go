// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/state.go
// Summary: The VT500-family recognizer - holds recognizer state, the
// in-flight sequence buffers, and the anywhere/per-state transitions.
// Usage: New constructs a Parser; PushByte/PushBytes are the only
// ingress points.
// Notes: Follows the teacher's StateX/iota enum shape
// (apps/texelterm/parser/parser.go) generalized to the full VT500 table;
// the teacher's two diverged implementations are reconciled here per the
// canonical contract in spec §4.3, not replicated.

package parser

// State is one of the VT500-series recognizer states. The machine runs
// forever; there is no terminal state.
type State int

const (
	StateGround State = iota
	StateEscape
	StateEscapeIntermediate
	StateCsiEntry
	StateCsiParam
	StateCsiIntermediate
	StateCsiIgnore
	StateDcsEntry
	StateDcsParam
	StateDcsIntermediate
	StateDcsPassthrough
	StateDcsIgnore
	StateOscString
	StateOscEscape
	StateSosPmApcString
)

// pendingStringOrigin is recorded when entering an ESC-pending-ST
// sub-state (StateOscEscape, reused across OSC/DCS/SOS-PM-APC strings -
// only OscString's terminated-by-ESC wait is named in spec §3, the same
// "saw ESC, waiting to see if ST completes" logic serves the other two
// string collectors) so the byte that eventually resolves it knows
// which dispatcher to invoke, if any.
type pendingStringOrigin int

const (
	originNone pendingStringOrigin = iota
	originOsc
	originDcs
	originSosPmApc
)

// Parser is a single-threaded, cooperative VT500 recognizer. A Parser
// instance owns its state exclusively; it is not safe for concurrent use
// (§5).
type Parser struct {
	opts    Options
	handler Handler
	state   State
	utf8    utf8Decoder

	raw           []byte
	intermediates []byte
	paramText     []byte
	paramBytesAt0 bool // true once any parameter-class byte has been seen
	hasColon      bool
	privateMarker byte

	pendingOrigin pendingStringOrigin
	stringPayload []byte

	dcsCommand       byte
	dcsIntermediates []byte
	dcsParams        []Param
	dcsPrivate       byte

	overflowed bool
}

// New constructs a Parser bound to handler, using the documented
// defaults for any zero-valued Options field.
func New(handler Handler, opts Options) *Parser {
	p := &Parser{
		opts:    opts.withDefaults(),
		handler: handler,
		utf8:    newUTF8Decoder(),
	}
	p.raw = make([]byte, 0, 32)
	p.intermediates = make([]byte, 0, 4)
	p.paramText = make([]byte, 0, 24)
	p.stringPayload = make([]byte, 0, 64)
	return p
}

// Reset returns the recognizer to Ground and clears every buffer and the
// UTF-8 decoder state.
func (p *Parser) Reset() {
	p.state = StateGround
	p.clearSequence()
	p.utf8.reset()
}

// PushBytes feeds an entire slice through the recognizer. Per §8's
// concatenation property, PushBytes(a); PushBytes(b) is equivalent to
// PushBytes(a||b).
func (p *Parser) PushBytes(data []byte) {
	for _, b := range data {
		p.PushByte(b)
	}
}

// Flush forces emission of any incomplete UTF-8 sequence buffered by the
// decoder. Callers should invoke this at stream end (§4.2).
func (p *Parser) Flush() {
	for _, nc := range p.utf8.flush() {
		p.handler.HandleNormalCharacter(nc)
	}
}

func (p *Parser) clearSequence() {
	p.raw = p.raw[:0]
	p.intermediates = p.intermediates[:0]
	p.paramText = p.paramText[:0]
	p.paramBytesAt0 = false
	p.hasColon = false
	p.privateMarker = 0
	p.pendingOrigin = originNone
	p.stringPayload = p.stringPayload[:0]
	p.dcsCommand = 0
	p.dcsIntermediates = nil
	p.dcsParams = nil
	p.dcsPrivate = 0
	p.overflowed = false
}

func (p *Parser) appendRaw(b byte) {
	if len(p.raw) < p.opts.MaxRawBytes {
		p.raw = append(p.raw, b)
		return
	}
	p.overflowed = true
}

// logf reports a recoverable-but-unusual condition to the configured
// Logger, a no-op when none was supplied (§7's diagnostic hook).
func (p *Parser) logf(format string, args ...any) {
	if p.opts.Logger != nil {
		p.opts.Logger.Printf(format, args...)
	}
}

// PushByte feeds a single octet through the recognizer, synchronously
// emitting zero or more messages to the bound Handler.
func (p *Parser) PushByte(b byte) {
	if p.state == StateGround {
		p.pushByteGround(b)
		return
	}

	switch b {
	case 0x1B:
		p.handleEscFromNonGround()
		return
	case 0x18, 0x1A: // CAN, SUB
		p.cancel()
		return
	}

	if b >= 0x80 && b <= 0x9F {
		p.handleC1(b)
		return
	}

	p.dispatchNonGround(b, classify(b))
}

func (p *Parser) pushByteGround(b byte) {
	switch b {
	case 0x1B:
		p.enterEscape()
		return
	case 0x18, 0x1A:
		p.cancel()
		return
	}
	if b < 0x80 {
		switch classify(b) {
		case ClassBEL:
			p.handler.HandleControl(Bell)
		case ClassDEL:
			// ignored (VT220+)
		case ClassC0:
			p.executeC0(b)
		default:
			for _, nc := range p.utf8.step(b) {
				p.handler.HandleNormalCharacter(nc)
			}
		}
		return
	}
	// Ground routes every byte >= 0x80 to the UTF-8 decoder, including
	// the C1 range - an 8-bit C1 introducer is only recognized outside
	// Ground (§4.1: Ground's GR+continuation bytes drive UTF-8 instead).
	for _, nc := range p.utf8.step(b) {
		p.handler.HandleNormalCharacter(nc)
	}
}

// handleC1 handles the 0x80-0x9F C1 controls while not in Ground: the
// "anywhere" CSI/OSC/DCS/SOS-PM-APC/ST introducers, or else a plain
// control executed in place before returning to Ground.
func (p *Parser) handleC1(b byte) {
	switch b {
	case 0x9B:
		p.enterState(StateCsiEntry)
	case 0x9D:
		p.enterState(StateOscString)
	case 0x90:
		p.enterState(StateDcsEntry)
	case 0x98, 0x9E, 0x9F:
		p.enterState(StateSosPmApcString)
	case 0x9C: // ST outside any open string: no-op, back to Ground
		p.state = StateGround
		p.clearSequence()
	default:
		p.executeC1(b)
		p.state = StateGround
	}
}

func (p *Parser) enterEscape() {
	p.utf8.reset()
	p.clearSequence()
	p.state = StateEscape
	p.appendRaw(0x1B)
}

func (p *Parser) enterState(s State) {
	p.clearSequence()
	p.state = s
}

// handleEscFromNonGround implements the "anywhere: ESC -> Escape" rule,
// except the more specific per-state overrides in OscString,
// DcsPassthrough, and SosPmApcString, each of which needs to see whether
// the following byte is a backslash before deciding the sequence is
// over.
func (p *Parser) handleEscFromNonGround() {
	switch p.state {
	case StateOscString:
		p.pendingOrigin = originOsc
		p.state = StateOscEscape
	case StateDcsPassthrough:
		p.pendingOrigin = originDcs
		p.state = StateOscEscape
	case StateSosPmApcString:
		p.pendingOrigin = originSosPmApc
		p.state = StateOscEscape
	default:
		p.enterEscape()
	}
}

func (p *Parser) cancel() {
	p.state = StateGround
	p.clearSequence()
}

// executeC0 runs a 7-bit C0 control's effect.
func (p *Parser) executeC0(b byte) {
	switch b {
	case 0x08:
		p.handler.HandleControl(Backspace)
	case 0x09:
		p.handler.HandleControl(Tab)
	case 0x0A:
		p.handler.HandleControl(LineFeed)
	case 0x0C:
		p.handler.HandleControl(FormFeed)
	case 0x0D:
		p.handler.HandleControl(CarriageReturn)
	case 0x0E:
		p.handler.HandleControl(ShiftOut)
	case 0x0F:
		p.handler.HandleControl(ShiftIn)
	case 0x07:
		p.handler.HandleControl(Bell)
	default:
		// Other C0 controls are recognized but have no effect in this
		// core (no reply/bell collaborator action defined for them).
	}
}

// executeC1 runs the 8-bit-control equivalent of a subset of C0/ESC
// effects for single-byte C1 codes that are not sequence introducers.
func (p *Parser) executeC1(b byte) {
	switch b {
	case 0x84: // IND
		p.emitEsc(EscIndex, []byte{b}, true)
	case 0x85: // NEL
		p.emitEsc(EscNextLine, []byte{b}, true)
	case 0x88: // HTS
		p.emitEsc(EscHorizontalTabSet, []byte{b}, true)
	case 0x8D: // RI
		p.emitEsc(EscReverseIndex, []byte{b}, true)
	default:
		// Recognized but not actionable at this granularity.
	}
}

func (p *Parser) emitEsc(kind EscKind, raw []byte, implemented bool) {
	p.handler.HandleEsc(EscMessage{Kind: kind, Raw: raw, Implemented: implemented})
}

// dispatchNonGround routes a byte to the state-specific step function
// for every state except Ground (handled above). ESC, CAN/SUB and C1
// bytes never reach it: PushByte hands them to handleEscFromNonGround,
// cancel and handleC1 first.
func (p *Parser) dispatchNonGround(b byte, class ByteClass) {
	p.appendRaw(b)
	// §4.1: outside Ground, GR (0xA0-0xFF) is treated identically to its
	// GL (0x20-0x7F) equivalent.
	eb, eclass := b, class
	if class == ClassGR {
		eb = b - 0x80
		eclass = classify(eb)
	}
	switch p.state {
	case StateEscape:
		p.stepEscape(eb, eclass)
	case StateEscapeIntermediate:
		p.stepEscapeIntermediate(eb, eclass)
	case StateCsiEntry, StateCsiParam, StateCsiIntermediate, StateCsiIgnore:
		p.stepCsi(eb, eclass)
	case StateDcsEntry, StateDcsParam, StateDcsIntermediate:
		p.stepDcsHead(eb, eclass)
	case StateDcsPassthrough:
		p.stepDcsPassthrough(b)
	case StateDcsIgnore:
		p.stepDcsIgnore(b)
	case StateOscString:
		p.stepOscString(b)
	case StateOscEscape:
		p.stepOscEscape(b)
	case StateSosPmApcString:
		// Collected and discarded: spec defines no emitted message type
		// for SOS/PM/APC strings.
	}
}
