// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/dcs.go
// Summary: DCS Collector (§4.8) - DcsEntry/Param/Intermediate head
// recognition (shared shape with CSI) plus DcsPassthrough payload
// collection.
// Usage: Reached from Escape on 'P' or the 0x90 C1 introducer.
// Notes: The teacher's handleDCS (apps/texelterm/parser/parser.go) is a
// stub that only logs; this generalizes the head recognition the
// teacher already built for CSI into the DCS command/parameter/
// intermediate framing §4.8 requires, and actually frames+emits the
// payload instead of discarding it.

package parser

// stepDcsHead advances DcsEntry/DcsParam/DcsIntermediate, identical
// parameter/intermediate/final handling to CSI (§4.3), fixing the
// command byte and transitioning to DcsPassthrough on the final byte.
func (p *Parser) stepDcsHead(b byte, class ByteClass) {
	switch class {
	case ClassC0, ClassBEL:
		if p.opts.processC0MidSequence() {
			p.executeC0(b)
		}
		return
	case ClassDEL:
		return
	case ClassParameter:
		if b >= 0x3C && b <= 0x3F {
			if !p.paramBytesAt0 && p.state == StateDcsEntry {
				p.privateMarker = b
				p.paramBytesAt0 = true
				p.state = StateDcsParam
			} else {
				p.state = StateDcsIgnore
			}
			return
		}
		if p.state == StateDcsIntermediate {
			p.state = StateDcsIgnore
			return
		}
		if b == ':' {
			p.hasColon = true
		}
		p.paramText = append(p.paramText, b)
		p.paramBytesAt0 = true
		if p.state == StateDcsEntry {
			p.state = StateDcsParam
		}
		return
	case ClassIntermediate:
		p.intermediates = append(p.intermediates, b)
		if p.state != StateDcsIntermediate {
			p.state = StateDcsIntermediate
		}
		return
	}

	// Final byte: fix the command character and enter passthrough.
	p.dcsCommand = b
	p.dcsIntermediates = append([]byte(nil), p.intermediates...)
	p.dcsParams = parseParams(p.paramText, p.opts.MaxParameters)
	p.dcsPrivate = p.privateMarker
	p.stringPayload = p.stringPayload[:0]
	p.state = StateDcsPassthrough
}

func (p *Parser) stepDcsPassthrough(b byte) {
	switch b {
	case 0x07: // BEL terminates, same as OSC
		p.finishDcs(TerminatorBel)
	default:
		if len(p.stringPayload) < p.opts.MaxOSCPayloadLength {
			p.stringPayload = append(p.stringPayload, b)
		} else {
			p.overflowed = true
		}
	}
}

func (p *Parser) stepDcsIgnore(b byte) {
	// Consumed and discarded until the whole sequence is cancelled by
	// CAN/SUB or ESC (handled upstream in PushByte/handleEscFromNonGround).
	_ = b
}

func (p *Parser) finishDcs(term OscTerminator) {
	raw := append([]byte(nil), p.raw...)
	payload := append([]byte(nil), p.stringPayload...)
	command := p.dcsCommand
	intermediates := p.dcsIntermediates
	params := p.dcsParams
	private := p.dcsPrivate
	overflowed := p.overflowed
	p.state = StateGround
	p.clearSequence()

	msg := DcsMessage{
		Raw:           raw,
		Terminator:    term,
		Command:       command,
		PrivateMarker: private,
		Intermediates: intermediates,
		Parameters:    params,
		Implemented:   false,
	}
	if !overflowed {
		msg.Payload = payload
	} else {
		p.logf("vtparse: DCS payload exceeded %d bytes, truncated", p.opts.MaxOSCPayloadLength)
	}
	p.handler.HandleDcs(msg)
}
