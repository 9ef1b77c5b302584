// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/esc.go
// Summary: ESC Dispatcher - Escape/EscapeIntermediate state handling and
// the typed ESC messages they produce.
// Usage: Reached from Escape once the second byte of "ESC x" arrives.
// Notes: Grounded on apps/texelterm/parser/parser.go's StateEscape
// switch, generalized to the intermediate-collecting forms (charset
// designation) per spec §4.3.

package parser

func (p *Parser) stepEscape(b byte, class ByteClass) {
	switch b {
	case '[':
		p.enterState(StateCsiEntry)
		p.appendRaw(0x1B)
		p.appendRaw(b)
		return
	case ']':
		p.enterState(StateOscString)
		p.appendRaw(0x1B)
		p.appendRaw(b)
		return
	case 'P':
		p.enterState(StateDcsEntry)
		p.appendRaw(0x1B)
		p.appendRaw(b)
		return
	case '7':
		p.finishEsc(EscSaveCursor, true)
		return
	case '8':
		p.finishEsc(EscRestoreCursor, true)
		return
	case 'D':
		p.finishEsc(EscIndex, true)
		return
	case 'M':
		p.finishEsc(EscReverseIndex, true)
		return
	case 'E':
		p.finishEsc(EscNextLine, true)
		return
	case 'H':
		p.finishEsc(EscHorizontalTabSet, true)
		return
	case 'c':
		p.finishEsc(EscResetToInitialState, true)
		return
	}

	switch class {
	case ClassIntermediate:
		p.intermediates = append(p.intermediates, b)
		p.state = StateEscapeIntermediate
	case ClassC0, ClassBEL:
		if p.opts.processC0MidSequence() {
			p.executeC0(b)
		}
	case ClassDEL:
		// ignored
	default:
		// Any other 0x30-0x7E: opaque, recognized but not acted upon.
		p.finishEsc(EscOpaque, false)
	}
}

func (p *Parser) stepEscapeIntermediate(b byte, class ByteClass) {
	switch class {
	case ClassIntermediate:
		p.intermediates = append(p.intermediates, b)
		return
	case ClassC0, ClassBEL:
		if p.opts.processC0MidSequence() {
			p.executeC0(b)
		}
		return
	case ClassDEL:
		return
	}

	// Finalizing byte (0x30-0x7E). '(' ')' '*' '+' select a G-set slot.
	if len(p.intermediates) == 1 {
		switch p.intermediates[0] {
		case '(':
			p.finishDesignate(SlotG0, b)
			return
		case ')':
			p.finishDesignate(SlotG1, b)
			return
		case '*':
			p.finishDesignate(SlotG2, b)
			return
		case '+':
			p.finishDesignate(SlotG3, b)
			return
		}
	}
	p.finishEsc(EscOpaque, false)
}

func (p *Parser) finishDesignate(slot CharsetSlot, charset byte) {
	raw := append([]byte(nil), p.raw...)
	p.handler.HandleEsc(EscMessage{
		Kind:        EscDesignateCharacterSet,
		Raw:         raw,
		Implemented: true,
		Slot:        slot,
		Charset:     charset,
	})
	p.state = StateGround
	p.clearSequence()
}

func (p *Parser) finishEsc(kind EscKind, implemented bool) {
	raw := append([]byte(nil), p.raw...)
	if kind == EscOpaque {
		p.logf("vtparse: unrecognized ESC sequence %q", raw)
	}
	p.handler.HandleEsc(EscMessage{Kind: kind, Raw: raw, Implemented: implemented})
	p.state = StateGround
	p.clearSequence()
}
