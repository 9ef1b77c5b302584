// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/csi_test.go

package parser

import "testing"

func TestCsiDefaultParameterIsOne(t *testing.T) {
	p, h := newTestParser()
	p.PushBytes([]byte("\x1b[A"))
	msgs := h.csiMessages()
	if len(msgs) != 1 || msgs[0].Count != 1 {
		t.Fatalf("got %+v", msgs)
	}
}

func TestCsiEraseInDisplayModeAbsentDefaultsZero(t *testing.T) {
	p, h := newTestParser()
	p.PushBytes([]byte("\x1b[J"))
	msgs := h.csiMessages()
	if len(msgs) != 1 || msgs[0].Kind != CsiEraseInDisplay || msgs[0].Mode != 0 {
		t.Fatalf("got %+v", msgs)
	}
}

func TestCsiPrivateMarkerDecModeReset(t *testing.T) {
	p, h := newTestParser()
	p.PushBytes([]byte("\x1b[?25l"))
	msgs := h.csiMessages()
	if len(msgs) != 1 || msgs[0].Kind != CsiDecModeReset || len(msgs[0].Modes) != 1 || msgs[0].Modes[0] != 25 {
		t.Fatalf("got %+v", msgs)
	}
}

func TestCsiPrimaryVsSecondaryDeviceAttributes(t *testing.T) {
	p, h := newTestParser()
	p.PushBytes([]byte("\x1b[c\x1b[>c"))
	msgs := h.csiMessages()
	if len(msgs) != 2 {
		t.Fatalf("got %+v", msgs)
	}
	if msgs[0].Kind != CsiPrimaryDeviceAttributes {
		t.Errorf("got %+v", msgs[0])
	}
	if msgs[1].Kind != CsiSecondaryDeviceAttributes {
		t.Errorf("got %+v", msgs[1])
	}
}

func TestCsiDecstr(t *testing.T) {
	p, h := newTestParser()
	p.PushBytes([]byte("\x1b[!p"))
	msgs := h.csiMessages()
	if len(msgs) != 1 || msgs[0].Kind != CsiSoftTerminalReset || !msgs[0].Implemented {
		t.Fatalf("got %+v", msgs)
	}
}

func TestCsiScrollUpVsWindowManipulation(t *testing.T) {
	p, h := newTestParser()
	p.PushBytes([]byte("\x1b[3S"))
	msgs := h.csiMessages()
	if len(msgs) != 1 || msgs[0].Kind != CsiScrollUp || msgs[0].Count != 3 {
		t.Fatalf("got %+v", msgs)
	}
}

func TestCsiScrollDownVsWindowManipulation(t *testing.T) {
	p, h := newTestParser()
	p.PushBytes([]byte("\x1b[3T"))
	msgs := h.csiMessages()
	if len(msgs) != 1 || msgs[0].Kind != CsiScrollDown || msgs[0].Count != 3 {
		t.Fatalf("got %+v", msgs)
	}

	p2, h2 := newTestParser()
	p2.PushBytes([]byte("\x1b[1;2T"))
	msgs2 := h2.csiMessages()
	if len(msgs2) != 1 || msgs2[0].Kind != CsiWindowManipulation {
		t.Fatalf("got %+v", msgs2)
	}
}

func TestCsiSetScrollRegion(t *testing.T) {
	p, h := newTestParser()
	p.PushBytes([]byte("\x1b[5;20r"))
	msgs := h.csiMessages()
	if len(msgs) != 1 || msgs[0].Kind != CsiSetScrollRegion || msgs[0].Top != 5 || msgs[0].Bot != 20 {
		t.Fatalf("got %+v", msgs)
	}
}

func TestCsiUnknownFinalByteStillEmits(t *testing.T) {
	p, h := newTestParser()
	p.PushBytes([]byte("\x1b[5y"))
	msgs := h.csiMessages()
	if len(msgs) != 1 || msgs[0].Kind != CsiUnknown || msgs[0].Implemented {
		t.Fatalf("got %+v", msgs)
	}
}

func TestCsiIgnoreStateRecoversAtFinalByte(t *testing.T) {
	p, h := newTestParser()
	// Two private markers in a row: malformed per VT500 table, enters
	// CsiIgnore, consumed silently until the final byte returns to Ground.
	p.PushBytes([]byte("\x1b[?1?2A"))
	if len(h.csiMessages()) != 0 {
		t.Fatalf("expected no CSI message from malformed sequence, got %+v", h.csiMessages())
	}
	if p.state != StateGround {
		t.Errorf("expected Ground after ignore recovery, got %v", p.state)
	}
	// Parser should still accept subsequent well-formed input.
	p.PushBytes([]byte("\x1b[2B"))
	msgs := h.csiMessages()
	if len(msgs) != 1 || msgs[0].Kind != CsiCursorDown || msgs[0].Count != 2 {
		t.Fatalf("got %+v", msgs)
	}
}

func TestCsiCursorPositionReportVsPrivateCharsetQuery(t *testing.T) {
	p, h := newTestParser()
	p.PushBytes([]byte("\x1b[6n"))
	msgs := h.csiMessages()
	if len(msgs) != 1 || msgs[0].Kind != CsiCursorPositionReport {
		t.Fatalf("got %+v", msgs)
	}

	p2, h2 := newTestParser()
	p2.PushBytes([]byte("\x1b[?26n"))
	msgs2 := h2.csiMessages()
	if len(msgs2) != 1 || msgs2[0].Kind != CsiCharacterSetQuery {
		t.Fatalf("got %+v", msgs2)
	}
}
