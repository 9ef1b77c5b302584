// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/scenarios_test.go
// Summary: Literal byte-sequence end-to-end scenarios (spec §8, S1-S9).

package parser

import "testing"

func TestScenarioS1_CursorUp(t *testing.T) {
	p, h := newTestParser()
	p.PushBytes([]byte{0x1B, 0x5B, 0x35, 0x41})
	msgs := h.csiMessages()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 CSI message, got %d", len(msgs))
	}
	m := msgs[0]
	if m.Kind != CsiCursorUp || m.Count != 5 || !m.Implemented {
		t.Errorf("got %+v", m)
	}
	if len(m.Parameters) != 1 || m.Parameters[0].Value != 5 {
		t.Errorf("params: %+v", m.Parameters)
	}
	if string(m.Raw) != "\x1b[5A" {
		t.Errorf("raw: %q", m.Raw)
	}
}

func TestScenarioS2_CursorPosition(t *testing.T) {
	p, h := newTestParser()
	p.PushBytes([]byte("\x1b[10;20H"))
	msgs := h.csiMessages()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 CSI message, got %d", len(msgs))
	}
	m := msgs[0]
	if m.Kind != CsiCursorPosition || m.Row != 10 || m.Col != 20 || !m.Implemented {
		t.Errorf("got %+v", m)
	}
}

func TestScenarioS3_DecModeSet(t *testing.T) {
	p, h := newTestParser()
	p.PushBytes([]byte("\x1b[?1;2h"))
	msgs := h.csiMessages()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 CSI message, got %d", len(msgs))
	}
	m := msgs[0]
	if m.Kind != CsiDecModeSet || m.PrivateMarker != '?' || !m.Implemented {
		t.Errorf("got %+v", m)
	}
	if len(m.Modes) != 2 || m.Modes[0] != 1 || m.Modes[1] != 2 {
		t.Errorf("modes: %v", m.Modes)
	}
}

func TestScenarioS4_ExtendedRGBForeground(t *testing.T) {
	p, h := newTestParser()
	p.PushBytes([]byte("\x1b[38;2;255;0;0m"))
	seqs := h.sgrMessages()
	if len(seqs) != 1 {
		t.Fatalf("expected 1 SGR sequence, got %d", len(seqs))
	}
	s := seqs[0]
	if !s.Implemented || len(s.Messages) != 1 {
		t.Fatalf("got %+v", s)
	}
	m := s.Messages[0]
	if m.Kind != SgrForegroundColor || m.Color.Mode != ColorRGB || m.Color.R != 255 || m.Color.G != 0 || m.Color.B != 0 {
		t.Errorf("got %+v", m)
	}
}

func TestScenarioS5_ColonUnderlineCurly(t *testing.T) {
	p, h := newTestParser()
	p.PushBytes([]byte("\x1b[4:3m"))
	seqs := h.sgrMessages()
	if len(seqs) != 1 || len(seqs[0].Messages) != 1 {
		t.Fatalf("got %+v", seqs)
	}
	m := seqs[0].Messages[0]
	if m.Kind != SgrUnderline || m.Underline != UnderlineCurly || !m.Implemented {
		t.Errorf("got %+v", m)
	}
}

func TestScenarioS6_OscSetTitle(t *testing.T) {
	p, h := newTestParser()
	p.PushBytes([]byte("\x1b]0;Test\x07"))
	msgs := h.oscMessages()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 OSC message, got %d", len(msgs))
	}
	m := msgs[0]
	if m.Kind != OscSetTitleAndIcon || m.Title != "Test" || m.Terminator != TerminatorBel || !m.Implemented {
		t.Errorf("got %+v", m)
	}
}

func TestScenarioS7_UTF8(t *testing.T) {
	p, h := newTestParser()
	p.PushBytes([]byte{0xC3, 0xA9})
	chars := h.normalChars()
	if len(chars) != 1 || chars[0].CodePoint != 0x00E9 {
		t.Fatalf("got %+v", chars)
	}

	p2, h2 := newTestParser()
	p2.PushBytes([]byte{0xC3, 0x41})
	chars2 := h2.normalChars()
	if len(chars2) != 2 || chars2[0].CodePoint != 0xC3 || chars2[1].CodePoint != 0x41 {
		t.Fatalf("got %+v", chars2)
	}
}

func TestScenarioS8_UnknownFinal(t *testing.T) {
	p, h := newTestParser()
	p.PushBytes([]byte("\x1b[99z"))
	msgs := h.csiMessages()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 CSI message, got %d", len(msgs))
	}
	m := msgs[0]
	if m.Kind != CsiUnknown || m.Final != 'z' || m.Implemented {
		t.Errorf("got %+v", m)
	}
	if len(m.Parameters) != 1 || m.Parameters[0].Value != 99 {
		t.Errorf("params: %+v", m.Parameters)
	}
}

func TestScenarioS9_CancelMidCsi(t *testing.T) {
	p, h := newTestParser()
	p.PushBytes([]byte{0x1B, 0x5B, 0x33, 0x31, 0x18})
	if len(h.messages) != 0 {
		t.Fatalf("expected no messages, got %+v", h.messages)
	}
	if p.state != StateGround {
		t.Errorf("expected Ground, got %v", p.state)
	}
}
