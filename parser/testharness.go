// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/testharness.go
// Summary: Test-only recording Handler, grounded on the teacher's
// TestHarness shape (apps/texelterm/parser/testharness.go) - a small
// inspectable wrapper the table-driven tests drive and assert against.

package parser

// recordedMessage tags one message recorded by recordingHandler so
// table-driven tests can assert on "the Nth message was a CSI of kind
// X" without a type switch at every call site.
type recordedMessage struct {
	normal *NormalCharacter
	ctrl   *ControlKind
	esc    *EscMessage
	csi    *CsiMessage
	sgr    *SgrSequence
	osc    *OscMessage
	dcs    *DcsMessage
}

// recordingHandler implements Handler by appending every message it
// receives, in arrival order, to messages.
type recordingHandler struct {
	messages []recordedMessage
}

func (h *recordingHandler) HandleNormalCharacter(m NormalCharacter) {
	h.messages = append(h.messages, recordedMessage{normal: &m})
}
func (h *recordingHandler) HandleControl(c ControlKind) {
	h.messages = append(h.messages, recordedMessage{ctrl: &c})
}
func (h *recordingHandler) HandleEsc(m EscMessage) {
	h.messages = append(h.messages, recordedMessage{esc: &m})
}
func (h *recordingHandler) HandleCsi(m CsiMessage) {
	h.messages = append(h.messages, recordedMessage{csi: &m})
}
func (h *recordingHandler) HandleSgr(m SgrSequence) {
	h.messages = append(h.messages, recordedMessage{sgr: &m})
}
func (h *recordingHandler) HandleOsc(m OscMessage) {
	h.messages = append(h.messages, recordedMessage{osc: &m})
}
func (h *recordingHandler) HandleDcs(m DcsMessage) {
	h.messages = append(h.messages, recordedMessage{dcs: &m})
}

func (h *recordingHandler) csiMessages() []CsiMessage {
	var out []CsiMessage
	for _, m := range h.messages {
		if m.csi != nil {
			out = append(out, *m.csi)
		}
	}
	return out
}

func (h *recordingHandler) sgrMessages() []SgrSequence {
	var out []SgrSequence
	for _, m := range h.messages {
		if m.sgr != nil {
			out = append(out, *m.sgr)
		}
	}
	return out
}

func (h *recordingHandler) oscMessages() []OscMessage {
	var out []OscMessage
	for _, m := range h.messages {
		if m.osc != nil {
			out = append(out, *m.osc)
		}
	}
	return out
}

func (h *recordingHandler) dcsMessages() []DcsMessage {
	var out []DcsMessage
	for _, m := range h.messages {
		if m.dcs != nil {
			out = append(out, *m.dcs)
		}
	}
	return out
}

func (h *recordingHandler) normalChars() []NormalCharacter {
	var out []NormalCharacter
	for _, m := range h.messages {
		if m.normal != nil {
			out = append(out, *m.normal)
		}
	}
	return out
}

func (h *recordingHandler) controls() []ControlKind {
	var out []ControlKind
	for _, m := range h.messages {
		if m.ctrl != nil {
			out = append(out, *m.ctrl)
		}
	}
	return out
}

func newTestParser() (*Parser, *recordingHandler) {
	h := &recordingHandler{}
	p := New(h, Options{})
	return p, h
}
