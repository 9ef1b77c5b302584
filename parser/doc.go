// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/doc.go
// Summary: Package parser is a byte-oriented, incremental VT500-family
// terminal escape-sequence recognizer.
// Usage: Feed PTY bytes in with PushBytes/PushByte; implement Handler to
// receive typed messages back.
// Notes: Screen/grid state, rendering, and reply-byte generation are the
// caller's concern - this package only recognizes and classifies.
package parser
