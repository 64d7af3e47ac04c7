// Package patch encodes tree mutations into compact binary frames for
// streaming to live-view clients.
//
// Each mutation is encoded as an opcode byte followed by a varint index
// path addressing the target element, then opcode-specific fields. Strings
// are length-prefixed with unsigned varints; child indexes use zigzag
// varints so the -1 sentinel stays one byte. A frame carries a varint
// count followed by that many mutations, so all edits from one update can
// travel in a single websocket message.
package patch
