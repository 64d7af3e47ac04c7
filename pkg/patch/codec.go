package patch

import (
	"fmt"

	"github.com/graft-dev/graft/pkg/dom"
)

// Append encodes one mutation onto buf and returns the extended buffer.
//
// Layout: opcode byte, uvarint path length, uvarint path entries, then
// opcode-specific fields:
//
//	Append/Insert/Replace: svarint index, string html
//	Remove:                svarint index
//	Clear:                 -
//	SetText:               svarint index, string value
//	SetAttr:               string key, string value
//	RemoveAttr:            string key
func Append(buf []byte, m dom.Mutation) []byte {
	buf = append(buf, byte(m.Op))
	buf = appendUvarint(buf, uint64(len(m.Path)))
	for _, idx := range m.Path {
		buf = appendUvarint(buf, uint64(idx))
	}

	switch m.Op {
	case dom.MutAppend, dom.MutInsert, dom.MutReplace:
		buf = appendSvarint(buf, int64(m.Index))
		buf = appendString(buf, m.HTML)
	case dom.MutRemove:
		buf = appendSvarint(buf, int64(m.Index))
	case dom.MutClear:
		// No payload.
	case dom.MutSetText:
		buf = appendSvarint(buf, int64(m.Index))
		buf = appendString(buf, m.Value)
	case dom.MutSetAttr:
		buf = appendString(buf, m.Key)
		buf = appendString(buf, m.Value)
	case dom.MutRemoveAttr:
		buf = appendString(buf, m.Key)
	default:
		panic(fmt.Sprintf("patch: cannot encode op %d", m.Op))
	}

	return buf
}

// Encode encodes a frame: a uvarint mutation count followed by that many
// encoded mutations.
func Encode(ms []dom.Mutation) []byte {
	buf := appendUvarint(nil, uint64(len(ms)))
	for _, m := range ms {
		buf = Append(buf, m)
	}
	return buf
}

// Decode decodes a frame produced by Encode.
func Decode(buf []byte) ([]dom.Mutation, error) {
	count, n := decodeUvarint(buf)
	if n < 0 {
		return nil, varintErr(n)
	}
	buf = buf[n:]

	if count > uint64(len(buf)) {
		// Each mutation occupies at least one byte; a count beyond the
		// remaining input is corrupt, not merely short.
		return nil, fmt.Errorf("%w: frame declares %d mutations in %d bytes", ErrOverflow, count, len(buf))
	}

	ms := make([]dom.Mutation, 0, count)
	for i := uint64(0); i < count; i++ {
		m, used, err := decodeOne(buf)
		if err != nil {
			return nil, fmt.Errorf("mutation %d: %w", i, err)
		}
		ms = append(ms, m)
		buf = buf[used:]
	}
	return ms, nil
}

// decodeOne decodes a single mutation, returning it and the bytes consumed.
func decodeOne(buf []byte) (dom.Mutation, int, error) {
	var m dom.Mutation
	if len(buf) == 0 {
		return m, 0, ErrTruncated
	}

	m.Op = dom.MutationOp(buf[0])
	m.Index = -1
	used := 1

	pathLen, n := decodeUvarint(buf[used:])
	if n < 0 {
		return m, 0, varintErr(n)
	}
	used += n

	if pathLen > uint64(len(buf)-used) {
		return m, 0, fmt.Errorf("%w: path of %d entries in %d bytes", ErrOverflow, pathLen, len(buf)-used)
	}
	if pathLen > 0 {
		m.Path = make([]int, pathLen)
		for i := range m.Path {
			idx, n := decodeUvarint(buf[used:])
			if n < 0 {
				return m, 0, varintErr(n)
			}
			m.Path[i] = int(idx)
			used += n
		}
	}

	readIndex := func() error {
		idx, n := decodeSvarint(buf[used:])
		if n < 0 {
			return varintErr(n)
		}
		m.Index = int(idx)
		used += n
		return nil
	}
	readString := func(dst *string) error {
		s, n, err := decodeString(buf[used:])
		if err != nil {
			return err
		}
		*dst = s
		used += n
		return nil
	}

	switch m.Op {
	case dom.MutAppend, dom.MutInsert, dom.MutReplace:
		if err := readIndex(); err != nil {
			return m, 0, err
		}
		if err := readString(&m.HTML); err != nil {
			return m, 0, err
		}
	case dom.MutRemove:
		if err := readIndex(); err != nil {
			return m, 0, err
		}
	case dom.MutClear:
		// No payload.
	case dom.MutSetText:
		if err := readIndex(); err != nil {
			return m, 0, err
		}
		if err := readString(&m.Value); err != nil {
			return m, 0, err
		}
	case dom.MutSetAttr:
		if err := readString(&m.Key); err != nil {
			return m, 0, err
		}
		if err := readString(&m.Value); err != nil {
			return m, 0, err
		}
	case dom.MutRemoveAttr:
		if err := readString(&m.Key); err != nil {
			return m, 0, err
		}
	default:
		return m, 0, fmt.Errorf("%w: 0x%02x", ErrUnknownOp, byte(m.Op))
	}

	return m, used, nil
}

// appendString appends a uvarint-length-prefixed string.
func appendString(buf []byte, s string) []byte {
	buf = appendUvarint(buf, uint64(len(s)))
	return append(buf, s...)
}

// decodeString decodes a uvarint-length-prefixed string, returning the
// string and total bytes consumed.
func decodeString(buf []byte) (string, int, error) {
	l, n := decodeUvarint(buf)
	if n < 0 {
		return "", 0, varintErr(n)
	}
	if l > uint64(len(buf)-n) {
		return "", 0, fmt.Errorf("%w: string of %d bytes in %d", ErrOverflow, l, len(buf)-n)
	}
	return string(buf[n : n+int(l)]), n + int(l), nil
}

func varintErr(n int) error {
	if n == -2 {
		return fmt.Errorf("%w: varint too long", ErrOverflow)
	}
	return ErrTruncated
}
