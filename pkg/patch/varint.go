package patch

// MaxVarintLen is the maximum number of bytes a varint can occupy.
// A uint64 requires at most 10 bytes in varint encoding.
const MaxVarintLen = 10

// appendUvarint appends v to buf in varint encoding: 7 bits of data per
// byte, MSB indicates continuation.
func appendUvarint(buf []byte, v uint64) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}
	return append(buf, byte(v))
}

// decodeUvarint decodes an unsigned varint from buf.
// Returns (value, bytesRead). If bytesRead < 0, decoding failed:
//   - -1: buffer too short (incomplete varint)
//   - -2: varint overflow (more than 10 bytes)
func decodeUvarint(buf []byte) (uint64, int) {
	var v uint64
	var shift uint

	for i, b := range buf {
		if i >= MaxVarintLen {
			return 0, -2 // Overflow
		}
		v |= uint64(b&0x7F) << shift
		if b < 0x80 {
			return v, i + 1
		}
		shift += 7
	}
	return 0, -1 // Incomplete
}

// appendSvarint appends v using ZigZag encoding, which maps signed
// integers to unsigned: 0->0, -1->1, 1->2, -2->3, 2->4, etc.
func appendSvarint(buf []byte, v int64) []byte {
	uv := uint64((v << 1) ^ (v >> 63))
	return appendUvarint(buf, uv)
}

// decodeSvarint decodes a ZigZag-encoded signed varint.
// Returns (value, bytesRead). Negative bytesRead indicates error
// (see decodeUvarint).
func decodeSvarint(buf []byte) (int64, int) {
	uv, n := decodeUvarint(buf)
	if n < 0 {
		return 0, n
	}
	return int64(uv>>1) ^ -int64(uv&1), n
}
