package binary

import "encoding/binary"

// Endianness represents byte order for multi-byte values.
type Endianness int

const (
	// LittleEndian uses little-endian byte order.
	// Used by: every package file this library accepts.
	LittleEndian Endianness = iota

	// BigEndian uses big-endian byte order.
	// Used by: packages cooked for some legacy console targets. Detected, not decoded.
	BigEndian
)

func (e Endianness) String() string {
	if e == BigEndian {
		return "big-endian"
	}
	return "little-endian"
}

// ByteOrder returns the encoding/binary order for e.
func (e Endianness) ByteOrder() binary.ByteOrder {
	if e == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// ReadLE reads a numeric value of type T at the given offset using little-endian byte order.
//
// This is a convenience wrapper for ReadEndian with LittleEndian.
//
// Example:
//
//	magic, err := binary.ReadLE[uint32](sr, 0, "package magic")
func ReadLE[T Integer](sr *SafeReader, off int64, what string) (T, error) {
	return ReadEndian[T](sr, off, what, LittleEndian)
}

// ReadBE reads a numeric value of type T at the given offset using big-endian byte order.
//
// This is a convenience wrapper for ReadEndian with BigEndian.
func ReadBE[T Integer](sr *SafeReader, off int64, what string) (T, error) {
	return ReadEndian[T](sr, off, what, BigEndian)
}

// ReadEndian reads a numeric value of type T at the given offset with specified byte order.
//
// This is the low-level function used by ReadLE and ReadBE.
// Most code should use the convenience wrappers instead.
func ReadEndian[T Integer](sr *SafeReader, off int64, what string, endian Endianness) (T, error) {
	var zero T
	buf := make([]byte, binary.Size(zero))
	if err := sr.ReadAt(buf, off, what); err != nil {
		return zero, err
	}
	return decode[T](buf, endian.ByteOrder()), nil
}
