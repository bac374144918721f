// Package binary provides type-safe binary reading primitives with bounds checking
package binary

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/simonhull/uasset/internal/types"
)

// Integer is the set of fixed-width integers the readers decode.
type Integer interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

// SafeReader wraps io.ReaderAt with bounds checking and helpful error messages.
type SafeReader struct {
	r    io.ReaderAt
	path string
	size int64
}

// NewSafeReader creates a new SafeReader.
func NewSafeReader(r io.ReaderAt, size int64, path string) *SafeReader {
	return &SafeReader{
		r:    r,
		size: size,
		path: path,
	}
}

// Path returns the file path associated with this reader.
func (sr *SafeReader) Path() string {
	return sr.path
}

// Size returns the size the reader was created with.
func (sr *SafeReader) Size() int64 {
	return sr.size
}

// ReadAt reads bytes at the given offset with context for error messages.
func (sr *SafeReader) ReadAt(b []byte, off int64, what string) error {
	if off < 0 || off >= sr.size {
		return &types.HeaderError{
			Kind:   types.KindParse,
			Path:   sr.path,
			What:   what,
			Offset: off,
			Err:    fmt.Errorf("offset out of bounds (file size: %d)", sr.size),
		}
	}

	if off+int64(len(b)) > sr.size {
		return &types.HeaderError{
			Kind:   types.KindParse,
			Path:   sr.path,
			What:   what,
			Offset: off,
			Err:    fmt.Errorf("read of %d bytes would exceed file size %d", len(b), sr.size),
		}
	}

	n, err := sr.r.ReadAt(b, off)
	if err != nil && err != io.EOF {
		return &types.HeaderError{Kind: types.KindIO, Path: sr.path, What: what, Offset: off, Err: err}
	}

	if n < len(b) {
		return &types.HeaderError{
			Kind:   types.KindParse,
			Path:   sr.path,
			What:   what,
			Offset: off,
			Err:    fmt.Errorf("short read: got %d bytes, expected %d: %w", n, len(b), io.ErrUnexpectedEOF),
		}
	}

	return nil
}

// Stream reads fixed-width values sequentially from an io.Reader, tracking
// the offset so failures can say where they happened.
//
// Stream never seeks; bytes it consumes are gone from the underlying reader.
type Stream struct {
	r      io.Reader
	path   string
	offset int64
}

// NewStream creates a Stream whose offsets start at zero.
func NewStream(r io.Reader, path string) *Stream {
	return &Stream{r: r, path: path}
}

// Offset returns the number of bytes consumed so far.
func (s *Stream) Offset() int64 {
	return s.offset
}

// Path returns the file path associated with this stream.
func (s *Stream) Path() string {
	return s.path
}

// ReadFull fills b from the stream.
//
// Running out of data is a KindParse failure; any other error from the
// underlying reader is KindIO.
func (s *Stream) ReadFull(b []byte, what string) error {
	off := s.offset
	n, err := io.ReadFull(s.r, b)
	s.offset += int64(n)
	if err == nil {
		return nil
	}

	kind := types.KindIO
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		kind = types.KindParse
	}
	return &types.HeaderError{Kind: kind, Path: s.path, What: what, Offset: off, Err: err}
}

// ReadStreamLE reads a little-endian value of type T and advances the stream.
func ReadStreamLE[T Integer](s *Stream, what string) (T, error) {
	var zero T
	buf := make([]byte, binary.Size(zero))
	if err := s.ReadFull(buf, what); err != nil {
		return zero, err
	}
	return decode[T](buf, binary.LittleEndian), nil
}

// ChainReader allows chaining multiple reads with deferred error checking.
// This avoids repetitive "if err != nil" checks.
type ChainReader struct {
	*Stream
	err error
}

// NewChainReader creates a new ChainReader.
func NewChainReader(s *Stream) *ChainReader {
	return &ChainReader{Stream: s}
}

// ReadChainedLE reads a little-endian value with deferred error checking.
// If a previous read failed, returns zero value without attempting read.
func ReadChainedLE[T Integer](cr *ChainReader, what string) T {
	if cr.err != nil {
		var zero T
		return zero
	}

	val, err := ReadStreamLE[T](cr.Stream, what)
	if err != nil {
		cr.err = err
		var zero T
		return zero
	}

	return val
}

// Error returns the accumulated error, if any.
func (cr *ChainReader) Error() error {
	return cr.err
}

// decode converts len(buf) bytes to T. len(buf) must equal the size of T.
func decode[T Integer](buf []byte, order binary.ByteOrder) T {
	switch len(buf) {
	case 1:
		return T(buf[0])
	case 2:
		return T(order.Uint16(buf))
	case 4:
		return T(order.Uint32(buf))
	default:
		return T(order.Uint64(buf))
	}
}
