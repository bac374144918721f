package binary

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/simonhull/uasset/internal/types"
)

// mockReader implements io.ReaderAt for testing.
type mockReader struct {
	data []byte
}

func (m *mockReader) ReadAt(p []byte, off int64) (n int, err error) {
	if off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n = copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// failingReader returns err from every read.
type failingReader struct {
	err error
}

func (f *failingReader) Read(p []byte) (int, error) { return 0, f.err }
func (f *failingReader) ReadAt(p []byte, off int64) (int, error) { return 0, f.err }

func TestSafeReader_ReadAt_Success(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	mock := &mockReader{data: data}
	sr := NewSafeReader(mock, int64(len(data)), "test.uasset")

	buf := make([]byte, 2)
	err := sr.ReadAt(buf, 0, "test read")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if buf[0] != 0x01 || buf[1] != 0x02 {
		t.Errorf("expected [0x01, 0x02], got [0x%02x, 0x%02x]", buf[0], buf[1])
	}
}

func TestSafeReader_ReadAt_OutOfBounds(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	mock := &mockReader{data: data}
	sr := NewSafeReader(mock, int64(len(data)), "test.uasset")

	tests := []struct {
		name string
		off  int64
		n    int
	}{
		{"offset past end", 10, 2},
		{"negative offset", -1, 2},
		{"read crosses end", 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sr.ReadAt(make([]byte, tt.n), tt.off, "out of bounds read")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, types.ErrParse) {
				t.Errorf("expected parse failure, got %v", err)
			}

			errMsg := err.Error()
			if !strings.Contains(errMsg, "test.uasset") {
				t.Errorf("error should contain filename: %v", errMsg)
			}
			if !strings.Contains(errMsg, "out of bounds read") {
				t.Errorf("error should contain context: %v", errMsg)
			}
		})
	}
}

func TestSafeReader_ReadAt_ShortRead(t *testing.T) {
	// Declared size is larger than the data actually available.
	sr := NewSafeReader(&mockReader{data: []byte{0x01, 0x02}}, 8, "short.uasset")

	err := sr.ReadAt(make([]byte, 4), 0, "magic")
	if !errors.Is(err, types.ErrParse) {
		t.Fatalf("expected parse failure, got %v", err)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected wrapped io.ErrUnexpectedEOF, got %v", err)
	}
}

func TestSafeReader_ReadAt_IOError(t *testing.T) {
	cause := errors.New("device gone")
	sr := NewSafeReader(&failingReader{err: cause}, 8, "dev.uasset")

	err := sr.ReadAt(make([]byte, 4), 0, "magic")
	if !errors.Is(err, types.ErrIO) {
		t.Fatalf("expected io failure, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be unwrapped, got %v", err)
	}
}

func TestReadStreamLE_Signed(t *testing.T) {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.LittleEndian, int32(-8))
	binary.Write(buf, binary.LittleEndian, uint32(0x9E2A83C1))
	binary.Write(buf, binary.LittleEndian, int16(-2))

	s := NewStream(buf, "test.uasset")

	legacy, err := ReadStreamLE[int32](s, "legacy version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if legacy != -8 {
		t.Errorf("legacy = %d, want -8", legacy)
	}

	magic, err := ReadStreamLE[uint32](s, "magic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if magic != 0x9E2A83C1 {
		t.Errorf("magic = 0x%08x, want 0x9e2a83c1", magic)
	}

	small, err := ReadStreamLE[int16](s, "int16")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if small != -2 {
		t.Errorf("int16 = %d, want -2", small)
	}

	if s.Offset() != 10 {
		t.Errorf("Offset() = %d, want 10", s.Offset())
	}
}

func TestReadStreamLE_NamedType(t *testing.T) {
	type revision int32

	s := NewStream(bytes.NewReader([]byte{0x0A, 0x02, 0x00, 0x00}), "")
	got, err := ReadStreamLE[revision](s, "file version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 522 {
		t.Errorf("got %d, want 522", got)
	}
}

func TestStream_Truncated(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"partial", []byte{0x01, 0x02}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStream(bytes.NewReader(tt.data), "trunc.uasset")
			_, err := ReadStreamLE[int32](s, "licensee version")
			if !errors.Is(err, types.ErrParse) {
				t.Fatalf("expected parse failure, got %v", err)
			}

			var he *types.HeaderError
			if !errors.As(err, &he) {
				t.Fatalf("expected *HeaderError, got %T", err)
			}
			if he.What != "licensee version" || he.Offset != 0 {
				t.Errorf("What = %q, Offset = %d", he.What, he.Offset)
			}
			if s.Offset() != int64(len(tt.data)) {
				t.Errorf("Offset() = %d, want %d", s.Offset(), len(tt.data))
			}
		})
	}
}

func TestStream_IOError(t *testing.T) {
	cause := errors.New("connection reset")
	s := NewStream(&failingReader{err: cause}, "")

	_, err := ReadStreamLE[uint32](s, "magic")
	if !errors.Is(err, types.ErrIO) {
		t.Fatalf("expected io failure, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause in chain, got %v", err)
	}
}

func TestChainReader_DefersError(t *testing.T) {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.LittleEndian, int32(7))

	cr := NewChainReader(NewStream(buf, "chain.uasset"))
	first := ReadChainedLE[int32](cr, "first")
	second := ReadChainedLE[int32](cr, "second")
	third := ReadChainedLE[int32](cr, "third")

	if first != 7 {
		t.Errorf("first = %d, want 7", first)
	}
	if second != 0 || third != 0 {
		t.Errorf("reads after failure should return zero, got %d and %d", second, third)
	}

	var he *types.HeaderError
	if !errors.As(cr.Error(), &he) {
		t.Fatalf("expected *HeaderError, got %v", cr.Error())
	}
	if he.What != "second" {
		t.Errorf("error should name the first failing read, got %q", he.What)
	}
	if cr.Offset() != 4 {
		t.Errorf("Offset() = %d, want 4", cr.Offset())
	}
}
