package uasset

import (
	"io"

	"github.com/simonhull/uasset/internal/binary"
	"github.com/simonhull/uasset/internal/header"
	"github.com/simonhull/uasset/internal/types"
)

// ByteOrder is an alias to binary.Endianness.
type ByteOrder = binary.Endianness

// Re-export byte order constants.
const (
	LittleEndian = binary.LittleEndian
	BigEndian    = binary.BigEndian
)

// PackageFileMagic is the value of the first four bytes of a package,
// read little-endian.
const PackageFileMagic = header.PackageFileMagic

// DetectByteOrder reports which byte order the package at r was written in,
// without consuming a stream.
//
// Only little-endian packages can be opened with NewReader. A big-endian
// result lets callers tell a console-cooked package apart from data that is
// not a package at all, which is reported as ErrInvalidFile.
func DetectByteOrder(r io.ReaderAt, size int64, path string) (ByteOrder, error) {
	sr := binary.NewSafeReader(r, size, path)

	magic, err := binary.ReadLE[uint32](sr, 0, "package magic")
	if err != nil {
		return LittleEndian, err
	}

	switch magic {
	case header.PackageFileMagic:
		return LittleEndian, nil
	case swap32(header.PackageFileMagic):
		return BigEndian, nil
	}
	return LittleEndian, &types.HeaderError{Kind: types.KindInvalidFile, Path: path}
}

func swap32(v uint32) uint32 {
	return v>>24 | (v>>8)&0xFF00 | (v<<8)&0xFF0000 | v<<24
}
