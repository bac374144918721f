// Package header decodes the version block at the start of a package file.
//
// Layout (little-endian, offsets in bytes):
//
//	 0     uint32  magic, 0x9E2A83C1
//	 4     int32   legacy version, -6..-8
//	 8     int32   legacy UE3 version (ignored)
//	12     int32   UE4 file version
//	16     int32   UE5 file version, only when legacy version <= -8
//	16/20  int32   licensee version
package header

import (
	"github.com/simonhull/uasset/internal/binary"
	"github.com/simonhull/uasset/internal/types"
	"github.com/simonhull/uasset/objversion"
)

// PackageFileMagic identifies a package file. Read as little-endian it is
// this value; a big-endian package shows it byte-swapped.
const PackageFileMagic uint32 = 0x9E2A83C1

// Legacy version bounds. The value counts down as header fields were added.
const (
	MinLegacyVersion int32 = -8
	MaxLegacyVersion int32 = -6

	// LegacyVersionUE5 is the first legacy version that carries a UE5 file version.
	LegacyVersionUE5 int32 = -8
)

// Summary is the validated version tuple of a package.
type Summary struct {
	LegacyVersion   int32
	FileVersion     objversion.ObjectVersion
	FileVersionUE5  objversion.ObjectVersionUE5 // zero when HasUE5 is false
	HasUE5          bool
	LicenseeVersion int32
}

// Size returns the number of bytes the header occupies for a legacy version.
func Size(legacyVersion int32) int64 {
	if legacyVersion <= LegacyVersionUE5 {
		return 24
	}
	return 20
}

// Decode reads and validates the version block from s.
//
// The checks run in a fixed order and the first failure wins. Nothing is
// rewound on failure: bytes already consumed from s stay consumed.
func Decode(s *binary.Stream) (Summary, error) {
	magic, err := binary.ReadStreamLE[uint32](s, "package magic")
	if err != nil {
		return Summary{}, err
	}
	if magic != PackageFileMagic {
		return Summary{}, &types.HeaderError{Kind: types.KindInvalidFile, Path: s.Path(), Offset: 0}
	}

	legacy, err := binary.ReadStreamLE[int32](s, "legacy version")
	if err != nil {
		return Summary{}, err
	}
	if legacy < MinLegacyVersion || legacy > MaxLegacyVersion {
		return Summary{}, &types.HeaderError{
			Kind:   types.KindUnsupportedLegacyVersion,
			Path:   s.Path(),
			Offset: 4,
			Value:  legacy,
		}
	}

	cr := binary.NewChainReader(s)
	_ = binary.ReadChainedLE[int32](cr, "legacy UE3 version")
	rawUE4 := binary.ReadChainedLE[int32](cr, "UE4 file version")
	var rawUE5 int32
	if legacy <= LegacyVersionUE5 {
		rawUE5 = binary.ReadChainedLE[int32](cr, "UE5 file version")
	}
	licensee := binary.ReadChainedLE[int32](cr, "licensee version")
	if err := cr.Error(); err != nil {
		return Summary{}, err
	}

	// All three zero is a deliberately unversioned package. A zero UE4
	// version on its own is reported separately below.
	if rawUE4 == 0 && rawUE5 == 0 && licensee == 0 {
		return Summary{}, &types.HeaderError{Kind: types.KindUnversionedAsset, Path: s.Path(), Offset: 12}
	}

	if rawUE4 == 0 {
		return Summary{}, unsupportedUE4(s, 0)
	}
	ue4, ok := objversion.LookupObjectVersion(rawUE4)
	if !ok {
		return Summary{}, unsupportedUE4(s, rawUE4)
	}

	sum := Summary{
		LegacyVersion:   legacy,
		FileVersion:     ue4,
		LicenseeVersion: licensee,
	}

	if rawUE5 != 0 {
		ue5, ok := objversion.LookupObjectVersionUE5(rawUE5)
		if !ok {
			return Summary{}, &types.HeaderError{
				Kind:   types.KindUnsupportedFileVersionUE5,
				Path:   s.Path(),
				Offset: 16,
				Value:  rawUE5,
			}
		}
		sum.FileVersionUE5 = ue5
		sum.HasUE5 = true
	}

	return sum, nil
}

func unsupportedUE4(s *binary.Stream, raw int32) error {
	return &types.HeaderError{
		Kind:   types.KindUnsupportedFileVersion,
		Path:   s.Path(),
		Offset: 12,
		Value:  raw,
	}
}
