package types

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a header failure. The set is closed.
type ErrorKind int

const (
	// KindInvalidFile means the magic did not match: not a package file.
	KindInvalidFile ErrorKind = iota + 1
	// KindUnsupportedLegacyVersion means the legacy version is outside [-8, -6].
	KindUnsupportedLegacyVersion
	// KindUnversionedAsset means the file, UE5 and licensee versions were all zero.
	KindUnversionedAsset
	// KindUnsupportedFileVersion means the UE4 file version is zero or unknown.
	KindUnsupportedFileVersion
	// KindUnsupportedFileVersionUE5 means the UE5 file version is unknown.
	KindUnsupportedFileVersionUE5
	// KindParse means a fixed-width read ran past the end of the data.
	KindParse
	// KindIO means the byte source itself failed.
	KindIO
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidFile:
		return "invalid file"
	case KindUnsupportedLegacyVersion:
		return "unsupported legacy version"
	case KindUnversionedAsset:
		return "unversioned asset"
	case KindUnsupportedFileVersion:
		return "unsupported UE4 file version"
	case KindUnsupportedFileVersionUE5:
		return "unsupported UE5 file version"
	case KindParse:
		return "parse failure"
	case KindIO:
		return "io failure"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Sentinels for errors.Is. A *HeaderError matches the sentinel of its Kind.
var (
	ErrInvalidFile               = errors.New("data is not a uasset")
	ErrUnsupportedLegacyVersion  = errors.New("unsupported legacy version")
	ErrUnversionedAsset          = errors.New("asset saved without asset version information")
	ErrUnsupportedFileVersion    = errors.New("unsupported UE4 file version")
	ErrUnsupportedFileVersionUE5 = errors.New("unsupported UE5 file version")
	ErrParse                     = errors.New("failed to parse data")
	ErrIO                        = errors.New("i/o failure")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case KindInvalidFile:
		return ErrInvalidFile
	case KindUnsupportedLegacyVersion:
		return ErrUnsupportedLegacyVersion
	case KindUnversionedAsset:
		return ErrUnversionedAsset
	case KindUnsupportedFileVersion:
		return ErrUnsupportedFileVersion
	case KindUnsupportedFileVersionUE5:
		return ErrUnsupportedFileVersionUE5
	case KindParse:
		return ErrParse
	case KindIO:
		return ErrIO
	}
	return nil
}

// HeaderError is returned when a package header cannot be accepted.
//
// Value carries the raw offending integer for the unsupported-version kinds.
// What, Offset and Err describe the failing read for KindParse and KindIO.
type HeaderError struct {
	Kind   ErrorKind
	Path   string
	What   string
	Offset int64
	Value  int32
	Err    error
}

func (e *HeaderError) Error() string {
	msg := e.message()
	if e.Path != "" {
		return e.Path + ": " + msg
	}
	return msg
}

func (e *HeaderError) message() string {
	switch e.Kind {
	case KindInvalidFile:
		return "data is not a uasset"
	case KindUnsupportedLegacyVersion:
		return fmt.Sprintf("asset has unsupported legacy version value %d", e.Value)
	case KindUnversionedAsset:
		return "asset saved without asset version information"
	case KindUnsupportedFileVersion:
		return fmt.Sprintf("asset has unsupported UE4 file version %d", e.Value)
	case KindUnsupportedFileVersionUE5:
		return fmt.Sprintf("asset has unsupported UE5 file version %d", e.Value)
	case KindParse:
		return fmt.Sprintf("failed to parse %s at offset %d: %v", e.What, e.Offset, e.Err)
	case KindIO:
		return fmt.Sprintf("failed to read %s at offset %d: %v", e.What, e.Offset, e.Err)
	default:
		return e.Kind.String()
	}
}

// Unwrap returns the underlying cause, if any.
func (e *HeaderError) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinel, so errors.Is(err, ErrUnversionedAsset) works
// without a type assertion.
func (e *HeaderError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf returns the kind of the first *HeaderError in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var he *HeaderError
	if errors.As(err, &he) {
		return he.Kind
	}
	return 0
}
