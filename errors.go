package uasset

import (
	"github.com/simonhull/uasset/internal/types"
)

// HeaderError is an alias to types.HeaderError.
// Re-exporting from internal/types to maintain public API.
type HeaderError = types.HeaderError

// ErrorKind is an alias to types.ErrorKind.
type ErrorKind = types.ErrorKind

// Re-export all error kinds.
const (
	KindInvalidFile               = types.KindInvalidFile
	KindUnsupportedLegacyVersion  = types.KindUnsupportedLegacyVersion
	KindUnversionedAsset          = types.KindUnversionedAsset
	KindUnsupportedFileVersion    = types.KindUnsupportedFileVersion
	KindUnsupportedFileVersionUE5 = types.KindUnsupportedFileVersionUE5
	KindParse                     = types.KindParse
	KindIO                        = types.KindIO
)

// Sentinels for errors.Is. Every error NewReader returns matches exactly one.
var (
	ErrInvalidFile               = types.ErrInvalidFile
	ErrUnsupportedLegacyVersion  = types.ErrUnsupportedLegacyVersion
	ErrUnversionedAsset          = types.ErrUnversionedAsset
	ErrUnsupportedFileVersion    = types.ErrUnsupportedFileVersion
	ErrUnsupportedFileVersionUE5 = types.ErrUnsupportedFileVersionUE5
	ErrParse                     = types.ErrParse
	ErrIO                        = types.ErrIO
)

// KindOf returns the kind of the first *HeaderError in err's chain, or 0.
func KindOf(err error) ErrorKind {
	return types.KindOf(err)
}
