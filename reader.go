package uasset

import (
	"io"

	"github.com/simonhull/uasset/internal/binary"
	"github.com/simonhull/uasset/internal/header"
	"github.com/simonhull/uasset/objversion"
)

// Reader is a package byte stream whose header has been validated.
//
// Reader answers version queries for the decoders that parse the rest of
// the package, and passes Read and Seek through to the source it wraps:
//
//	r, err := uasset.NewReader(f)
//	if err != nil {
//		return err
//	}
//	if r.WasSerializedAtOrAfter(objversion.UE4AddedSearchableNames) {
//		// read the searchable names offset
//	}
//
// The Reader owns its source. Once wrapped, the source must not be read or
// seeked by anyone else. The version fields never change after NewReader
// returns; only the source position moves.
//
// A Reader is not safe for concurrent use. Give each goroutine its own.
type Reader struct {
	src  io.ReadSeeker
	path string

	legacyVersion   int32
	fileVersion     objversion.ObjectVersion
	fileVersionUE5  objversion.ObjectVersionUE5
	hasUE5          bool
	licenseeVersion int32
}

var (
	_ io.ReadSeeker = (*Reader)(nil)
	_ io.Closer     = (*Reader)(nil)
)

// NewReader validates the package header at the current position of src
// and returns a Reader positioned just past it.
//
// src is expected to be at the start of the file. On failure the returned
// error is a *HeaderError and src is left wherever the failing read put it.
func NewReader(src io.ReadSeeker, opts ...Option) (*Reader, error) {
	options := applyOptions(opts)
	log := options.logger.With().Str("path", options.path).Logger()

	sum, err := header.Decode(binary.NewStream(src, options.path))
	if err != nil {
		log.Debug().Err(err).Msg("package header rejected")
		return nil, err
	}

	r := &Reader{
		src:             src,
		path:            options.path,
		legacyVersion:   sum.LegacyVersion,
		fileVersion:     sum.FileVersion,
		fileVersionUE5:  sum.FileVersionUE5,
		hasUE5:          sum.HasUE5,
		licenseeVersion: sum.LicenseeVersion,
	}

	event := log.Debug().
		Int32("legacy_version", r.legacyVersion).
		Stringer("file_version", r.fileVersion).
		Int32("licensee_version", r.licenseeVersion)
	if r.hasUE5 {
		event = event.Stringer("file_version_ue5", r.fileVersionUE5)
	}
	event.Msg("package header decoded")

	return r, nil
}

// Path returns the path given with WithPath or Open, or "".
func (r *Reader) Path() string {
	return r.path
}

// LegacyVersion returns the header's legacy version, in [-8, -6].
func (r *Reader) LegacyVersion() int32 {
	return r.legacyVersion
}

// FileVersion returns the UE4 object version the package was saved with.
func (r *Reader) FileVersion() objversion.ObjectVersion {
	return r.fileVersion
}

// FileVersionUE5 returns the UE5 object version, if the header has one.
func (r *Reader) FileVersionUE5() (objversion.ObjectVersionUE5, bool) {
	return r.fileVersionUE5, r.hasUE5
}

// LicenseeVersion returns the licensee version. Its meaning is up to the
// licensee; it plays no part in version comparisons.
func (r *Reader) LicenseeVersion() int32 {
	return r.licenseeVersion
}

// WasSerializedAtOrAfter reports whether the package was saved with UE4
// object version v or later.
func (r *Reader) WasSerializedAtOrAfter(v objversion.ObjectVersion) bool {
	return r.fileVersion >= v
}

// WasSerializedBefore reports whether the package predates UE4 object
// version v.
func (r *Reader) WasSerializedBefore(v objversion.ObjectVersion) bool {
	return !r.WasSerializedAtOrAfter(v)
}

// WasSerializedAtOrAfterUE5 reports whether the package was saved with UE5
// object version v or later. Packages without a UE5 version never are.
func (r *Reader) WasSerializedAtOrAfterUE5(v objversion.ObjectVersionUE5) bool {
	return r.hasUE5 && r.fileVersionUE5 >= v
}

// WasSerializedBeforeUE5 is the negation of WasSerializedAtOrAfterUE5.
func (r *Reader) WasSerializedBeforeUE5(v objversion.ObjectVersionUE5) bool {
	return !r.WasSerializedAtOrAfterUE5(v)
}

// Read reads from the wrapped source.
func (r *Reader) Read(p []byte) (int, error) {
	return r.src.Read(p)
}

// Seek seeks the wrapped source. Offsets are relative to the start of the
// source, not the end of the header.
func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	return r.src.Seek(offset, whence)
}

// Close closes the wrapped source if it implements io.Closer.
//
// After Close is called, the Reader should not be used.
func (r *Reader) Close() error {
	if closer, ok := r.src.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
