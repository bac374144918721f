package uasset_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/uasset"
	"github.com/simonhull/uasset/internal/headertest"
	"github.com/simonhull/uasset/objversion"
)

func newReader(t *testing.T, f headertest.Fields, trailer ...byte) *uasset.Reader {
	t.Helper()
	r, err := uasset.NewReader(bytes.NewReader(f.Bytes(trailer...)))
	require.NoError(t, err)
	return r
}

func withUE4(v objversion.ObjectVersion) headertest.Fields {
	f := headertest.Default()
	f.UE4 = int32(v)
	return f
}

func TestNewReader_OldestUE4Header(t *testing.T) {
	data := []byte{
		0xC1, 0x83, 0x2A, 0x9E, // magic
		0xFA, 0xFF, 0xFF, 0xFF, // legacy version -6
		0x00, 0x00, 0x00, 0x00, // legacy UE3 version
		0xD6, 0x00, 0x00, 0x00, // UE4 version 214
		0x64, 0x00, 0x00, 0x00, // licensee version 100
	}

	r, err := uasset.NewReader(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, int32(-6), r.LegacyVersion())
	assert.Equal(t, objversion.UE4OldestLoadablePackage, r.FileVersion())
	assert.Equal(t, int32(100), r.LicenseeVersion())

	_, ok := r.FileVersionUE5()
	assert.False(t, ok)
}

func TestNewReader_UE5Header(t *testing.T) {
	r := newReader(t, headertest.DefaultUE5())

	ue5, ok := r.FileVersionUE5()
	require.True(t, ok)
	assert.Equal(t, objversion.UE5LargeWorldCoordinates, ue5)
	assert.Equal(t, int32(-8), r.LegacyVersion())
}

func TestNewReader_RejectsWithTypedErrors(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		sentinel error
		value    int32
	}{
		{
			name:     "not a package",
			data:     []byte("PK\x03\x04 definitely a zip file"),
			sentinel: uasset.ErrInvalidFile,
		},
		{
			name:     "legacy version too new",
			data:     headertest.Fields{Magic: headertest.Magic, Legacy: -9, UE4: 522}.Bytes(),
			sentinel: uasset.ErrUnsupportedLegacyVersion,
			value:    -9,
		},
		{
			name:     "unversioned",
			data:     headertest.Fields{Magic: headertest.Magic, Legacy: -8}.Bytes(),
			sentinel: uasset.ErrUnversionedAsset,
		},
		{
			name:     "zero UE4 version with UE5 version",
			data:     headertest.Fields{Magic: headertest.Magic, Legacy: -8, UE5: 5}.Bytes(),
			sentinel: uasset.ErrUnsupportedFileVersion,
			value:    0,
		},
		{
			name:     "unknown UE5 version",
			data:     headertest.Fields{Magic: headertest.Magic, Legacy: -8, UE4: 522, UE5: 2000}.Bytes(),
			sentinel: uasset.ErrUnsupportedFileVersionUE5,
			value:    2000,
		},
		{
			name:     "truncated",
			data:     headertest.Default().Bytes()[:10],
			sentinel: uasset.ErrParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := uasset.NewReader(bytes.NewReader(tt.data))
			require.Error(t, err)
			assert.Nil(t, r)
			assert.ErrorIs(t, err, tt.sentinel)

			var he *uasset.HeaderError
			require.ErrorAs(t, err, &he)
			assert.Equal(t, tt.value, he.Value)
		})
	}
}

func TestNewReader_InvalidMagicRegardlessOfRest(t *testing.T) {
	rest := headertest.Default().Bytes()[4:]
	for _, magic := range [][]byte{
		{0x00, 0x00, 0x00, 0x00},
		{0x9E, 0x2A, 0x83, 0xC1},
		{0xC1, 0x83, 0x2A, 0x9F},
		{0xFF, 0xFF, 0xFF, 0xFF},
	} {
		data := append(append([]byte{}, magic...), rest...)
		_, err := uasset.NewReader(bytes.NewReader(data))
		assert.ErrorIs(t, err, uasset.ErrInvalidFile, "magic % x", magic)
	}
}

func TestNewReader_ErrorsCarryPath(t *testing.T) {
	_, err := uasset.NewReader(bytes.NewReader(nil), uasset.WithPath("Content/Empty.uasset"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Content/Empty.uasset")
	assert.Equal(t, uasset.KindParse, uasset.KindOf(err))
}

func TestWasSerializedAtOrAfter(t *testing.T) {
	r := newReader(t, withUE4(objversion.UE4AddedSearchableNames))

	assert.True(t, r.WasSerializedAtOrAfter(objversion.UE4OldestLoadablePackage))
	assert.True(t, r.WasSerializedAtOrAfter(objversion.UE4AddedSearchableNames))
	assert.False(t, r.WasSerializedAtOrAfter(objversion.UE4ExportMapSerialSizes64Bit))

	assert.False(t, r.WasSerializedBefore(objversion.UE4AddedSearchableNames))
	assert.True(t, r.WasSerializedBefore(objversion.UE4AddedSoftObjectPath))
}

func TestWasSerializedAtOrAfter_OrderingLaw(t *testing.T) {
	// Sample every 16th revision plus the newest to keep the pair count small.
	var sample []objversion.ObjectVersion
	for v := range objversion.AllObjectVersions() {
		if int(v-objversion.UE4OldestLoadablePackage)%16 == 0 || v == objversion.UE4Automatic {
			sample = append(sample, v)
		}
	}

	for _, b := range sample {
		r := newReader(t, withUE4(b))
		for _, a := range sample {
			assert.Equal(t, a <= b, r.WasSerializedAtOrAfter(a), "file %v, query %v", b, a)
			assert.Equal(t, a > b, r.WasSerializedBefore(a), "file %v, query %v", b, a)
		}
	}
}

func TestWasSerializedAtOrAfter_Idempotent(t *testing.T) {
	r := newReader(t, withUE4(objversion.UE4NameHashesSerialized), 0x01, 0x02)

	first := r.WasSerializedAtOrAfter(objversion.UE4NameHashesSerialized)
	second := r.WasSerializedAtOrAfter(objversion.UE4NameHashesSerialized)
	assert.True(t, first)
	assert.Equal(t, first, second)
	assert.Equal(t, objversion.UE4NameHashesSerialized, r.FileVersion())

	// Queries never touch the stream.
	pos, err := r.Seek(0, io.SeekCurrent)
	require.NoError(t, err)
	assert.Equal(t, int64(20), pos)
}

func TestWasSerializedAtOrAfterUE5(t *testing.T) {
	t.Run("UE4 package", func(t *testing.T) {
		r := newReader(t, headertest.Default())
		assert.False(t, r.WasSerializedAtOrAfterUE5(objversion.UE5InitialVersion))
		assert.True(t, r.WasSerializedBeforeUE5(objversion.UE5InitialVersion))
	})

	t.Run("UE5 package", func(t *testing.T) {
		r := newReader(t, headertest.DefaultUE5())
		assert.True(t, r.WasSerializedAtOrAfterUE5(objversion.UE5InitialVersion))
		assert.True(t, r.WasSerializedAtOrAfterUE5(objversion.UE5LargeWorldCoordinates))
		assert.False(t, r.WasSerializedAtOrAfterUE5(objversion.UE5RemoveObjectExportPackageGuid))
		assert.True(t, r.WasSerializedBeforeUE5(objversion.UE5Automatic))
	})
}

func TestReader_PassThrough(t *testing.T) {
	trailer := []byte("name table follows")
	r := newReader(t, headertest.Default(), trailer...)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, trailer, got)

	pos, err := r.Seek(0, io.SeekStart)
	require.NoError(t, err)
	assert.Equal(t, int64(0), pos)

	magic := make([]byte, 4)
	_, err = io.ReadFull(r, magic)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xC1, 0x83, 0x2A, 0x9E}, magic)
}

func TestReader_PassThroughHeaderSize(t *testing.T) {
	tests := []struct {
		name   string
		fields headertest.Fields
		want   int64
	}{
		{"legacy -6", headertest.Fields{Magic: headertest.Magic, Legacy: -6, UE4: 214}, 20},
		{"legacy -7", headertest.Default(), 20},
		{"legacy -8", headertest.DefaultUE5(), 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newReader(t, tt.fields, 0xEE)
			pos, err := r.Seek(0, io.SeekCurrent)
			require.NoError(t, err)
			assert.Equal(t, tt.want, pos)
		})
	}
}

func TestReader_SeekErrorPassesThrough(t *testing.T) {
	r := newReader(t, headertest.Default())

	_, err := r.Seek(-1, io.SeekStart)
	require.Error(t, err)
	assert.Zero(t, uasset.KindOf(err), "source errors are returned untouched")
}

type closeRecorder struct {
	*bytes.Reader
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestReader_Close(t *testing.T) {
	src := &closeRecorder{Reader: bytes.NewReader(headertest.Default().Bytes())}
	r, err := uasset.NewReader(src)
	require.NoError(t, err)

	require.NoError(t, r.Close())
	assert.True(t, src.closed)

	plain := newReader(t, headertest.Default())
	assert.NoError(t, plain.Close())
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	_, err := uasset.NewReader(bytes.NewReader(headertest.DefaultUE5().Bytes()),
		uasset.WithLogger(logger),
		uasset.WithPath("Hero.uasset"),
	)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "package header decoded")
	assert.Contains(t, out, `"path":"Hero.uasset"`)
	assert.Contains(t, out, `"file_version":"VER_UE4_CORRECT_LICENSEE_FLAG"`)
	assert.Contains(t, out, `"file_version_ue5":"VER_UE5_LARGE_WORLD_COORDINATES"`)

	buf.Reset()
	_, err = uasset.NewReader(bytes.NewReader([]byte{0, 0, 0, 0}), uasset.WithLogger(logger))
	require.True(t, errors.Is(err, uasset.ErrInvalidFile))
	assert.Contains(t, buf.String(), "package header rejected")
}
