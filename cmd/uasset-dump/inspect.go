package main

import (
	"context"
	"os"

	"github.com/simonhull/uasset"
	"github.com/simonhull/uasset/objversion"
)

// result is one row of output.
type result struct {
	Path     string
	Legacy   int32
	UE4      objversion.ObjectVersion
	UE5      objversion.ObjectVersionUE5
	HasUE5   bool
	Licensee int32

	Probed bool
	Order  uasset.ByteOrder

	Err error
}

func fromReader(r *uasset.Reader) result {
	res := result{
		Path:     r.Path(),
		Legacy:   r.LegacyVersion(),
		UE4:      r.FileVersion(),
		Licensee: r.LicenseeVersion(),
	}
	res.UE5, res.HasUE5 = r.FileVersionUE5()
	return res
}

// inspect decodes every path. The batch is opened with OpenMany first; when
// that fails each path is retried on its own so every row reports its own
// outcome.
func inspect(ctx context.Context, paths []string, cfg config, opts ...uasset.Option) []result {
	results := make([]result, len(paths))

	readers, err := uasset.OpenMany(ctx, paths, opts...)
	if err == nil {
		for i, r := range readers {
			results[i] = fromReader(r)
			r.Close()
		}
	} else {
		for i, path := range paths {
			results[i] = inspectOne(ctx, path, opts...)
		}
	}

	if cfg.Probe {
		for i := range results {
			results[i].Order, results[i].Probed = probe(results[i].Path)
		}
	}

	return results
}

func inspectOne(ctx context.Context, path string, opts ...uasset.Option) result {
	r, err := uasset.OpenContext(ctx, path, opts...)
	if err != nil {
		return result{Path: path, Err: err}
	}
	defer r.Close()
	return fromReader(r)
}

// probe reports the byte order of the file at path, or false when it cannot
// be determined.
func probe(path string) (uasset.ByteOrder, bool) {
	f, err := os.Open(path)
	if err != nil {
		return uasset.LittleEndian, false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return uasset.LittleEndian, false
	}

	order, err := uasset.DetectByteOrder(f, info.Size(), path)
	if err != nil {
		return uasset.LittleEndian, false
	}
	return order, true
}

func failed(results []result) int {
	n := 0
	for _, res := range results {
		if res.Err != nil {
			n++
		}
	}
	return n
}
