package uasset

import (
	"context"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/uasset/internal/types"
)

// Open opens a package file and validates its header.
//
// The returned Reader owns the file handle. Always call Close when done:
//
//	r, err := uasset.Open("Content/Maps/Arena.umap")
//	if err != nil {
//		return err
//	}
//	defer r.Close()
//	fmt.Println(r.FileVersion())
//
// A file that cannot be opened is reported as a *HeaderError of kind KindIO.
// Options are applied as with NewReader; the path is attached automatically.
func Open(path string, opts ...Option) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &types.HeaderError{Kind: types.KindIO, Path: path, What: "file", Err: err}
	}

	r, err := NewReader(f, append([]Option{WithPath(path)}, opts...)...)
	if err != nil {
		f.Close()
		return nil, err
	}

	return r, nil
}

// OpenContext opens a file with context support for cancellation.
//
// Header decoding reads a few bytes and does not block on anything but the
// file, so the context is only checked before starting.
func OpenContext(ctx context.Context, path string, opts ...Option) (*Reader, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return Open(path, opts...)
}

// OpenMany opens multiple package files concurrently.
//
// Each file gets its own Reader; readers share nothing. Files are opened
// using up to runtime.NumCPU() goroutines and results are returned in the
// same order as the input paths.
//
// If any file fails to open, all successfully opened readers are closed
// and the first error is returned. Errors from Open already name the path.
//
// Example:
//
//	readers, err := uasset.OpenMany(ctx, paths)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer func() {
//		for _, r := range readers {
//			r.Close()
//		}
//	}()
func OpenMany(ctx context.Context, paths []string, opts ...Option) ([]*Reader, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Reader, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			r, err := Open(path, opts...)
			if err != nil {
				return err
			}

			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, r := range results {
			if r != nil {
				r.Close()
			}
		}
		return nil, err
	}

	return results, nil
}
