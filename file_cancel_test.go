package uasset_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/simonhull/uasset"
	"github.com/simonhull/uasset/internal/headertest"
)

func createTestPackage(t *testing.T) string {
	t.Helper()

	tmpFile, err := os.CreateTemp(t.TempDir(), "test*.uasset")
	if err != nil {
		t.Fatal(err)
	}
	defer tmpFile.Close()

	if _, err := tmpFile.Write(headertest.Default().Bytes()); err != nil {
		t.Fatal(err)
	}

	return tmpFile.Name()
}

// TestOpenMany_Cancellation verifies that cancelled operations clean up resources
func TestOpenMany_Cancellation(t *testing.T) {
	paths := make([]string, 5)
	for i := range paths {
		paths[i] = createTestPackage(t)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	readers, err := uasset.OpenMany(ctx, paths)

	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
	if readers != nil {
		t.Error("expected nil readers on error")
	}
}

// TestOpenMany_PartialFailure verifies cleanup on partial failure
func TestOpenMany_PartialFailure(t *testing.T) {
	validPath := createTestPackage(t)

	paths := []string{
		validPath,
		filepath.Join(t.TempDir(), "nonexistent.uasset"),
		validPath,
	}

	readers, err := uasset.OpenMany(context.Background(), paths)

	if !errors.Is(err, uasset.ErrIO) {
		t.Fatalf("expected io error from nonexistent file, got %v", err)
	}
	// All or nothing
	if readers != nil {
		t.Error("expected nil readers on partial failure")
	}
}

func TestOpenMany_InvalidHeaderFails(t *testing.T) {
	unversioned := filepath.Join(t.TempDir(), "Cooked.uasset")
	data := headertest.Fields{Magic: headertest.Magic, Legacy: -7}.Bytes()
	if err := os.WriteFile(unversioned, data, 0o644); err != nil {
		t.Fatal(err)
	}

	readers, err := uasset.OpenMany(context.Background(), []string{createTestPackage(t), unversioned})

	if !errors.Is(err, uasset.ErrUnversionedAsset) {
		t.Fatalf("expected unversioned asset error, got %v", err)
	}
	if readers != nil {
		t.Error("expected nil readers on error")
	}
}
