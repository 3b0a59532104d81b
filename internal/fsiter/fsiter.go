// Package fsiter implements the abstract carrier/shadow directory
// iterator the pipeline depends on: it walks a directory of candidate
// bitmaps and keeps the ones a caller-supplied predicate accepts,
// stopping once enough have been found.
package fsiter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shadowbmp/shadowbmp/internal/bitmap"
	"github.com/shadowbmp/shadowbmp/internal/shadowerr"
)

// Validator decides whether a candidate bitmap qualifies, given the
// threshold k and a size parameter whose meaning depends on the
// validator (a secret size for shadows, unused for carriers).
type Validator func(b *bitmap.Bitmap, k int, size uint32) bool

// IsValidCarrier adapts (*bitmap.Bitmap).IsValidCarrier to Validator.
func IsValidCarrier(b *bitmap.Bitmap, k int, _ uint32) bool {
	return b.IsValidCarrier(k)
}

// IsValidShadow adapts (*bitmap.Bitmap).IsValidShadow to Validator.
func IsValidShadow(b *bitmap.Bitmap, k int, size uint32) bool {
	return b.IsValidShadow(k, size)
}

// CountFiles returns the number of regular files directly in dir,
// used to default -n to the carrier-directory's file count.
func CountFiles(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, shadowerr.Wrap(shadowerr.ErrIO, fmt.Sprintf("read dir %s", dir))
	}

	count := 0
	for _, e := range entries {
		if e.Type().IsRegular() {
			count++
		}
	}
	return count, nil
}

// find walks dir's regular files in directory order, keeping up to
// want paths whose decoded bitmap satisfies valid.
func find(dir string, k int, size uint32, want int, valid Validator) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, shadowerr.Wrap(shadowerr.ErrIO, fmt.Sprintf("read dir %s", dir))
	}

	paths := make([]string, 0, want)
	for _, e := range entries {
		if len(paths) >= want {
			break
		}
		if !e.Type().IsRegular() {
			continue
		}

		path := filepath.Join(dir, e.Name())
		b, err := bitmap.Read(path)
		if err != nil {
			continue
		}
		if valid(b, k, size) {
			paths = append(paths, path)
		}
	}

	return paths, nil
}

// EnumerateCarriers returns up to the first n regular files in dir
// satisfying IsValidCarrier(k). It fails with ErrInsufficientCarriers
// if fewer than n are found.
func EnumerateCarriers(dir string, k, n int) ([]string, error) {
	paths, err := find(dir, k, 0, n, IsValidCarrier)
	if err != nil {
		return nil, err
	}
	if len(paths) < n {
		return nil, shadowerr.Wrap(shadowerr.ErrInsufficientCarriers,
			fmt.Sprintf("found %d of %d required carriers in %s", len(paths), n, dir))
	}
	return paths, nil
}

// EnumerateShadows returns exactly the first k regular files in dir
// satisfying IsValidShadow(k, secretSize). It fails with
// ErrInsufficientShadows if fewer than k are found.
func EnumerateShadows(dir string, k int, secretSize uint32) ([]string, error) {
	paths, err := find(dir, k, secretSize, k, IsValidShadow)
	if err != nil {
		return nil, err
	}
	if len(paths) < k {
		return nil, shadowerr.Wrap(shadowerr.ErrInsufficientShadows,
			fmt.Sprintf("found %d of %d required shadows in %s", len(paths), k, dir))
	}
	return paths, nil
}
