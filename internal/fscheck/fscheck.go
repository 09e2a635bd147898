// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fscheck verifies filesystem preconditions before a conversion
// run touches anything.
package fscheck

import (
	"fmt"
	"os"
)

// SourceReadable verifies that path names an existing regular file the
// process can open for reading.
func SourceReadable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("file %s does not exist: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("file %s is not readable: %w", path, err)
	}
	return f.Close()
}

// EnsureWritableDir creates dir (and any parents) if absent, then verifies
// the process can write into it with a create-and-remove probe file.
func EnsureWritableDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	probe, err := os.CreateTemp(dir, ".pdfpages-probe-")
	if err != nil {
		return fmt.Errorf("output directory %s is not writable: %w", dir, err)
	}
	name := probe.Name()
	probe.Close()
	return os.Remove(name)
}
