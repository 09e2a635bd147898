package fscheck

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSourceReadable(t *testing.T) {
	tmpDir := t.TempDir()

	readable := filepath.Join(tmpDir, "sample.pdf")
	if err := os.WriteFile(readable, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatal(err)
	}

	unreadable := filepath.Join(tmpDir, "locked.pdf")
	if err := os.WriteFile(unreadable, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(unreadable, 0o000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(unreadable, 0o644) })

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"readable file", readable, ""},
		{"missing file", filepath.Join(tmpDir, "absent.pdf"), "does not exist"},
		{"directory", tmpDir, "is a directory"},
		{"permission denied", unreadable, "not readable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.name == "permission denied" && os.Getuid() == 0 {
				t.Skip("root ignores file permission bits")
			}
			err := SourceReadable(tt.path)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestEnsureWritableDir(t *testing.T) {
	t.Run("existing directory", func(t *testing.T) {
		if err := EnsureWritableDir(t.TempDir()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("creates missing directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "out", "pages")
		if err := EnsureWritableDir(dir); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("directory not created: %v", err)
		}
	})

	t.Run("path is an existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out")
		if err := os.WriteFile(path, []byte("not a directory"), 0o644); err != nil {
			t.Fatal(err)
		}
		err := EnsureWritableDir(path)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "creating output directory") {
			t.Errorf("error = %q, want creation failure", err)
		}
	})

	t.Run("leaves no probe file behind", func(t *testing.T) {
		dir := t.TempDir()
		if err := EnsureWritableDir(dir); err != nil {
			t.Fatal(err)
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 0 {
			t.Errorf("probe left residue: %v", entries)
		}
	})

	t.Run("unwritable parent", func(t *testing.T) {
		if os.Getuid() == 0 {
			t.Skip("root ignores directory permission bits")
		}
		parent := t.TempDir()
		if err := os.Chmod(parent, 0o555); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { os.Chmod(parent, 0o755) })

		if err := EnsureWritableDir(filepath.Join(parent, "out")); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
