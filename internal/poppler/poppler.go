// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package poppler locates and invokes the poppler command-line tools:
// pdfinfo for document metadata and pdftoppm for page rasterization.
package poppler

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// binInfo reports document metadata, including the page count.
	binInfo = "pdfinfo"
	// binRender rasterizes PDF pages into image files.
	binRender = "pdftoppm"
)

// executor abstracts command lookup and execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Output(name string, args ...string) ([]byte, error)
	Run(name string, args ...string) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Output(name string, args ...string) ([]byte, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("%w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, err
	}
	return out, nil
}

func (o *osExecutor) Run(name string, args ...string) error {
	out, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}

var defaultExec = &osExecutor{}

// Tools resolves and invokes the poppler binaries. An empty dir means
// binaries are looked up on the system PATH; otherwise each binary must
// exist as a regular file inside dir, with no PATH fallback.
type Tools struct {
	dir  string
	exec executor
}

// New returns Tools that resolve binaries inside dir, or on the PATH when
// dir is empty.
func New(dir string) *Tools {
	return newTools(dir, defaultExec)
}

func newTools(dir string, exec executor) *Tools {
	return &Tools{dir: dir, exec: exec}
}

// locate resolves bin without executing it.
func (t *Tools) locate(bin string) (string, error) {
	if t.dir != "" {
		full := filepath.Join(t.dir, bin)
		info, err := os.Stat(full)
		if err != nil || info.IsDir() {
			return "", fmt.Errorf("%s was not found in %s", bin, t.dir)
		}
		return full, nil
	}

	path, err := t.exec.LookPath(bin)
	if err != nil {
		return "", fmt.Errorf("%s is not on your PATH", bin)
	}
	return path, nil
}

// LocateInfo resolves the pdfinfo binary.
func (t *Tools) LocateInfo() (string, error) {
	return t.locate(binInfo)
}

// LocateRender resolves the pdftoppm binary.
func (t *Tools) LocateRender() (string, error) {
	return t.locate(binRender)
}

// PageCount runs pdfinfo on src and parses the page count from its output.
func (t *Tools) PageCount(src string) (int, error) {
	bin, err := t.LocateInfo()
	if err != nil {
		return 0, err
	}

	out, err := t.exec.Output(bin, src)
	if err != nil {
		return 0, fmt.Errorf("pdfinfo on %s: %w", src, err)
	}
	return parsePageCount(out)
}

// parsePageCount extracts N from the "Pages: N" line of pdfinfo output.
func parsePageCount(out []byte) (int, error) {
	for _, line := range strings.Split(string(out), "\n") {
		if !strings.HasPrefix(line, "Pages:") {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "Pages:")))
		if err != nil {
			return 0, fmt.Errorf("malformed page count line %q: %w", strings.TrimSpace(line), err)
		}
		return n, nil
	}
	return 0, fmt.Errorf("pdfinfo output contains no Pages line")
}

// Render rasterizes every page of src into files named
// <outPrefix>-<N>.<ext> at the given resolution. formatFlag is a pdftoppm
// output selector such as "-png".
func (t *Tools) Render(src, outPrefix string, dpi int, formatFlag string) error {
	bin, err := t.LocateRender()
	if err != nil {
		return err
	}

	args := []string{formatFlag, "-r", strconv.Itoa(dpi), src, outPrefix}
	if err := t.exec.Run(bin, args...); err != nil {
		return fmt.Errorf("pdftoppm on %s: %w", src, err)
	}
	return nil
}
