// Package archive bundles renamed files into an in-memory ZIP.
package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"path"
	"strings"
)

// ErrArchive marks a failure while writing the ZIP container.
var ErrArchive = errors.New("zip build failed")

// File is a single named payload destined for the archive root.
type File struct {
	Name string
	Data []byte
}

// Build serializes files into a ZIP blob, preserving input order. Colliding
// names get a numeric suffix before the extension, so no entry is dropped.
func Build(files []File) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	seen := make(map[string]int, len(files))
	for _, f := range files {
		name := dedupe(seen, f.Name)
		w, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("%w: create %s: %v", ErrArchive, name, err)
		}
		if _, err := w.Write(f.Data); err != nil {
			return nil, fmt.Errorf("%w: write %s: %v", ErrArchive, name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: close: %v", ErrArchive, err)
	}
	return buf.Bytes(), nil
}

func dedupe(seen map[string]int, name string) string {
	for {
		n := seen[name]
		seen[name]++
		if n == 0 {
			return name
		}
		ext := path.Ext(name)
		name = fmt.Sprintf("%s-%d%s", strings.TrimSuffix(name, ext), n+1, ext)
	}
}
