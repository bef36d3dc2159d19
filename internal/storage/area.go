// Package storage manages the transient storage areas that hold uploaded
// files awaiting conversion and processed artifacts awaiting download.
//
// Each file in an area has exactly one deletion owner: incoming files
// belong to the conversion dispatcher, processed files to the download
// handler. RemoveIfExists keeps a lost race harmless.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Area is a single flat directory of transient files.
type Area struct {
	dir string
}

// NewArea ensures dir exists and returns an Area over it. Creation is
// idempotent; an existing directory is not an error.
func NewArea(dir string) (*Area, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage area %q: %w", dir, err)
	}
	return &Area{dir: dir}, nil
}

// Dir returns the directory backing this area.
func (a *Area) Dir() string {
	return a.dir
}

// NewStoredName derives a collision-resistant stored name from the
// client-declared original name. Two simultaneous uploads of the same
// file name must not overwrite each other, so the name carries a
// millisecond timestamp plus a random token.
func (a *Area) NewStoredName(originalName string) string {
	base := filepath.Base(strings.TrimSpace(originalName))
	if base == "." || base == string(filepath.Separator) || base == "" {
		base = "upload"
	}
	token := uuid.New().String()[:8]
	return fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), token, base)
}

// Resolve maps a file name to its path inside the area. Only the base
// name is used, so a reference like "../etc/passwd" cannot escape.
func (a *Area) Resolve(name string) string {
	return filepath.Join(a.dir, filepath.Base(name))
}

// Save streams r into the area under storedName and returns the written
// path and byte count. A partially written file is removed on error.
func (a *Area) Save(r io.Reader, storedName string) (string, int64, error) {
	path := a.Resolve(storedName)
	f, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("create %q: %w", path, err)
	}
	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", 0, fmt.Errorf("write %q: %w", path, err)
	}
	return path, n, nil
}

// Open opens a stored file for reading.
func (a *Area) Open(name string) (*os.File, error) {
	return os.Open(a.Resolve(name))
}

// Stat returns file info for a stored file.
func (a *Area) Stat(name string) (os.FileInfo, error) {
	return os.Stat(a.Resolve(name))
}

// Size returns the byte size of a stored file.
func (a *Area) Size(name string) (int64, error) {
	info, err := a.Stat(name)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// Exists reports whether a stored file is present in the area.
func (a *Area) Exists(name string) bool {
	_, err := a.Stat(name)
	return err == nil
}

// Remove deletes a stored file.
func (a *Area) Remove(name string) error {
	return os.Remove(a.Resolve(name))
}

// RemoveIfExists deletes a stored file, treating "already gone" as
// success so concurrent deleters cannot fail each other.
func (a *Area) RemoveIfExists(name string) error {
	if err := os.Remove(a.Resolve(name)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
