package storage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// ArrayStore is a single array file. The format follows the extension
// unless set explicitly.
type ArrayStore struct {
	filepath string
	format   Format
}

// NewArrayStore returns a store for path with the format taken from its
// extension.
func NewArrayStore(path string) *ArrayStore {
	return &ArrayStore{
		filepath: path,
		format:   FormatFromPath(path),
	}
}

// WithFormat overrides the extension based format.
func (s *ArrayStore) WithFormat(f Format) *ArrayStore {
	s.format = f
	return s
}

// Path returns the file path.
func (s *ArrayStore) Path() string { return s.filepath }

// Format returns the encoding used for the file.
func (s *ArrayStore) Format() Format { return s.format }

// Save writes rec, filling in its dimensions and digest from the data.
func (s *ArrayStore) Save(rec *Record) error {
	cells := &Record{Levels: rec.Levels, Data: rec.Data}
	a, err := cells.Matrix()
	if err != nil {
		return err
	}
	rec.Levels, rec.Rows, rec.Cols = cells.Levels, a.Rows(), a.Cols()
	rec.Digest = Digest(a)

	var buf bytes.Buffer
	if err := Encode(&buf, rec, s.format); err != nil {
		return fmt.Errorf("failed to encode array: %w", err)
	}

	dir := filepath.Dir(s.filepath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(s.filepath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// Load reads and validates the file. The digest is checked when present.
func (s *ArrayStore) Load() (*Record, error) {
	f, err := os.Open(s.filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	defer f.Close()

	rec, err := Decode(f, s.format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.filepath, err)
	}
	if _, err := rec.Matrix(); err != nil {
		return nil, fmt.Errorf("%s: %w", s.filepath, err)
	}
	return rec, nil
}

// Exists reports whether the file is present.
func (s *ArrayStore) Exists() bool {
	_, err := os.Stat(s.filepath)
	return err == nil
}

// Delete removes the file; a missing file is not an error.
func (s *ArrayStore) Delete() error {
	if !s.Exists() {
		return nil
	}
	return os.Remove(s.filepath)
}
