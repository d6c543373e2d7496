package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Extension of written datasets.
const Extension = ".jsonld"

// File writes each dataset to <dir>/<batch>.jsonld.
type File struct {
	dir string
}

// NewFile creates dir if needed.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return &File{dir: dir}, nil
}

func (f *File) Name() string { return "file" }

// Path returns the file a batch is written to.
func (f *File) Path(batch string) string {
	return filepath.Join(f.dir, batch+Extension)
}

// Deliver writes the dataset through a temporary file so readers never see a
// partial document.
func (f *File) Deliver(ctx context.Context, d Delivery) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path := f.Path(d.Batch)
	tmp, err := os.CreateTemp(f.dir, "."+d.Batch+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(d.Dataset); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (f *File) Close() error { return nil }
