// Package capture persists album screenshots taken with the capture key.
package capture

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path"

	"github.com/spf13/afero"
)

const captureDir = "captures"

// Store writes album screenshots as PNG files on an afero filesystem. The
// default store is memory backed, so captures live for the run of the
// program like the rest of the simulated device state, but any afero
// filesystem works.
type Store struct {
	fs afero.Fs
}

// NewMemStore returns a Store backed by an in-memory filesystem.
func NewMemStore() *Store {
	return NewStore(afero.NewMemMapFs())
}

// NewStore returns a Store on fs.
func NewStore(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// Save encodes img under the capture directory and returns the stored file
// name. Saving the same sequence number twice overwrites the earlier file.
func (s *Store) Save(seq int, img image.Image) (string, error) {
	if err := s.fs.MkdirAll(captureDir, 0o755); err != nil {
		return "", fmt.Errorf("creating capture dir: %w", err)
	}
	name := fileName(seq)
	f, err := s.fs.Create(name)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", name, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("encoding %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", name, err)
	}
	return name, nil
}

// Open decodes the capture with the given sequence number.
func (s *Store) Open(seq int) (image.Image, error) {
	name := fileName(seq)
	f, err := s.fs.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return img, nil
}

// List returns the stored capture file names in sequence order. A store
// with no captures yet returns an empty list, not an error.
func (s *Store) List() ([]string, error) {
	infos, err := afero.ReadDir(s.fs, captureDir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading capture dir: %w", err)
	}
	names := make([]string, 0, len(infos))
	for _, fi := range infos {
		if fi.IsDir() {
			continue
		}
		names = append(names, path.Join(captureDir, fi.Name()))
	}
	return names, nil
}

// Count reports how many captures are stored.
func (s *Store) Count() (int, error) {
	names, err := s.List()
	return len(names), err
}

// fileName is zero padded so directory order matches capture order.
func fileName(seq int) string {
	return path.Join(captureDir, fmt.Sprintf("capture_%04d.png", seq))
}
