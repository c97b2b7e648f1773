// Package fs persists generated Dockerfiles on the local filesystem.
package fs

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/moby/sys/atomicwriter"
	"go.trai.ch/dummit/internal/core/domain"
	"go.trai.ch/dummit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DockerfileStore = (*Store)(nil)

// Store writes Dockerfiles atomically and leaves unchanged files untouched.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Write replaces the file at path with the Dockerfile's bytes. When the
// existing file already has the same XXHash digest nothing is written and
// Write reports false. Missing parent directories are created.
func (s *Store) Write(path string, dockerfile *domain.Dockerfile) (bool, error) {
	data := dockerfile.Bytes()

	existing, err := ComputeFileHash(path)
	switch {
	case err == nil && existing == xxhash.Sum64(data):
		return false, nil
	case err != nil && !errors.Is(err, iofs.ErrNotExist):
		return false, zerr.With(zerr.Wrap(err, domain.ErrDockerfileWriteFailed.Error()), "path", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrDockerfileWriteFailed.Error()), "path", path)
	}

	if err := atomicwriter.WriteFile(path, data, domain.FilePerm); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrDockerfileWriteFailed.Error()), "path", path)
	}

	return true, nil
}

// Read loads the Dockerfile at path.
func (s *Store) Read(path string) (*domain.Dockerfile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDockerfileReadFailed.Error()), "path", path)
	}
	return domain.NewDockerfile(string(data)), nil
}

// ComputeFileHash computes the XXHash of a file's content.
func ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, err
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}
