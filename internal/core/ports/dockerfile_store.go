package ports

import "go.trai.ch/dummit/internal/core/domain"

// DockerfileStore defines the interface for persisting the generated Dockerfile.
//
//go:generate mockgen -source=dockerfile_store.go -destination=mocks/mock_dockerfile_store.go -package=mocks
type DockerfileStore interface {
	// Write persists the Dockerfile at path. It reports whether the file content changed.
	Write(path string, dockerfile *domain.Dockerfile) (bool, error)

	// Read loads the Dockerfile at path.
	Read(path string) (*domain.Dockerfile, error)
}
