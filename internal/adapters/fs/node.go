package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dummit/internal/core/ports"
)

// NodeID is the unique identifier for the Dockerfile store Graft node.
const NodeID graft.ID = "adapter.fs.store"

func init() {
	graft.Register(graft.Node[ports.DockerfileStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DockerfileStore, error) {
			return NewStore(), nil
		},
	})
}
