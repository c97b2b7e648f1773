package hadolint

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dummit/internal/core/ports"
)

// NodeID is the unique identifier for the linter provider Graft node.
const NodeID graft.ID = "adapter.linter"

func init() {
	graft.Register(graft.Node[ports.LinterProvider]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LinterProvider, error) {
			return NewProvider(), nil
		},
	})
}
