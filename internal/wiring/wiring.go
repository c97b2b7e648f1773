// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/dummit/internal/adapters/config"
	_ "go.trai.ch/dummit/internal/adapters/fs"
	_ "go.trai.ch/dummit/internal/adapters/hadolint"
	_ "go.trai.ch/dummit/internal/adapters/logger"
	_ "go.trai.ch/dummit/internal/adapters/settings"
	_ "go.trai.ch/dummit/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/dummit/internal/app"
)
