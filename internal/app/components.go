package app

import (
	"go.trai.ch/dummit/internal/adapters/settings" //nolint:depguard // Wired in app layer
	"go.trai.ch/dummit/internal/core/ports"
)

// Components contains all the initialized application components.
type Components struct {
	App      *App
	Logger   ports.Logger
	Settings *settings.Loader
}
