package ports

import "go.trai.ch/dummit/internal/core/domain"

// ConfigLoader defines the interface for loading the strand database and conf documents.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// LoadStrands reads the strand database at path.
	LoadStrands(path string) (domain.StrandDatabase, error)

	// LoadConf reads the conf document at path.
	LoadConf(path string) (domain.Conf, error)
}
