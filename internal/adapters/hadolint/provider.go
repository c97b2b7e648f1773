package hadolint

import (
	"go.trai.ch/dummit/internal/core/domain"
	"go.trai.ch/dummit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Provider implements ports.LinterProvider over the available backends.
type Provider struct {
	backends map[domain.LintBackend]ports.Linter
}

// NewProvider creates a Provider with the CLI and engine backends.
func NewProvider() *Provider {
	return NewProviderWith(map[domain.LintBackend]ports.Linter{
		domain.LintBackendCLI:    NewCLILinter(),
		domain.LintBackendEngine: NewEngineLinter(),
	})
}

// NewProviderWith creates a Provider over the given backends.
func NewProviderWith(backends map[domain.LintBackend]ports.Linter) *Provider {
	return &Provider{backends: backends}
}

// Linter returns the Linter registered for backend.
func (p *Provider) Linter(backend domain.LintBackend) (ports.Linter, error) {
	l, ok := p.backends[backend]
	if !ok {
		return nil, zerr.With(domain.ErrInvalidLintBackend, "backend", string(backend))
	}
	return l, nil
}
