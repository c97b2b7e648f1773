// Package hadolint runs the hadolint Dockerfile linter inside a container and
// decodes its JSON findings.
package hadolint

import (
	"bytes"
	"encoding/json"

	"go.trai.ch/dummit/internal/core/domain"
	"go.trai.ch/zerr"
)

// finding is one element of `hadolint --format json` output.
type finding struct {
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
	File    string `json:"file"`
}

// ParseOutput decodes hadolint JSON into diagnostics, preserving order.
// Empty output means no findings.
func ParseOutput(data []byte) ([]domain.Diagnostic, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	var findings []finding
	if err := json.Unmarshal(data, &findings); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLinterOutputParse.Error())
	}

	diags := make([]domain.Diagnostic, 0, len(findings))
	for _, f := range findings {
		diags = append(diags, domain.Diagnostic{
			Line:    f.Line,
			Column:  f.Column,
			Level:   domain.Level(f.Level),
			Code:    f.Code,
			Message: f.Message,
		})
	}
	return diags, nil
}
