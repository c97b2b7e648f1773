package report_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dummit/internal/adapters/report"
	"go.trai.ch/dummit/internal/core/domain"
)

var source = []string{
	"ARG BASE_IMAGE=ubuntu:22.04",
	"FROM $BASE_IMAGE",
	"RUN apt-get update && apt-get install -y git",
	"RUN cd /tmp",
}

func TestFormatter_Format(t *testing.T) {
	tests := []struct {
		name       string
		source     []string
		diags      []domain.Diagnostic
		color      bool
		goldenName string
	}{
		{
			name:   "warning before its line",
			source: []string{"FROM x", "RUN y"},
			diags: []domain.Diagnostic{
				{Line: 2, Column: 1, Level: domain.LevelWarning, Code: "DL001", Message: "m"},
			},
			goldenName: "warning_before_line",
		},
		{
			name:       "no diagnostics",
			source:     source,
			goldenName: "clean",
		},
		{
			name:   "mixed levels keep received order",
			source: source,
			diags: []domain.Diagnostic{
				{Line: 3, Level: domain.LevelWarning, Code: "DL3008", Message: "Pin versions in apt get install."},
				{Line: 3, Level: domain.LevelError, Code: "DL3009", Message: "Delete the apt-get lists after installing something."},
				{Line: 4, Level: "info", Code: "DL3003", Message: "Use WORKDIR to switch to a directory"},
				{Line: 1, Level: "style", Code: "DL3007", Message: "Using latest is prone to errors."},
			},
			goldenName: "mixed_levels",
		},
		{
			name:   "diagnostics outside the source",
			source: source,
			diags: []domain.Diagnostic{
				{Line: 0, Level: domain.LevelError, Code: "DL1000", Message: "invalid line"},
				{Line: 2, Level: domain.LevelWarning, Code: "DL3006", Message: "Always tag the version of an image explicitly"},
				{Line: 9, Level: domain.LevelWarning, Code: "SC1000", Message: "past the end"},
			},
			goldenName: "orphans",
		},
		{
			name:   "colored markers",
			source: []string{"FROM x", "RUN y"},
			diags: []domain.Diagnostic{
				{Line: 1, Level: domain.LevelError, Code: "DL3006", Message: "tag it"},
				{Line: 2, Level: domain.LevelWarning, Code: "DL001", Message: "m"},
			},
			color:      true,
			goldenName: "colored",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, report.NewFormatter(tt.color).Format(&buf, tt.source, tt.diags))

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestFormatter_PlainOutputHasNoEscapes(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	var buf bytes.Buffer
	err := report.NewFormatter(false).Format(&buf, []string{"FROM x"}, []domain.Diagnostic{
		{Line: 1, Level: domain.LevelError, Code: "DL3006", Message: "tag it"},
	})
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestFormatter_ColorIgnoresNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	err := report.NewFormatter(true).Format(&buf, []string{"FROM x"}, []domain.Diagnostic{
		{Line: 1, Level: domain.LevelWarning, Code: "DL3006", Message: "tag it"},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "\x1b[33m[!]\x1b[0m DL3006: tag it\n")
}

func TestFormatter_EmptySource(t *testing.T) {
	var buf bytes.Buffer
	err := report.NewFormatter(false).Format(&buf, nil, []domain.Diagnostic{
		{Line: 1, Level: domain.LevelError, Code: "DL1000", Message: "unexpected end of input"},
	})
	require.NoError(t, err)
	assert.Equal(t, "[x] DL1000: unexpected end of input\n1 error(s), 0 warning(s)\n", buf.String())
}
