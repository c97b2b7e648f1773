package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dummit/internal/core/domain"
)

func TestParseConf(t *testing.T) {
	conf, err := domain.ParseConf([]string{"git", "foo==2"})
	require.NoError(t, err)
	assert.Equal(t, []domain.StrandRequest{
		{Name: "git"},
		{Name: "foo", Version: "2", HasVersion: true},
	}, conf.Requests)
	assert.Empty(t, conf.Base)

	_, err = domain.ParseConf([]string{"git", "foo==1==2"})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrMalformedConf.Error())
}

func TestStrandSet_LastDuplicateWinsFirstPositionKept(t *testing.T) {
	set := domain.NewStrandSet([]domain.StrandRequest{
		{Name: "a", Version: "1", HasVersion: true},
		{Name: "b"},
		{Name: "a", Version: "2", HasVersion: true},
	})

	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []domain.StrandRequest{
		{Name: "a", Version: "2", HasVersion: true},
		{Name: "b"},
	}, set.Requests())
}

func TestStrandSet_HasAndRemove(t *testing.T) {
	set := domain.NewStrandSet([]domain.StrandRequest{{Name: "a"}, {Name: "b"}, {Name: "c"}})

	assert.True(t, set.Has("a", "c"))
	assert.False(t, set.Has("a", "z"))

	set.Remove("b", "z")
	assert.Equal(t, []domain.StrandRequest{{Name: "a"}, {Name: "c"}}, set.Requests())

	req, ok := set.Get("c")
	assert.True(t, ok)
	assert.Equal(t, "c", req.Name)

	_, ok = set.Get("b")
	assert.False(t, ok)
}

func TestDockerfileBuilder(t *testing.T) {
	var b domain.DockerfileBuilder
	b.AppendLine("FROM alpine")
	b.AppendFragment("RUN a")
	b.AppendFragment("RUN b\n")
	b.AppendFragment("")
	b.AppendFragment("RUN c\nRUN d\n")

	df := b.Build()
	assert.Equal(t, "FROM alpine\nRUN a\nRUN b\nRUN c\nRUN d\n", df.String())
	assert.Equal(t, []string{"FROM alpine", "RUN a", "RUN b", "RUN c", "RUN d"}, df.Lines())
	assert.Equal(t, []byte(df.String()), df.Bytes())
}

func TestDockerfile_NonASCIIPassesThrough(t *testing.T) {
	df := domain.NewDockerfile("LABEL maintainer=\"J\xc3\xb6rg\"\nRUN echo \xff\n")
	assert.Equal(t, []byte("LABEL maintainer=\"J\xc3\xb6rg\"\nRUN echo \xff\n"), df.Bytes())
	assert.Len(t, df.Lines(), 2)
}

func TestDockerfile_EmptyHasNoLines(t *testing.T) {
	assert.Nil(t, domain.NewDockerfile("").Lines())
}

func TestParseColorSetting(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.ColorSetting
		wantErr bool
	}{
		{in: "never", want: domain.ColorNever},
		{in: "auto", want: domain.ColorAuto},
		{in: "always", want: domain.ColorAlways},
		{in: "", want: domain.ColorAuto},
		{in: "sometimes", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseColorSetting(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorContains(t, err, domain.ErrInvalidColorSetting.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorSetting_Enabled(t *testing.T) {
	assert.True(t, domain.ColorAlways.Enabled(false))
	assert.True(t, domain.ColorAlways.Enabled(true))
	assert.True(t, domain.ColorAuto.Enabled(true))
	assert.False(t, domain.ColorAuto.Enabled(false))
	assert.False(t, domain.ColorNever.Enabled(true))
}

func TestParseLintBackend(t *testing.T) {
	got, err := domain.ParseLintBackend("")
	require.NoError(t, err)
	assert.Equal(t, domain.LintBackendCLI, got)

	got, err = domain.ParseLintBackend("engine")
	require.NoError(t, err)
	assert.Equal(t, domain.LintBackendEngine, got)

	_, err = domain.ParseLintBackend("k8s")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidLintBackend.Error())
}

func TestSummarize(t *testing.T) {
	s := domain.Summarize([]domain.Diagnostic{
		{Level: domain.LevelError},
		{Level: domain.LevelWarning},
		{Level: "Warning"},
		{Level: "info"},
		{Level: "style"},
	})
	assert.Equal(t, domain.DiagnosticSummary{Errors: 3, Warnings: 2}, s)
}
