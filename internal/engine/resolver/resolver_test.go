package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dummit/internal/core/domain"
	"go.trai.ch/dummit/internal/engine/resolver"
)

func testDatabase() domain.StrandDatabase {
	return domain.StrandDatabase{
		"git":     domain.NewScalarEntry("RUN apt-get update && apt-get install -y git\n"),
		"vim":     domain.NewScalarEntry("RUN apt-get install -y vim"),
		"foo":     domain.NewIndexedEntry("a.txt", "b.txt", "c.txt"),
		"python":  domain.NewKeyedEntry(map[string]string{"3.9": "RUN install-python 3.9\n", "3.11": "RUN install-python 3.11\n"}),
		"pytorch": domain.NewIndexedEntry("RUN echo torch\n"),
		"cuda":    domain.NewIndexedEntry("RUN echo cuda\n"),
		"base":    domain.NewScalarEntry("ubuntu:22.04\n"),
	}
}

func newDefaultResolver(t *testing.T) *resolver.Resolver {
	t.Helper()
	torch, err := resolver.TorchCase("")
	require.NoError(t, err)
	return resolver.NewResolver(torch)
}

func TestResolveTokens_ScalarStrands(t *testing.T) {
	r := newDefaultResolver(t)

	df, err := r.ResolveTokens([]string{"base==alpine:3.19", "git", "vim"}, testDatabase())
	require.NoError(t, err)

	want := "ARG BASE_IMAGE=alpine:3.19\n" +
		"FROM $BASE_IMAGE\n" +
		"RUN apt-get update && apt-get install -y git\n" +
		"RUN apt-get install -y vim\n"
	assert.Equal(t, want, df.String())
}

func TestResolveTokens_IndexedVersion(t *testing.T) {
	r := newDefaultResolver(t)

	df, err := r.ResolveTokens([]string{"base==alpine", "foo==2"}, testDatabase())
	require.NoError(t, err)
	assert.Equal(t, []string{"ARG BASE_IMAGE=alpine", "FROM $BASE_IMAGE", "c.txt"}, df.Lines())
}

func TestResolveTokens_KeyedVersion(t *testing.T) {
	r := newDefaultResolver(t)

	df, err := r.ResolveTokens([]string{"base==alpine", "python==3.11"}, testDatabase())
	require.NoError(t, err)
	assert.Contains(t, df.String(), "RUN install-python 3.11\n")
	assert.NotContains(t, df.String(), "3.9")
}

func TestResolveTokens_TorchOverridesExplicitBase(t *testing.T) {
	r := newDefaultResolver(t)

	df, err := r.ResolveTokens([]string{"base==myimage", "pytorch==1.8", "cuda==11.1"}, testDatabase())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"ARG BASE_IMAGE=pytorch/pytorch:1.8-cuda11.1-cudnn7-devel",
		"FROM $BASE_IMAGE",
	}, df.Lines())
	assert.NotContains(t, df.String(), "myimage")
	assert.NotContains(t, df.String(), "echo torch")
	assert.NotContains(t, df.String(), "echo cuda")
}

func TestResolveTokens_TorchConsumesCudnnAndMode(t *testing.T) {
	r := newDefaultResolver(t)

	df, err := r.ResolveTokens([]string{"cuda==10.2", "git", "pytorch==1.6.0", "cudnn==8", "mode==runtime"}, testDatabase())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"ARG BASE_IMAGE=pytorch/pytorch:1.6.0-cuda10.2-cudnn8-runtime",
		"FROM $BASE_IMAGE",
		"RUN apt-get update && apt-get install -y git",
	}, df.Lines())
}

func TestResolveTokens_TorchWithoutVersionFails(t *testing.T) {
	r := newDefaultResolver(t)

	_, err := r.ResolveTokens([]string{"pytorch", "cuda==11.1"}, testDatabase())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrMissingVersionIndex.Error())
}

func TestResolveTokens_PytorchAloneIsAStrand(t *testing.T) {
	r := newDefaultResolver(t)

	df, err := r.ResolveTokens([]string{"base==alpine", "pytorch==0"}, testDatabase())
	require.NoError(t, err)
	assert.Contains(t, df.String(), "RUN echo torch\n")
}

func TestResolveTokens_BareBaseUsesDatabase(t *testing.T) {
	r := newDefaultResolver(t)

	df, err := r.ResolveTokens([]string{"base", "git"}, testDatabase())
	require.NoError(t, err)
	assert.Equal(t, "ARG BASE_IMAGE=ubuntu:22.04", df.Lines()[0])
}

func TestResolve_LiteralConfBase(t *testing.T) {
	r := newDefaultResolver(t)

	conf, err := domain.ParseConf([]string{"git"})
	require.NoError(t, err)
	conf.Base = "debian:bookworm"

	df, err := r.Resolve(conf, testDatabase())
	require.NoError(t, err)
	assert.Equal(t, "ARG BASE_IMAGE=debian:bookworm", df.Lines()[0])
}

func TestResolve_BaseStrandWinsOverLiteralBase(t *testing.T) {
	r := newDefaultResolver(t)

	conf, err := domain.ParseConf([]string{"base==alpine"})
	require.NoError(t, err)
	conf.Base = "debian:bookworm"

	df, err := r.Resolve(conf, testDatabase())
	require.NoError(t, err)
	assert.Equal(t, "ARG BASE_IMAGE=alpine", df.Lines()[0])
}

func TestResolveTokens_DuplicatesLastWins(t *testing.T) {
	r := newDefaultResolver(t)

	df, err := r.ResolveTokens([]string{"base==alpine", "foo==0", "git", "foo==1"}, testDatabase())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"ARG BASE_IMAGE=alpine",
		"FROM $BASE_IMAGE",
		"b.txt",
		"RUN apt-get update && apt-get install -y git",
	}, df.Lines())
}

func TestResolveTokens_Errors(t *testing.T) {
	tests := []struct {
		name    string
		tokens  []string
		wantErr error
	}{
		{
			name:    "malformed token",
			tokens:  []string{"base==alpine", "foo==1==2"},
			wantErr: domain.ErrMalformedConf,
		},
		{
			name:    "unknown strand",
			tokens:  []string{"base==alpine", "emacs"},
			wantErr: domain.ErrUnknownStrand,
		},
		{
			name:    "list entry without version",
			tokens:  []string{"base==alpine", "foo"},
			wantErr: domain.ErrMissingVersionIndex,
		},
		{
			name:    "scalar entry with version",
			tokens:  []string{"base==alpine", "git==2"},
			wantErr: domain.ErrMissingVersionIndex,
		},
		{
			name:    "index out of range",
			tokens:  []string{"base==alpine", "foo==7"},
			wantErr: domain.ErrMissingVersionIndex,
		},
		{
			name:    "no base image",
			tokens:  []string{"git"},
			wantErr: domain.ErrMissingBaseImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newDefaultResolver(t)
			df, err := r.ResolveTokens(tt.tokens, testDatabase())
			require.Error(t, err)
			assert.Nil(t, df)
			assert.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}

func TestResolveTokens_Deterministic(t *testing.T) {
	r := newDefaultResolver(t)
	tokens := []string{"base==alpine", "vim", "python==3.9", "git", "foo==1"}

	first, err := r.ResolveTokens(tokens, testDatabase())
	require.NoError(t, err)
	second, err := r.ResolveTokens(tokens, testDatabase())
	require.NoError(t, err)

	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestResolve_CustomTorchTemplate(t *testing.T) {
	torch, err := resolver.TorchCase("nvcr.io/pytorch:{{.pytorch}}-cu{{.cuda}}")
	require.NoError(t, err)
	r := resolver.NewResolver(torch)

	df, err := r.ResolveTokens([]string{"pytorch==2.1", "cuda==12.1"}, testDatabase())
	require.NoError(t, err)
	assert.Equal(t, "ARG BASE_IMAGE=nvcr.io/pytorch:2.1-cu12.1", df.Lines()[0])
}

func TestTorchCase_InvalidTemplate(t *testing.T) {
	_, err := resolver.TorchCase("pytorch:{{.pytorch")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidSpecialCaseTemplate.Error())
}

func TestResolve_TemplateWithUnknownFieldFails(t *testing.T) {
	torch, err := resolver.TorchCase("img:{{.tensorflow}}")
	require.NoError(t, err)
	r := resolver.NewResolver(torch)

	_, err = r.ResolveTokens([]string{"pytorch==2.1", "cuda==12.1"}, testDatabase())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidSpecialCaseTemplate.Error())
}

func TestResolver_NoSpecialCases(t *testing.T) {
	r := resolver.NewResolver()

	df, err := r.ResolveTokens([]string{"base==alpine", "pytorch==0", "cuda==0"}, testDatabase())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"ARG BASE_IMAGE=alpine",
		"FROM $BASE_IMAGE",
		"RUN echo torch",
		"RUN echo cuda",
	}, df.Lines())
}

func TestTorchCase_EmptyTemplateUsesDefault(t *testing.T) {
	torch, err := resolver.TorchCase("")
	require.NoError(t, err)
	r := resolver.NewResolver(torch)

	df, err := r.ResolveTokens([]string{"pytorch==2.0", "cuda==11.7", "cudnn==8"}, testDatabase())
	require.NoError(t, err)
	assert.Equal(t, "ARG BASE_IMAGE=pytorch/pytorch:2.0-cuda11.7-cudnn8-devel", df.Lines()[0])
}

func TestResolveTokens_TorchRejectsEmptyVersion(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
	}{
		{name: "empty pytorch", tokens: []string{"pytorch==", "cuda==11.1"}},
		{name: "empty cuda", tokens: []string{"pytorch==1.8", "cuda=="}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			df, err := newDefaultResolver(t).ResolveTokens(tt.tokens, testDatabase())
			require.Error(t, err)
			assert.Nil(t, df)
			assert.ErrorContains(t, err, domain.ErrMissingVersionIndex.Error())
		})
	}
}

func TestResolve_EmptyBaseStrandFallsBackToLiteralBase(t *testing.T) {
	conf, err := domain.ParseConf([]string{"base==", "git"})
	require.NoError(t, err)
	conf.Base = "debian:bookworm"

	df, err := newDefaultResolver(t).Resolve(conf, testDatabase())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"ARG BASE_IMAGE=debian:bookworm",
		"FROM $BASE_IMAGE",
		"RUN apt-get update && apt-get install -y git",
	}, df.Lines())
}

func TestResolveTokens_EmptyBaseStrandAloneHasNoBase(t *testing.T) {
	_, err := newDefaultResolver(t).ResolveTokens([]string{"base==", "git"}, testDatabase())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrMissingBaseImage.Error())
}
