// Package resolver turns a conf and a strand database into Dockerfile text.
package resolver

import (
	"strings"

	"go.trai.ch/dummit/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolver resolves strand requests into a Dockerfile.
// It holds no per-request state and may be reused.
type Resolver struct {
	specialCases []SpecialCase
}

// NewResolver creates a Resolver applying the given special cases in order.
func NewResolver(cases ...SpecialCase) *Resolver {
	return &Resolver{specialCases: cases}
}

// ResolveTokens parses raw conf tokens and resolves them.
func (r *Resolver) ResolveTokens(tokens []string, db domain.StrandDatabase) (*domain.Dockerfile, error) {
	conf, err := domain.ParseConf(tokens)
	if err != nil {
		return nil, err
	}
	return r.Resolve(conf, db)
}

// Resolve builds the Dockerfile for conf.
//
// The first lines declare the base image as `ARG BASE_IMAGE=<image>` followed by
// `FROM $BASE_IMAGE`. The base image comes from the `base` strand, else from the
// conf's literal base; a matching special case overrides both. A `base` strand
// naming no image (`base==`) leaves the literal base in place. Every remaining
// strand contributes one fragment in request order.
func (r *Resolver) Resolve(conf domain.Conf, db domain.StrandDatabase) (*domain.Dockerfile, error) {
	set := domain.NewStrandSet(conf.Requests)

	baseReq, hasBaseReq := set.Get(domain.BaseStrand)
	set.Remove(domain.BaseStrand)

	baseImage, matched, err := r.applySpecialCases(set)
	if err != nil {
		return nil, err
	}

	if !matched {
		baseImage = conf.Base
		if hasBaseReq {
			fromStrand, err := baseImageFrom(baseReq, db)
			if err != nil {
				return nil, err
			}
			if fromStrand != "" {
				baseImage = fromStrand
			}
		}
	}

	if baseImage == "" {
		return nil, domain.ErrMissingBaseImage
	}

	var b domain.DockerfileBuilder
	b.AppendLine("ARG BASE_IMAGE=" + baseImage)
	b.AppendLine("FROM $BASE_IMAGE")

	for _, req := range set.Requests() {
		fragment, err := db.Lookup(req)
		if err != nil {
			return nil, err
		}
		b.AppendFragment(fragment)
	}

	return b.Build(), nil
}

// applySpecialCases renders the base image of every matching case, consuming
// its strands. When several cases match, the last one wins.
func (r *Resolver) applySpecialCases(set *domain.StrandSet) (string, bool, error) {
	var (
		image   string
		matched bool
	)
	for _, sc := range r.specialCases {
		if !sc.Applies(set) {
			continue
		}
		rendered, err := sc.Render(set)
		if err != nil {
			return "", false, err
		}
		image, matched = rendered, true
		set.Remove(sc.Consumed()...)
	}
	return image, matched, nil
}

// baseImageFrom returns the literal image for a base request. A versioned
// `base==<image>` names the image directly; a bare `base` uses the database's
// scalar base entry.
func baseImageFrom(req domain.StrandRequest, db domain.StrandDatabase) (string, error) {
	if req.HasVersion {
		return req.Version, nil
	}

	image, err := db.Lookup(req)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve base image")
	}
	return strings.TrimRight(image, "\r\n"), nil
}
