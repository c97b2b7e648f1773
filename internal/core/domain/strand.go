package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// VersionSeparator separates a strand name from its pinned version in a conf token.
const VersionSeparator = "=="

// BaseStrand is the reserved strand name that carries the literal base image reference.
const BaseStrand = "base"

// StrandRequest is a single entry of a conf: a strand name with an optional pinned version.
type StrandRequest struct {
	Name       string
	Version    string
	HasVersion bool
}

// ParseStrandRequest parses a conf token of the form `name` or `name==version`.
// A token with more than one separator, or with an empty name, is malformed.
func ParseStrandRequest(token string) (StrandRequest, error) {
	parts := strings.Split(token, VersionSeparator)
	switch len(parts) {
	case 1:
		if parts[0] == "" {
			return StrandRequest{}, zerr.With(ErrMalformedConf, "token", token)
		}
		return StrandRequest{Name: parts[0]}, nil
	case 2:
		if parts[0] == "" {
			return StrandRequest{}, zerr.With(ErrMalformedConf, "token", token)
		}
		return StrandRequest{Name: parts[0], Version: parts[1], HasVersion: true}, nil
	default:
		return StrandRequest{}, zerr.With(ErrMalformedConf, "token", token)
	}
}

// String renders the request back into its token form.
func (r StrandRequest) String() string {
	if !r.HasVersion {
		return r.Name
	}
	return r.Name + VersionSeparator + r.Version
}

// EntryKind describes the shape of a strand database value.
type EntryKind int

const (
	// EntryScalar is a single unversioned fragment.
	EntryScalar EntryKind = iota
	// EntryIndexed is an ordered list of fragments addressed by a 0-based numeric version.
	EntryIndexed
	// EntryKeyed is a mapping from exact version strings to fragments.
	EntryKeyed
)

// String returns the human-readable name of the entry kind.
func (k EntryKind) String() string {
	switch k {
	case EntryScalar:
		return "scalar"
	case EntryIndexed:
		return "list"
	case EntryKeyed:
		return "mapping"
	default:
		return "unknown"
	}
}

// StrandEntry is the value stored for a strand in the strand database.
type StrandEntry struct {
	kind     EntryKind
	fragment string
	indexed  []string
	keyed    map[string]string
}

// NewScalarEntry creates an entry holding a single unversioned fragment.
func NewScalarEntry(fragment string) StrandEntry {
	return StrandEntry{kind: EntryScalar, fragment: fragment}
}

// NewIndexedEntry creates an entry whose fragments are addressed by 0-based position.
func NewIndexedEntry(fragments ...string) StrandEntry {
	return StrandEntry{kind: EntryIndexed, indexed: append([]string(nil), fragments...)}
}

// NewKeyedEntry creates an entry whose fragments are addressed by exact version string.
func NewKeyedEntry(fragments map[string]string) StrandEntry {
	keyed := make(map[string]string, len(fragments))
	for k, v := range fragments {
		keyed[k] = v
	}
	return StrandEntry{kind: EntryKeyed, keyed: keyed}
}

// Kind returns the shape of the entry.
func (e StrandEntry) Kind() EntryKind {
	return e.kind
}

// Fragment returns the unversioned fragment. It fails for versioned entries.
func (e StrandEntry) Fragment() (string, error) {
	if e.kind != EntryScalar {
		return "", zerr.With(ErrMissingVersionIndex, "reason", "entry is a "+e.kind.String()+" and needs a version")
	}
	return e.fragment, nil
}

// At returns the fragment for the given version.
//
// List entries parse the version as a 0-based integer index. Mapping entries
// match the version string exactly. Scalar entries cannot be versioned.
func (e StrandEntry) At(version string) (string, error) {
	switch e.kind {
	case EntryIndexed:
		idx, err := strconv.Atoi(strings.TrimSpace(version))
		if err != nil {
			return "", zerr.With(ErrMissingVersionIndex, "reason", "version is not a numeric index")
		}
		if idx < 0 || idx >= len(e.indexed) {
			return "", zerr.With(ErrMissingVersionIndex, "available", len(e.indexed))
		}
		return e.indexed[idx], nil
	case EntryKeyed:
		fragment, ok := e.keyed[version]
		if !ok {
			return "", zerr.With(ErrMissingVersionIndex, "reason", "no fragment for version")
		}
		return fragment, nil
	default:
		return "", zerr.With(ErrMissingVersionIndex, "reason", "entry is a scalar and cannot be versioned")
	}
}

// StrandDatabase maps strand names to their fragments.
type StrandDatabase map[string]StrandEntry

// Lookup returns the fragment for a request, enforcing that the strand exists and
// that the request's version (or lack of one) matches the entry shape.
func (db StrandDatabase) Lookup(req StrandRequest) (string, error) {
	entry, ok := db[req.Name]
	if !ok {
		return "", zerr.With(ErrUnknownStrand, "strand", req.Name)
	}

	var (
		fragment string
		err      error
	)
	if req.HasVersion {
		fragment, err = entry.At(req.Version)
	} else {
		fragment, err = entry.Fragment()
	}
	if err != nil {
		return "", zerr.With(zerr.With(err, "strand", req.Name), "version", req.Version)
	}
	return fragment, nil
}
