package config

import (
	"go.trai.ch/dummit/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// StrandsFile represents the structure of the strand database document.
type StrandsFile map[string]*StrandEntryDTO

// StrandEntryDTO represents one strand database value: a string, a list of
// strings, or a mapping from version to string.
type StrandEntryDTO struct {
	Entry domain.StrandEntry
}

// UnmarshalYAML decodes the entry according to the node kind.
func (d *StrandEntryDTO) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var fragment string
		if err := node.Decode(&fragment); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrInvalidStrandEntry.Error()), "line", node.Line)
		}
		d.Entry = domain.NewScalarEntry(fragment)
	case yaml.SequenceNode:
		var fragments []string
		if err := node.Decode(&fragments); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrInvalidStrandEntry.Error()), "line", node.Line)
		}
		d.Entry = domain.NewIndexedEntry(fragments...)
	case yaml.MappingNode:
		var fragments map[string]string
		if err := node.Decode(&fragments); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrInvalidStrandEntry.Error()), "line", node.Line)
		}
		d.Entry = domain.NewKeyedEntry(fragments)
	default:
		return zerr.With(domain.ErrInvalidStrandEntry, "line", node.Line)
	}
	return nil
}

// ConfFile represents the structure of a conf document: a sequence of items.
type ConfFile []ConfItemDTO

// ConfItemDTO is a single conf item: either a strand token or a `base: <image>` mapping.
type ConfItemDTO struct {
	Token string
	Base  string
	Line  int
}

// UnmarshalYAML decodes a token scalar or a base mapping.
func (d *ConfItemDTO) UnmarshalYAML(node *yaml.Node) error {
	d.Line = node.Line

	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&d.Token)
	case yaml.MappingNode:
		var m map[string]string
		if err := node.Decode(&m); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrInvalidConfEntry.Error()), "line", node.Line)
		}
		base, ok := m[domain.BaseStrand]
		if !ok || len(m) != 1 {
			return zerr.With(domain.ErrInvalidConfEntry, "line", node.Line)
		}
		d.Base = base
		return nil
	default:
		return zerr.With(domain.ErrInvalidConfEntry, "line", node.Line)
	}
}

// IsBase reports whether the item is a `base:` mapping.
func (d ConfItemDTO) IsBase() bool {
	return d.Token == "" && d.Base != ""
}
