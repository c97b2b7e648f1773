// Package config provides the YAML loaders for the strand database and conf documents.
package config

import (
	"fmt"

	"go.trai.ch/dummit/internal/core/domain"
	"go.trai.ch/dummit/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using YAML files.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a new Loader reading from the OS filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, FS: NewOSFS()}
}

// WithFileSystem replaces the filesystem the loader reads from.
func (l *Loader) WithFileSystem(fsys FileSystem) *Loader {
	l.FS = fsys
	return l
}

// LoadStrands reads the strand database at path.
func (l *Loader) LoadStrands(path string) (domain.StrandDatabase, error) {
	var file StrandsFile
	if err := l.readAndUnmarshalYAML(path, &file); err != nil {
		return nil, err
	}

	db := make(domain.StrandDatabase, len(file))
	for name, dto := range file {
		if dto == nil {
			return nil, zerr.With(zerr.With(domain.ErrInvalidStrandEntry, "strand", name), "path", path)
		}
		db[name] = dto.Entry
	}
	return db, nil
}

// LoadConf reads the conf document at path.
func (l *Loader) LoadConf(path string) (domain.Conf, error) {
	var file ConfFile
	if err := l.readAndUnmarshalYAML(path, &file); err != nil {
		return domain.Conf{}, err
	}

	var conf domain.Conf
	seen := make(map[string]domain.StrandRequest, len(file))
	for _, item := range file {
		if item.IsBase() {
			conf.Base = item.Base
			continue
		}

		req, err := domain.ParseStrandRequest(item.Token)
		if err != nil {
			return domain.Conf{}, zerr.With(zerr.With(err, "line", item.Line), "path", path)
		}

		if prev, dup := seen[req.Name]; dup && l.Logger != nil {
			l.Logger.Warn(fmt.Sprintf("strand '%s' requested more than once, using '%s' over '%s'", req.Name, req, prev))
		}
		seen[req.Name] = req
		conf.Requests = append(conf.Requests, req)
	}

	return conf, nil
}

func (l *Loader) readAndUnmarshalYAML(path string, target any) error {
	data, err := l.FS.ReadFile(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return zerr.With(zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	return nil
}
