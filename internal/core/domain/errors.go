package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedConf is returned when a conf token is not of the form `name` or `name==version`.
	ErrMalformedConf = zerr.New("malformed conf entry, expected format: name or name==version")

	// ErrUnknownStrand is returned when a requested strand is absent from the strand database.
	ErrUnknownStrand = zerr.New("strand not found in strand database")

	// ErrMissingVersionIndex is returned when a requested version has no fragment, or when
	// an entry is requested with a version it cannot be indexed by (or without one it needs).
	ErrMissingVersionIndex = zerr.New("strand version not found")

	// ErrMissingBaseImage is returned when neither a base strand nor a special case provides a base image.
	ErrMissingBaseImage = zerr.New("no base image specified")

	// ErrInvalidStrandEntry is returned when a strand database value is neither a string, a list nor a mapping.
	ErrInvalidStrandEntry = zerr.New("invalid strand entry, expected string, list of strings or mapping of strings")

	// ErrInvalidConfEntry is returned when a conf item is neither a string token nor a base mapping.
	ErrInvalidConfEntry = zerr.New("invalid conf entry, expected string or 'base' mapping")

	// ErrInvalidSpecialCaseTemplate is returned when a special case image template cannot be rendered.
	ErrInvalidSpecialCaseTemplate = zerr.New("invalid special case image template")

	// ErrConfigReadFailed is returned when a YAML document cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when a YAML document cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrMissingOutputPath is returned when no Dockerfile path is given outside dry-run mode.
	ErrMissingOutputPath = zerr.New("dockerfile path is required unless --dry-run is set")

	// ErrInvalidColorSetting is returned when a color setting is not one of never, auto or always.
	ErrInvalidColorSetting = zerr.New("invalid color setting, expected 'never', 'auto' or 'always'")

	// ErrInvalidLintBackend is returned when a lint backend name is not recognized.
	ErrInvalidLintBackend = zerr.New("invalid lint backend, expected 'cli' or 'engine'")

	// ErrDockerfileWriteFailed is returned when the generated Dockerfile cannot be written.
	ErrDockerfileWriteFailed = zerr.New("failed to write dockerfile")

	// ErrDockerfileReadFailed is returned when an existing Dockerfile cannot be read back.
	ErrDockerfileReadFailed = zerr.New("failed to read dockerfile")

	// ErrLinterInvocation is returned when the linter process cannot be started or fails without output.
	ErrLinterInvocation = zerr.New("linter invocation failed")

	// ErrLinterOutputParse is returned when the linter output is not valid diagnostic JSON.
	ErrLinterOutputParse = zerr.New("failed to parse linter output")

	// ErrSettingsLoadFailed is returned when the settings file cannot be loaded.
	ErrSettingsLoadFailed = zerr.New("failed to load settings")
)
