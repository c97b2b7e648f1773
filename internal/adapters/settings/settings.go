// Package settings resolves command defaults from flags, DUMMIT_* environment
// variables and an optional settings file using viper.
package settings

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.trai.ch/dummit/internal/core/domain"
	"go.trai.ch/zerr"
)

// Setting keys. Each key doubles as the flag name and, upper-cased with
// dashes replaced by underscores, as the DUMMIT_ environment variable suffix.
const (
	KeyStrandsPath      = "strands-path"
	KeyColor            = "color"
	KeyNoLint           = "no-lint"
	KeyLintBackend      = "lint-backend"
	KeyLintImage        = "lint-image"
	KeyContainerRuntime = "container-runtime"
	KeyLintTimeout      = "lint-timeout"
	KeyLogJSON          = "log-json"
	KeyTrace            = "trace"
	KeyTorchTemplate    = "torch-template"
)

// Settings holds the resolved values of every setting.
type Settings struct {
	StrandsPath      string              `mapstructure:"strands-path"`
	Color            domain.ColorSetting `mapstructure:"color"`
	NoLint           bool                `mapstructure:"no-lint"`
	LintBackend      domain.LintBackend  `mapstructure:"lint-backend"`
	LintImage        string              `mapstructure:"lint-image"`
	ContainerRuntime string              `mapstructure:"container-runtime"`
	LintTimeout      time.Duration       `mapstructure:"lint-timeout"`
	LogJSON          bool                `mapstructure:"log-json"`
	Trace            bool                `mapstructure:"trace"`
	TorchTemplate    string              `mapstructure:"torch-template"`
}

// Defaults returns the settings used when nothing overrides them.
func Defaults() Settings {
	return Settings{
		StrandsPath:      domain.DefaultStrandsPath,
		Color:            domain.ColorAuto,
		LintBackend:      domain.LintBackendCLI,
		LintImage:        domain.DefaultLintImage,
		ContainerRuntime: domain.DefaultContainerRuntime,
		LintTimeout:      domain.DefaultLintTimeout,
	}
}

// RegisterFlags defines one flag per setting on flags.
func RegisterFlags(flags *pflag.FlagSet) {
	d := Defaults()
	flags.String(KeyStrandsPath, d.StrandsPath, "Path to the strand database")
	flags.String(KeyColor, string(d.Color), "Colorize the lint report: never, auto or always")
	flags.Bool(KeyNoLint, d.NoLint, "Skip linting the generated Dockerfile")
	flags.String(KeyLintBackend, string(d.LintBackend), "How to run the linter container: cli or engine")
	flags.String(KeyLintImage, d.LintImage, "Container image providing hadolint")
	flags.String(KeyContainerRuntime, d.ContainerRuntime, "Container runtime CLI used by the cli backend")
	flags.Duration(KeyLintTimeout, d.LintTimeout, "Maximum time a lint run may take")
	flags.Bool(KeyLogJSON, d.LogJSON, "Emit logs as JSON")
	flags.Bool(KeyTrace, d.Trace, "Log how long each phase took")
	flags.String(KeyTorchTemplate, d.TorchTemplate, "Go template for the pytorch+cuda base image")
}

// Loader reads settings relative to a working directory.
type Loader struct {
	dir string
}

// NewLoader creates a Loader looking for the settings file in dir.
// An empty dir means the current working directory.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// Load resolves every setting. Precedence, highest first: flags changed on
// the command line, DUMMIT_* environment variables, the settings file, defaults.
// A nil flag set is allowed.
func (l *Loader) Load(flags *pflag.FlagSet) (Settings, error) {
	v := viper.New()

	d := Defaults()
	v.SetDefault(KeyStrandsPath, d.StrandsPath)
	v.SetDefault(KeyColor, string(d.Color))
	v.SetDefault(KeyNoLint, d.NoLint)
	v.SetDefault(KeyLintBackend, string(d.LintBackend))
	v.SetDefault(KeyLintImage, d.LintImage)
	v.SetDefault(KeyContainerRuntime, d.ContainerRuntime)
	v.SetDefault(KeyLintTimeout, d.LintTimeout)
	v.SetDefault(KeyLogJSON, d.LogJSON)
	v.SetDefault(KeyTrace, d.Trace)
	v.SetDefault(KeyTorchTemplate, d.TorchTemplate)

	v.SetEnvPrefix(domain.SettingsEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := l.readFile(v); err != nil {
		return Settings{}, err
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Settings{}, zerr.Wrap(err, domain.ErrSettingsLoadFailed.Error())
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, zerr.Wrap(err, domain.ErrSettingsLoadFailed.Error())
	}

	return s.normalize()
}

func (l *Loader) readFile(v *viper.Viper) error {
	path := filepath.Join(l.dir, domain.SettingsFileName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrSettingsLoadFailed.Error()), "path", path)
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSettingsLoadFailed.Error()), "path", path)
	}
	return nil
}

// normalize validates the enumerated settings and fills their empty values.
func (s Settings) normalize() (Settings, error) {
	color, err := domain.ParseColorSetting(string(s.Color))
	if err != nil {
		return Settings{}, err
	}
	backend, err := domain.ParseLintBackend(string(s.LintBackend))
	if err != nil {
		return Settings{}, err
	}
	s.Color = color
	s.LintBackend = backend
	return s, nil
}
