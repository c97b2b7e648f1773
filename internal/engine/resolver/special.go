package resolver

import (
	"strings"
	"text/template"

	"go.trai.ch/dummit/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultTorchImageTemplate renders the base image for the pytorch+cuda special case.
// Template fields are the strand names.
const DefaultTorchImageTemplate = "pytorch/pytorch:{{.pytorch}}-cuda{{.cuda}}-cudnn{{.cudnn}}-{{.mode}}"

// SpecialCase collapses a combination of strands into a single base image.
type SpecialCase struct {
	// Name identifies the case in errors.
	Name string
	// Requires lists the strands that must all be present for the case to apply.
	// Each of them must carry a non-empty version.
	Requires []string
	// Optional lists further strands the case consumes when present.
	Optional []string
	// Defaults supplies template values for optional strands that are absent or unversioned.
	Defaults map[string]string

	image *template.Template
}

// NewSpecialCase parses the image template of a special case.
func NewSpecialCase(name, imageTemplate string, requires, optional []string, defaults map[string]string) (SpecialCase, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(imageTemplate)
	if err != nil {
		return SpecialCase{}, zerr.With(zerr.Wrap(err, domain.ErrInvalidSpecialCaseTemplate.Error()), "case", name)
	}
	return SpecialCase{
		Name:     name,
		Requires: requires,
		Optional: optional,
		Defaults: defaults,
		image:    tmpl,
	}, nil
}

// TorchCase returns the pytorch+cuda special case rendered with imageTemplate.
// An empty template selects DefaultTorchImageTemplate.
func TorchCase(imageTemplate string) (SpecialCase, error) {
	if imageTemplate == "" {
		imageTemplate = DefaultTorchImageTemplate
	}
	return NewSpecialCase(
		"pytorch",
		imageTemplate,
		[]string{"pytorch", "cuda"},
		[]string{"cudnn", "mode"},
		map[string]string{"cudnn": "7", "mode": "devel"},
	)
}

// Applies reports whether every required strand is in the set.
func (c SpecialCase) Applies(set *domain.StrandSet) bool {
	return set.Has(c.Requires...)
}

// Render builds the base image from the strands in the set.
func (c SpecialCase) Render(set *domain.StrandSet) (string, error) {
	values := make(map[string]string, len(c.Requires)+len(c.Optional))
	for k, v := range c.Defaults {
		values[k] = v
	}

	for _, name := range c.Requires {
		req, _ := set.Get(name)
		if !req.HasVersion || req.Version == "" {
			return "", zerr.With(zerr.With(domain.ErrMissingVersionIndex, "strand", name), "case", c.Name)
		}
		values[name] = req.Version
	}

	for _, name := range c.Optional {
		if req, ok := set.Get(name); ok && req.HasVersion && req.Version != "" {
			values[name] = req.Version
		}
	}

	var sb strings.Builder
	if err := c.image.Execute(&sb, values); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrInvalidSpecialCaseTemplate.Error()), "case", c.Name)
	}
	return sb.String(), nil
}

// Consumed lists every strand the case removes from the working set.
func (c SpecialCase) Consumed() []string {
	out := make([]string, 0, len(c.Requires)+len(c.Optional))
	out = append(out, c.Requires...)
	return append(out, c.Optional...)
}
