// Package links expands cross-reference link templates into concrete URLs.
// A template pattern carries exactly one %s placeholder that receives a
// version or path segment, e.g. "http://docs.example.com/%s/" + "1.0".
package links

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"git.home.luguber.info/inful/docconf/internal/config"
)

var (
	// ErrUnknownTemplate is returned when no template is registered under the requested name.
	ErrUnknownTemplate = errors.New("unknown link template")
	// ErrBadPattern is returned when a pattern does not contain exactly one %s placeholder.
	ErrBadPattern = errors.New("pattern must contain exactly one %s placeholder")
)

const placeholder = "%s"

// Template is one named cross-reference link pattern.
type Template struct {
	Name    string
	Pattern string
}

// Set holds the link templates of one documentation project.
type Set struct {
	prefix    string
	templates map[string]Template
}

// NewSet builds a template set from configuration. Patterns are not validated
// here; config.Validate covers that before a Set is constructed.
func NewSet(cfg config.LinksConfig) *Set {
	templates := make(map[string]Template, len(cfg.Templates))
	for name, pattern := range cfg.Templates {
		templates[name] = Template{Name: name, Pattern: pattern}
	}
	return &Set{prefix: cfg.Prefix, templates: templates}
}

// Names returns the registered template names in sorted order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.templates))
	for name := range s.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Qualified returns the namespaced template name handed to the host,
// e.g. prefix "silhouette" and name "api-doc" yield "silhouette-api-doc".
func (s *Set) Qualified(name string) string {
	if s.prefix == "" {
		return name
	}
	return s.prefix + "-" + name
}

// Lookup returns the template registered under name (bare or qualified).
func (s *Set) Lookup(name string) (Template, bool) {
	if t, ok := s.templates[name]; ok {
		return t, true
	}
	if s.prefix != "" {
		if bare, found := strings.CutPrefix(name, s.prefix+"-"); found {
			t, ok := s.templates[bare]
			return t, ok
		}
	}
	return Template{}, false
}

// Expand substitutes version into the named template's placeholder.
// The version is substituted exactly once; patterns without exactly one
// placeholder are rejected so no unresolved placeholder can leak into output.
func (s *Set) Expand(name, version string) (string, error) {
	t, ok := s.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: %q (known: %v)", ErrUnknownTemplate, name, s.Names())
	}
	return t.Expand(version)
}

// Expand substitutes version into the template's single placeholder.
func (t Template) Expand(version string) (string, error) {
	if n := strings.Count(t.Pattern, placeholder); n != 1 {
		return "", fmt.Errorf("%w: template %q has %d", ErrBadPattern, t.Name, n)
	}
	return strings.Replace(t.Pattern, placeholder, version, 1), nil
}
