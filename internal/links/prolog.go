package links

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"git.home.luguber.info/inful/docconf/internal/config"
)

// Prolog substitution markers. The configured prolog text references project
// metadata symbolically so the same banner survives version bumps.
const (
	markerLastStable = "|last_stable|"
	markerRelease    = "|release|"
)

// RenderProlog fills the prolog substitution markers from project metadata.
// |last_stable| becomes a markdown link to the last stable docs (via the
// "doc" template when present, plain text otherwise); |release| becomes the
// full release string.
func (s *Set) RenderProlog(prolog string, project config.ProjectConfig) (string, error) {
	lastStable := project.LastStable
	if _, ok := s.Lookup("doc"); ok && lastStable != "" {
		url, err := s.Expand("doc", lastStable)
		if err != nil {
			return "", fmt.Errorf("render prolog: %w", err)
		}
		lastStable = fmt.Sprintf("[%s](%s)", project.LastStable, url)
	}
	out := strings.ReplaceAll(prolog, markerLastStable, lastStable)
	out = strings.ReplaceAll(out, markerRelease, project.Release)
	return out, nil
}

// PrologHTML renders the expanded prolog to an HTML fragment for the
// generated banner partial.
func (s *Set) PrologHTML(prolog string, project config.ProjectConfig) (string, error) {
	expanded, err := s.RenderProlog(prolog, project)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(expanded) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(expanded), &buf); err != nil {
		return "", fmt.Errorf("render prolog html: %w", err)
	}
	return buf.String(), nil
}
