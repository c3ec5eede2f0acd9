package config

import (
	"fmt"
	"strings"
)

// Validate checks the configuration for problems that would produce a broken
// generated site. It returns the first problem found.
func (c *SiteConfig) Validate() error {
	if strings.TrimSpace(c.Project.Name) == "" {
		return fmt.Errorf("project.name is required")
	}
	if c.Project.Version == "" {
		return fmt.Errorf("project.version is required")
	}
	if c.Project.Release == "" {
		return fmt.Errorf("project.release is required")
	}
	for name, pattern := range c.Links.Templates {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("links.templates contains an empty template name")
		}
		if n := strings.Count(pattern, "%s"); n != 1 {
			return fmt.Errorf("links.templates.%s: pattern must contain exactly one %%s placeholder, found %d", name, n)
		}
	}
	if c.HTML.Theme != "" && c.HTML.ThemeType() == "" {
		return fmt.Errorf("html.theme: unknown theme %q, valid options: %v", c.HTML.Theme, ValidThemes())
	}
	for i, p := range c.HTML.StaticPaths {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("html.static_paths[%d] is empty", i)
		}
	}
	for i, doc := range c.LaTeX.Documents {
		if doc.Source == "" || doc.Target == "" {
			return fmt.Errorf("latex.documents[%d]: source and target are required", i)
		}
	}
	for i, page := range c.ManPages {
		if page.Source == "" || page.Name == "" {
			return fmt.Errorf("man_pages[%d]: source and name are required", i)
		}
		if page.Section < 1 || page.Section > 9 {
			return fmt.Errorf("man_pages[%d]: section must be in 1..9, got %d", i, page.Section)
		}
	}
	return nil
}
