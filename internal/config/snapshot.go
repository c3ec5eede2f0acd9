package config

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
)

// Snapshot computes a stable hash of generation-affecting configuration fields.
// Watch mode uses it to skip regeneration when a config file write did not
// change anything meaningful. Map and slice fields are hashed in sorted order.
func (c *SiteConfig) Snapshot() string {
	if c == nil {
		return ""
	}
	h := sha256.New()
	w := func(parts ...string) {
		h.Write([]byte(strings.Join(parts, "=")))
		h.Write([]byte{0})
	}
	w("project.name", c.Project.Name)
	w("project.copyright", c.Project.Copyright)
	w("project.version", c.Project.Version)
	w("project.release", c.Project.Release)
	w("project.last_stable", c.Project.LastStable)
	w("source.suffix", c.Source.Suffix)
	w("source.master_doc", c.Source.MasterDoc)
	w("source.templates_path", strings.Join(sorted(c.Source.TemplatesPath), ","))
	w("source.exclude_patterns", strings.Join(sorted(c.Source.ExcludePatterns), ","))
	w("links.prefix", c.Links.Prefix)
	for _, name := range sortedKeys(c.Links.Templates) {
		w("links.templates."+name, c.Links.Templates[name])
	}
	w("links.prolog", c.Links.Prolog)
	w("html.theme", c.HTML.Theme)
	w("html.static_paths", strings.Join(sorted(c.HTML.StaticPaths), ","))
	w("html.use_smartypants", strconv.FormatBool(c.HTML.Smartypants()))
	w("html.help_basename", c.HTML.HelpBasename)
	for _, key := range sortedKeys(c.LaTeX.Elements) {
		w("latex.elements."+key, c.LaTeX.Elements[key])
	}
	for _, doc := range c.LaTeX.Documents {
		w("latex.document", doc.Source, doc.Target, doc.Title, doc.Author, doc.Class)
	}
	for _, page := range c.ManPages {
		w("man_page", page.Source, page.Name, page.Description, strings.Join(page.Authors, ","), strconv.Itoa(page.Section))
	}
	w("output.directory", c.Output.Directory)
	return hex.EncodeToString(h.Sum(nil))
}

func sorted(in []string) []string {
	out := append([]string{}, in...)
	sort.Strings(out)
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
