// Package generator materializes the loaded configuration into the file the
// documentation-rendering host consumes, plus the static assets that go with
// it.
package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docconf/internal/config"
	"git.home.luguber.info/inful/docconf/internal/links"
	"git.home.luguber.info/inful/docconf/internal/logfields"
	"git.home.luguber.info/inful/docconf/internal/observability"
	"git.home.luguber.info/inful/docconf/internal/theme"
	"git.home.luguber.info/inful/docconf/internal/version"
)

// ConfigFileName is the generated host configuration file.
const ConfigFileName = "docconf.yaml"

var titleCaser = cases.Title(language.English)

// Generator writes the host configuration for one SiteConfig.
type Generator struct {
	cfg       *config.SiteConfig
	outputDir string
	links     *links.Set
}

// NewGenerator creates a generator writing into outputDir (falls back to the
// configured output directory when empty).
func NewGenerator(cfg *config.SiteConfig, outputDir string) *Generator {
	if outputDir == "" {
		outputDir = cfg.Output.Directory
	}
	return &Generator{
		cfg:       cfg,
		outputDir: outputDir,
		links:     links.NewSet(cfg.Links),
	}
}

// OutputDir returns the effective output directory.
func (g *Generator) OutputDir() string { return g.outputDir }

// Generate resolves the theme, builds the host configuration and writes it
// together with the static assets. The generation id is attached to ctx so
// every log line of one run carries the same correlation id.
func (g *Generator) Generate(ctx context.Context) error {
	start := time.Now()
	generationID := observability.NewGenerationID()
	ctx = observability.WithGenerationID(ctx, generationID)

	if err := g.prepareOutputDir(); err != nil {
		return err
	}

	themeName, themeImpl := theme.Resolve(g.cfg)
	root, err := g.buildRoot(themeName, themeImpl, generationID)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(root)
	if err != nil {
		return fmt.Errorf("failed to marshal host config: %w", err)
	}
	configPath := filepath.Join(g.outputDir, ConfigFileName)
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write host config: %w", err)
	}

	if err := g.writeAssets(themeImpl); err != nil {
		return err
	}

	observability.InfoContext(ctx, "Generated host configuration",
		logfields.Path(configPath),
		logfields.Theme(string(themeName)),
		logfields.DurationMS(float64(time.Since(start).Milliseconds())))
	return nil
}

// buildRoot assembles the configuration tree in phases: core defaults, theme
// parameter injection, user overrides, then dynamic fields.
func (g *Generator) buildRoot(themeName config.Theme, themeImpl theme.Theme, generationID string) (map[string]any, error) {
	// Phase 1: core defaults
	params := map[string]any{}
	root := map[string]any{
		"project":     g.cfg.Project.Name,
		"copyright":   g.cfg.Project.Copyright,
		"version":     g.cfg.Project.Version,
		"release":     g.cfg.Project.Release,
		"last_stable": g.cfg.Project.LastStable,
		"source": map[string]any{
			"suffix":           g.cfg.Source.Suffix,
			"master_doc":       g.cfg.Source.MasterDoc,
			"templates_path":   g.cfg.Source.TemplatesPath,
			"exclude_patterns": g.cfg.Source.ExcludePatterns,
		},
	}

	// Phase 2: link templates, qualified for the host
	extlinks := map[string]string{}
	for _, name := range g.links.Names() {
		t, _ := g.links.Lookup(name)
		extlinks[g.links.Qualified(name)] = t.Pattern
	}
	root["extlinks"] = extlinks

	// Phase 3: theme param injection + user overrides (deep merge)
	features := themeImpl.Features()
	themeImpl.ApplyOptions(params)
	mergeOptions(params, g.cfg.HTML.Params)

	html := map[string]any{
		"theme":           string(themeName),
		"theme_options":   params,
		"static_paths":    g.cfg.HTML.StaticPaths,
		"use_smartypants": g.cfg.HTML.Smartypants(),
		"help_basename":   g.cfg.HTML.HelpBasename,
		"stylesheets":     []string{},
		"pygments_style":  features.DefaultPygmentsStyle,
	}
	if features.ProvidesStylesheetOverride {
		html["stylesheets"] = []string{stylesheetOverrideName}
	}
	root["html"] = html

	// Phase 4: LaTeX and man page builders
	root["latex"] = g.latexSection()
	root["man_pages"] = g.manPagesSection()

	// Phase 5: dynamic fields
	root["generated"] = map[string]any{
		"at":              time.Now().Format("2006-01-02 15:04:05"),
		"generation_id":   generationID,
		"docconf_version": version.Version,
	}

	return root, nil
}

func (g *Generator) latexSection() map[string]any {
	docs := make([]map[string]any, 0, len(g.cfg.LaTeX.Documents))
	for _, doc := range g.cfg.LaTeX.Documents {
		title := doc.Title
		if title == "" {
			title = titleCaser.String(g.cfg.Project.Name) + " Documentation"
		}
		docs = append(docs, map[string]any{
			"source": doc.Source,
			"target": doc.Target,
			"title":  title,
			"author": doc.Author,
			"class":  doc.Class,
		})
	}
	section := map[string]any{"documents": docs}
	if len(g.cfg.LaTeX.Elements) > 0 {
		section["elements"] = g.cfg.LaTeX.Elements
	}
	return section
}

func (g *Generator) manPagesSection() []map[string]any {
	pages := make([]map[string]any, 0, len(g.cfg.ManPages))
	for _, page := range g.cfg.ManPages {
		pages = append(pages, map[string]any{
			"source":      page.Source,
			"name":        page.Name,
			"description": page.Description,
			"authors":     page.Authors,
			"section":     page.Section,
		})
	}
	return pages
}

func (g *Generator) prepareOutputDir() error {
	if g.cfg.Output.Clean {
		if err := os.RemoveAll(g.outputDir); err != nil {
			return fmt.Errorf("failed to clean output directory: %w", err)
		}
	}
	if err := os.MkdirAll(g.outputDir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// mergeOptions overlays user-supplied theme options onto the theme defaults.
// Nested maps merge key by key; anything else (scalars, slices) is replaced
// wholesale, so a user list always wins over a default list.
func mergeOptions(dst, src map[string]any) {
	if src == nil {
		return
	}
	for k, v := range src {
		if mv, ok := v.(map[string]any); ok {
			if existing, ok2 := dst[k].(map[string]any); ok2 {
				mergeOptions(existing, mv)
			} else {
				cp := map[string]any{}
				mergeOptions(cp, mv)
				dst[k] = cp
			}
			continue
		}
		dst[k] = v
	}
}
