package generator

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/docconf/internal/host"
	"git.home.luguber.info/inful/docconf/internal/theme"
)

//go:embed assets/theme_overrides.css
var themeOverridesCSS []byte

const stylesheetOverrideName = host.StylesheetOverride

// StaticAsset represents a static file written next to the generated config.
type StaticAsset struct {
	Path    string // relative path from the output directory
	Content []byte
}

// writeAssets materializes the static assets for the resolved theme: the
// stylesheet override (when the theme declares the capability) and the
// rendered prolog banner partial.
func (g *Generator) writeAssets(themeImpl theme.Theme) error {
	assets, err := g.staticAssets(themeImpl)
	if err != nil {
		return err
	}
	for _, asset := range assets {
		target := filepath.Join(g.outputDir, asset.Path)
		if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
			return fmt.Errorf("failed to create asset directory: %w", err)
		}
		if err := os.WriteFile(target, asset.Content, 0o644); err != nil {
			return fmt.Errorf("failed to write asset %s: %w", asset.Path, err)
		}
	}
	return nil
}

func (g *Generator) staticAssets(themeImpl theme.Theme) ([]*StaticAsset, error) {
	staticDir := "_static"
	if len(g.cfg.HTML.StaticPaths) > 0 {
		staticDir = g.cfg.HTML.StaticPaths[0]
	}

	assets := make([]*StaticAsset, 0, 2)
	if themeImpl.Features().ProvidesStylesheetOverride {
		assets = append(assets, &StaticAsset{
			Path:    filepath.Join(staticDir, stylesheetOverrideName),
			Content: themeOverridesCSS,
		})
	}

	if g.cfg.Links.Prolog != "" {
		banner, err := g.links.PrologHTML(g.cfg.Links.Prolog, g.cfg.Project)
		if err != nil {
			return nil, err
		}
		if banner != "" {
			assets = append(assets, &StaticAsset{
				Path:    filepath.Join("partials", "version-banner.html"),
				Content: []byte(banner),
			})
		}
	}
	return assets, nil
}
