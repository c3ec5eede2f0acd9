package config

// Built-in configuration values. These mirror the Silhouette documentation
// project and double as the example configuration written by Init.

func defaultProject() ProjectConfig {
	return ProjectConfig{
		Name:       "Silhouette",
		Copyright:  "2015, Christian Kaps",
		Version:    "2",
		Release:    "2.0-SNAPSHOT",
		LastStable: "1.0",
	}
}

func defaultLinks() LinksConfig {
	return LinksConfig{
		Prefix: "silhouette",
		Templates: map[string]string{
			"doc":         "http://docs.silhouette.mohiva.com/%s/",
			"api-doc":     "http://silhouette.mohiva.com/api/%s/",
			"htmlzip-doc": "https://readthedocs.org/projects/silhouette/downloads/htmlzip/%s/",
			"pdf-doc":     "https://readthedocs.org/projects/silhouette/downloads/pdf/%s/",
			"epub-doc":    "https://readthedocs.org/projects/silhouette/downloads/epub/%s/",
		},
		Prolog: "The last stable release is |last_stable|. The current development version is |release|.",
	}
}

// Default returns a fresh copy of the built-in configuration.
// Repeated calls return identical values.
func Default() *SiteConfig {
	cfg := &SiteConfig{
		Project: defaultProject(),
		Links:   defaultLinks(),
	}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills unset fields with their built-in values.
// It never overwrites explicitly configured values.
func applyDefaults(cfg *SiteConfig) {
	if cfg.Source.Suffix == "" {
		cfg.Source.Suffix = ".rst"
	}
	if cfg.Source.MasterDoc == "" {
		cfg.Source.MasterDoc = "index"
	}
	if len(cfg.Source.TemplatesPath) == 0 {
		cfg.Source.TemplatesPath = []string{"_templates"}
	}
	if len(cfg.Source.ExcludePatterns) == 0 {
		cfg.Source.ExcludePatterns = []string{"_build"}
	}
	if cfg.HTML.Theme == "" {
		cfg.HTML.Theme = string(ThemeRTD)
	}
	if len(cfg.HTML.StaticPaths) == 0 {
		cfg.HTML.StaticPaths = []string{"_static"}
	}
	if cfg.HTML.HelpBasename == "" && cfg.Project.Name != "" {
		cfg.HTML.HelpBasename = cfg.Project.Name + "doc"
	}
	if len(cfg.LaTeX.Documents) == 0 && cfg.Project.Name != "" {
		cfg.LaTeX.Documents = []LaTeXDocument{{
			Source: cfg.Source.MasterDoc,
			Target: cfg.Project.Name + ".tex",
			Title:  cfg.Project.Name + " Documentation",
			Author: authorFromCopyright(cfg.Project.Copyright),
			Class:  "manual",
		}}
	}
	if len(cfg.ManPages) == 0 && cfg.Project.Name != "" {
		page := ManPage{
			Source:      cfg.Source.MasterDoc,
			Name:        lowerName(cfg.Project.Name),
			Description: cfg.Project.Name + " Documentation",
			Section:     1,
		}
		if author := authorFromCopyright(cfg.Project.Copyright); author != "" {
			page.Authors = []string{author}
		}
		cfg.ManPages = []ManPage{page}
	}
	for i := range cfg.ManPages {
		if cfg.ManPages[i].Section == 0 {
			cfg.ManPages[i].Section = 1
		}
	}
	if cfg.Output.Directory == "" {
		cfg.Output.Directory = "./site"
		cfg.Output.Clean = true
	}
}
