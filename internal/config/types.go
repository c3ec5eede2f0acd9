package config

// SiteConfig is the full documentation-site build configuration.
// All fields are read-only once Load (or Default) returns.
type SiteConfig struct {
	Project  ProjectConfig `yaml:"project"`
	Source   SourceConfig  `yaml:"source,omitempty"`
	Links    LinksConfig   `yaml:"links,omitempty"`
	HTML     HTMLConfig    `yaml:"html,omitempty"`
	LaTeX    LaTeXConfig   `yaml:"latex,omitempty"`
	ManPages []ManPage     `yaml:"man_pages,omitempty"`
	Output   OutputConfig  `yaml:"output,omitempty"`
	Logging  LoggingConfig `yaml:"logging,omitempty"`
}

// ProjectConfig holds project metadata shown throughout the generated site.
type ProjectConfig struct {
	Name       string `yaml:"name"`
	Copyright  string `yaml:"copyright,omitempty"`
	Version    string `yaml:"version"`     // short version, e.g. "2"
	Release    string `yaml:"release"`     // full version, e.g. "2.0-SNAPSHOT"
	LastStable string `yaml:"last_stable"` // last stable release, e.g. "1.0"
}

// SourceConfig describes where the host finds documentation sources.
type SourceConfig struct {
	Suffix          string   `yaml:"suffix,omitempty"`     // source file suffix, e.g. ".rst"
	MasterDoc       string   `yaml:"master_doc,omitempty"` // root document name without suffix
	TemplatesPath   []string `yaml:"templates_path,omitempty"`
	ExcludePatterns []string `yaml:"exclude_patterns,omitempty"`
}

// LinksConfig configures cross-reference link templates.
// Template patterns carry exactly one %s placeholder for the version segment.
type LinksConfig struct {
	Prefix    string            `yaml:"prefix,omitempty"` // namespace for qualified template names, e.g. "silhouette"
	Templates map[string]string `yaml:"templates,omitempty"`
	Prolog    string            `yaml:"prolog,omitempty"` // banner text with |last_stable| / |release| markers
}

// HTMLConfig holds HTML output options.
type HTMLConfig struct {
	Theme          string         `yaml:"theme,omitempty"` // raw theme string; normalized via ThemeType()
	StaticPaths    []string       `yaml:"static_paths,omitempty"`
	UseSmartypants *bool          `yaml:"use_smartypants,omitempty"` // convert quotes/dashes to typographic entities
	HelpBasename   string         `yaml:"help_basename,omitempty"`   // output file base name for the HTML help builder
	Params         map[string]any `yaml:"params,omitempty"`          // theme parameter overrides (deep merged)
}

// LaTeXConfig holds LaTeX output options.
type LaTeXConfig struct {
	Elements  map[string]string `yaml:"elements,omitempty"` // optional preamble keys: papersize, pointsize, preamble
	Documents []LaTeXDocument   `yaml:"documents,omitempty"`
}

// LaTeXDocument groups the document tree into one LaTeX file.
type LaTeXDocument struct {
	Source string `yaml:"source"` // source start file, without suffix
	Target string `yaml:"target"` // target file name, e.g. "Silhouette.tex"
	Title  string `yaml:"title,omitempty"`
	Author string `yaml:"author,omitempty"`
	Class  string `yaml:"class,omitempty"` // howto|manual|own class
}

// ManPage describes one manual page entry.
type ManPage struct {
	Source      string   `yaml:"source"` // source start file, without suffix
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Authors     []string `yaml:"authors,omitempty"`
	Section     int      `yaml:"section,omitempty"` // manual section 1..9
}

// OutputConfig represents output configuration
type OutputConfig struct {
	Directory string `yaml:"directory"`
	Clean     bool   `yaml:"clean"` // Clean output directory before generating
}

// LoggingConfig selects log verbosity and format for the CLI.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// Smartypants reports the effective smartypants setting (enabled by default).
func (h *HTMLConfig) Smartypants() bool {
	if h.UseSmartypants == nil {
		return true
	}
	return *h.UseSmartypants
}
