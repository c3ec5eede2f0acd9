package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docconf/internal/config"
	"git.home.luguber.info/inful/docconf/internal/host"
	_ "git.home.luguber.info/inful/docconf/internal/theme/themes/basic"
	_ "git.home.luguber.info/inful/docconf/internal/theme/themes/rtd"
)

type fakeApp struct {
	stylesheets []string
	staticPaths []string
}

func (f *fakeApp) AddStylesheet(name string) { f.stylesheets = append(f.stylesheets, name) }
func (f *fakeApp) AddStaticPath(path string) { f.staticPaths = append(f.staticPaths, path) }

func TestLoadReturnsFixedValues(t *testing.T) {
	l := New(config.Default())
	snap := l.Load()

	assert.Equal(t, "2", snap.Project.Version)
	assert.Equal(t, "2.0-SNAPSHOT", snap.Project.Release)
	assert.Equal(t, "1.0", snap.Project.LastStable)
	assert.Equal(t, "Silhouettedoc", snap.Output.HTML.HelpBasename)
	require.Len(t, snap.Output.ManPages, 1)

	url, err := snap.Links.Expand("api-doc", "2.0")
	require.NoError(t, err)
	assert.Equal(t, "http://silhouette.mohiva.com/api/2.0/", url)
}

func TestLoadIsIdempotent(t *testing.T) {
	l := New(config.Default())
	first := l.Load()
	second := l.Load()
	assert.Equal(t, first.Project, second.Project)
	assert.Same(t, first.Links, second.Links)
}

func TestResolveThemeFallsBack(t *testing.T) {
	cfg := config.Default()
	cfg.HTML.Theme = string(config.ThemeRTD)
	l := New(cfg)
	assert.Equal(t, config.ThemeRTD, l.ResolveTheme())

	t.Setenv("READTHEDOCS", "True")
	assert.Equal(t, config.ThemeDefault, l.ResolveTheme())
}

func TestOnSetupRegistersStylesheetOverride(t *testing.T) {
	l := New(config.Default())
	app := &fakeApp{}
	l.OnSetup(app)
	assert.Equal(t, []string{host.StylesheetOverride}, app.stylesheets)
	assert.Empty(t, app.staticPaths)
}
