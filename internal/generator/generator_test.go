package generator

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docconf/internal/config"
	_ "git.home.luguber.info/inful/docconf/internal/theme/themes/basic"
	_ "git.home.luguber.info/inful/docconf/internal/theme/themes/rtd"
)

func generate(t *testing.T, cfg *config.SiteConfig) (string, map[string]any) {
	t.Helper()
	outputDir := t.TempDir()
	g := NewGenerator(cfg, outputDir)
	require.NoError(t, g.Generate(context.Background()))

	data, err := os.ReadFile(filepath.Join(outputDir, ConfigFileName))
	require.NoError(t, err)
	var root map[string]any
	require.NoError(t, yaml.Unmarshal(data, &root))
	return outputDir, root
}

func TestGenerateWritesProjectMetadata(t *testing.T) {
	_, root := generate(t, config.Default())
	assert.Equal(t, "Silhouette", root["project"])
	assert.Equal(t, "2", root["version"])
	assert.Equal(t, "2.0-SNAPSHOT", root["release"])
	assert.Equal(t, "1.0", root["last_stable"])
}

func TestGenerateWritesQualifiedLinkTemplates(t *testing.T) {
	_, root := generate(t, config.Default())
	extlinks, ok := root["extlinks"].(map[string]any)
	require.True(t, ok, "extlinks section missing")
	assert.Equal(t, "http://silhouette.mohiva.com/api/%s/", extlinks["silhouette-api-doc"])
	assert.Len(t, extlinks, 5)
}

func TestGenerateWritesStylesheetOverrideForRTDTheme(t *testing.T) {
	cfg := config.Default()
	cfg.HTML.Theme = string(config.ThemeRTD)
	outputDir, root := generate(t, cfg)

	html, ok := root["html"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "rtd", html["theme"])

	css, err := os.ReadFile(filepath.Join(outputDir, "_static", "theme_overrides.css"))
	require.NoError(t, err)
	assert.Contains(t, string(css), "wy-table-responsive")
}

func TestGenerateSkipsStylesheetForDefaultTheme(t *testing.T) {
	cfg := config.Default()
	cfg.HTML.Theme = string(config.ThemeDefault)
	outputDir, root := generate(t, cfg)

	html := root["html"].(map[string]any)
	assert.Equal(t, "default", html["theme"])
	_, err := os.Stat(filepath.Join(outputDir, "_static", "theme_overrides.css"))
	assert.True(t, os.IsNotExist(err))
}

func TestGenerateWritesVersionBanner(t *testing.T) {
	outputDir, _ := generate(t, config.Default())
	banner, err := os.ReadFile(filepath.Join(outputDir, "partials", "version-banner.html"))
	require.NoError(t, err)
	assert.Contains(t, string(banner), "http://docs.silhouette.mohiva.com/1.0/")
}

func TestGenerateMergesUserThemeParams(t *testing.T) {
	cfg := config.Default()
	cfg.HTML.Theme = string(config.ThemeRTD)
	cfg.HTML.Params = map[string]any{"navigation_depth": 2}
	_, root := generate(t, cfg)

	html := root["html"].(map[string]any)
	options := html["theme_options"].(map[string]any)
	assert.Equal(t, 2, options["navigation_depth"])
	assert.Equal(t, true, options["sticky_navigation"])
}

func TestGenerateLatexAndManSections(t *testing.T) {
	_, root := generate(t, config.Default())

	latex := root["latex"].(map[string]any)
	docs := latex["documents"].([]any)
	require.Len(t, docs, 1)
	doc := docs[0].(map[string]any)
	assert.Equal(t, "Silhouette.tex", doc["target"])
	assert.Equal(t, "manual", doc["class"])

	pages := root["man_pages"].([]any)
	require.Len(t, pages, 1)
	page := pages[0].(map[string]any)
	assert.Equal(t, "silhouette", page["name"])
	assert.Equal(t, 1, page["section"])
}

func TestGenerateCleansOutputDirectory(t *testing.T) {
	cfg := config.Default()
	outputDir := t.TempDir()
	stale := filepath.Join(outputDir, "stale.txt")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	cfg.Output.Clean = true
	require.NoError(t, NewGenerator(cfg, outputDir).Generate(context.Background()))
	_, err := os.Stat(stale)
	assert.True(t, os.IsNotExist(err))
}

func TestGenerateLogsCarryGenerationID(t *testing.T) {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(previous) })

	g := NewGenerator(config.Default(), t.TempDir())
	require.NoError(t, g.Generate(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "Generated host configuration")
	assert.Contains(t, out, `"generation_id"`)
}

func TestMergeOptionsDeep(t *testing.T) {
	dst := map[string]any{"a": map[string]any{"x": 1, "y": 2}, "b": 1}
	mergeOptions(dst, map[string]any{"a": map[string]any{"y": 3}, "c": true})
	inner := dst["a"].(map[string]any)
	assert.Equal(t, 1, inner["x"])
	assert.Equal(t, 3, inner["y"])
	assert.Equal(t, true, dst["c"])
}

func TestMergeOptionsReplacesSlices(t *testing.T) {
	dst := map[string]any{"styles": []string{"a.css"}}
	mergeOptions(dst, map[string]any{"styles": []string{"b.css"}})
	assert.Equal(t, []string{"b.css"}, dst["styles"])
}
