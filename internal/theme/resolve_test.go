package theme

import (
	"testing"

	"git.home.luguber.info/inful/docconf/internal/config"
)

type stubTheme struct{ name config.Theme }

func (s stubTheme) Name() config.Theme            { return s.name }
func (s stubTheme) Features() Features            { return Features{Name: s.name} }
func (s stubTheme) ApplyOptions(_ map[string]any) {}

func lookupFrom(themes ...config.Theme) func(config.Theme) Theme {
	m := map[config.Theme]Theme{}
	for _, name := range themes {
		m[name] = stubTheme{name: name}
	}
	return func(name config.Theme) Theme { return m[name] }
}

func TestResolvePrefersRegisteredTheme(t *testing.T) {
	name, impl := resolve(config.ThemeRTD, false, lookupFrom(config.ThemeDefault, config.ThemeRTD))
	if name != config.ThemeRTD {
		t.Fatalf("resolved %q, want rtd", name)
	}
	if impl.Name() != config.ThemeRTD {
		t.Fatalf("implementation is %q, want rtd", impl.Name())
	}
}

func TestResolveFallsBackWhenUnavailable(t *testing.T) {
	name, impl := resolve(config.ThemeRTD, false, lookupFrom(config.ThemeDefault))
	if name != config.ThemeDefault {
		t.Fatalf("resolved %q, want default", name)
	}
	if impl == nil {
		t.Fatal("fallback must still return a theme implementation")
	}
}

func TestResolveHostedBuildForcesDefault(t *testing.T) {
	name, _ := resolve(config.ThemeRTD, true, lookupFrom(config.ThemeDefault, config.ThemeRTD))
	if name != config.ThemeDefault {
		t.Fatalf("hosted build resolved %q, want default", name)
	}
}

func TestResolveEmptyPreference(t *testing.T) {
	name, _ := resolve("", false, lookupFrom(config.ThemeDefault))
	if name != config.ThemeDefault {
		t.Fatalf("resolved %q, want default", name)
	}
}

func TestResolveNothingRegistered(t *testing.T) {
	name, impl := resolve(config.ThemeRTD, false, lookupFrom())
	if name != config.ThemeDefault {
		t.Fatalf("resolved %q, want default", name)
	}
	if _, ok := impl.(NullTheme); !ok {
		t.Fatalf("expected NullTheme, got %T", impl)
	}
}
