// Package host defines the surface of the external documentation-rendering
// host that consumes the loaded configuration.
package host

// StylesheetOverride is the stylesheet registered during setup. It fixes
// wide-table rendering in the alternate theme and is served from the first
// configured static path.
const StylesheetOverride = "theme_overrides.css"

// App is the host-application registry mutated by the setup hook.
type App interface {
	// AddStylesheet registers an additional stylesheet, path relative to the
	// first static path.
	AddStylesheet(name string)
	// AddStaticPath registers an additional static asset directory.
	AddStaticPath(path string)
}
