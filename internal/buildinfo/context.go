// Package buildinfo carries build-time metadata injected through linker
// flags, kept separate from user configuration.
package buildinfo

// UnknownValue is reported for build fields that were never injected, as
// happens in plain `go build` and test binaries.
const UnknownValue = "unknown"

// Context holds the metadata stamped into the binary at build time.
type Context struct {
	version   string
	buildDate string
}

// NewContext builds a Context from the linker-injected values.
func NewContext(version, buildDate string) *Context {
	return &Context{version: version, buildDate: buildDate}
}

// Version returns the build version, or UnknownValue when unset.
func (c *Context) Version() string {
	if c == nil || c.version == "" {
		return UnknownValue
	}
	return c.version
}

// BuildDate returns the build date, or UnknownValue when unset.
func (c *Context) BuildDate() string {
	if c == nil || c.buildDate == "" {
		return UnknownValue
	}
	return c.buildDate
}
