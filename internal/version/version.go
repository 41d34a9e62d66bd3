// Package version holds the release versions of utilkit and its packages.
package version

// Version constants for the module and its packages
const (
	// Module version
	Module = "0.2.0"

	// Package versions
	Lazy    = "0.2.0"
	Slicex  = "0.2.0"
	Mapx    = "0.3.0"
	Stringx = "0.3.0"
	Typex   = "0.2.0"
	Mathx   = "0.3.0"
	Config  = "0.2.0"
	Log     = "0.2.0"
)

// Packages lists the package names known to PackageVersion in display order
var Packages = []string{"lazy", "slicex", "mapx", "stringx", "typex", "mathx", "config", "log"}

// PackageVersion returns the version for a given package name
func PackageVersion(name string) string {
	switch name {
	case "lazy":
		return Lazy
	case "slicex":
		return Slicex
	case "mapx":
		return Mapx
	case "stringx":
		return Stringx
	case "typex":
		return Typex
	case "mathx":
		return Mathx
	case "config":
		return Config
	case "log":
		return Log
	default:
		return Module
	}
}
