// Package version parses and compares the semantic versions used by craftgrid
// documents and binaries.
//
// Versions carry a precision of 1, 2 or 3 components so that "1.2" can stand
// for any 1.2.x release:
//
//	v, err := version.ParseVersion("v1.2")
//	v.EqualsOrNewer(version.MustParseVersion("1.2.7")) // true
//
// CheckCompatible guards document readers: catalog documents record the
// schema version they were written with in metadata.schema-version, and a
// reader accepts the same major version up to the one it supports.
package version
