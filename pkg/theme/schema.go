package theme

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// SchemaVersion selects which generation of the design language a theme
// follows. It decides the default spacing scale and font variants, and
// several widgets branch on it.
type SchemaVersion int

const (
	// SchemaCurrent is the current design language (v3).
	SchemaCurrent SchemaVersion = iota
	// SchemaLegacy is the previous design language (v2).
	SchemaLegacy
)

// currentMajor is the first major version of the current schema.
const currentMajor = "v3"

// String returns "current" or "legacy".
func (v SchemaVersion) String() string {
	switch v {
	case SchemaCurrent:
		return "current"
	case SchemaLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("SchemaVersion(%d)", int(v))
	}
}

// ParseSchemaVersion reads a schema name ("current", "legacy") or a version
// string. Versions are compared as semver, with or without the leading "v":
// "v3", "3.1.0" and "v4" are current, "v2.9" is legacy.
func ParseSchemaVersion(s string) (SchemaVersion, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "current":
		return SchemaCurrent, nil
	case "legacy":
		return SchemaLegacy, nil
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return 0, fmt.Errorf("theme: invalid schema version %q", s)
	}
	if semver.Compare(semver.Major(v), currentMajor) >= 0 {
		return SchemaCurrent, nil
	}
	return SchemaLegacy, nil
}
