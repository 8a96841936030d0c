package theme

import (
	"maps"
	"time"

	"github.com/go-drift/paper/pkg/graphics"
)

// Resolved is a fully populated theme. Every built-in palette role, spacing
// key and font variant is present, so widgets read it without checks.
//
// A Resolved value is built once per provider and shared read-only by the
// widgets below it. Its maps must not be modified; use [Resolved.Theme] to
// get an independent copy.
type Resolved struct {
	Schema SchemaVersion
	// IsCurrentSchema is Schema == SchemaCurrent.
	IsCurrentSchema bool
	Dark            bool
	Roundness       float64
	AnimationScale  float64

	Colors  Palette
	Spacing SpacingScale
	Fonts   FontVariants
}

// Resolve merges base and o over the built-in defaults:
//
//  1. The effective schema is o.Schema if set, else base.Schema.
//  2. Colors: built-in palette of the effective schema and Dark, then
//     base.Colors, then o.Colors, role by role. When o changes the schema
//     or Dark, only base roles that differ from the base's own built-in
//     palette are carried over, so a full base theme still flips. Roles the
//     defaults do not know are kept.
//  3. Spacing and Fonts: the built-in sub-tree of the effective schema is
//     the baseline. The base's sub-tree is layered on top unless o changes
//     the schema; o's sub-tree, when set, replaces the base's.
//  4. Scalars: o wins when set.
//
// Resolve never modifies its arguments and always returns a new value.
func Resolve(base Theme, o Override) *Resolved {
	schema := base.Schema
	switched := false
	if o.Schema != nil {
		switched = *o.Schema != base.Schema
		schema = *o.Schema
	}

	r := &Resolved{
		Schema:          schema,
		IsCurrentSchema: schema == SchemaCurrent,
		Dark:            base.Dark,
		Roundness:       base.Roundness,
		AnimationScale:  base.AnimationScale,
	}
	if o.Dark != nil {
		r.Dark = *o.Dark
	}
	if o.Roundness != nil {
		r.Roundness = *o.Roundness
	}
	if o.AnimationScale != nil {
		r.AnimationScale = *o.AnimationScale
	}
	if r.AnimationScale <= 0 {
		r.AnimationScale = defaultAnimationScale
	}

	r.Colors = builtinPalette(schema, r.Dark)
	if switched || r.Dark != base.Dark {
		copyCustomRoles(r.Colors, base.Colors, builtinPalette(base.Schema, base.Dark))
	} else {
		maps.Copy(r.Colors, base.Colors)
	}
	maps.Copy(r.Colors, o.Colors)

	r.Spacing = builtinSpacing(schema)
	switch {
	case o.Spacing != nil:
		maps.Copy(r.Spacing, o.Spacing)
	case !switched:
		maps.Copy(r.Spacing, base.Spacing)
	}

	r.Fonts = builtinFonts(schema)
	switch {
	case o.Fonts != nil:
		maps.Copy(r.Fonts, o.Fonts)
	case !switched:
		maps.Copy(r.Fonts, base.Fonts)
	}
	return r
}

// Theme returns the resolved values as an independent Theme, suitable as the
// base of another resolution.
func (r *Resolved) Theme() Theme {
	return Theme{
		Schema:         r.Schema,
		Dark:           r.Dark,
		Roundness:      r.Roundness,
		AnimationScale: r.AnimationScale,
		Colors:         maps.Clone(r.Colors),
		Spacing:        maps.Clone(r.Spacing),
		Fonts:          maps.Clone(r.Fonts),
	}
}

// Color returns the color for role. Unknown roles yield transparent.
func (r *Resolved) Color(role string) graphics.Color {
	return r.Colors[role]
}

// Space returns the size for a spacing key such as "x2".
func (r *Resolved) Space(key string) float64 {
	return r.Spacing[key]
}

// Font returns the font for a variant.
func (r *Resolved) Font(v FontVariant) graphics.FontDescriptor {
	return r.Fonts[v]
}

// Duration scales a base animation duration by AnimationScale.
func (r *Resolved) Duration(d time.Duration) time.Duration {
	return time.Duration(float64(d) * r.AnimationScale)
}

// copyCustomRoles copies the roles of src whose value is not the one defaults
// holds for them.
func copyCustomRoles(dst, src, defaults Palette) {
	for role, c := range src {
		if d, ok := defaults[role]; ok && d == c {
			continue
		}
		dst[role] = c
	}
}
