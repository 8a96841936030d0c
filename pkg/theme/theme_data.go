package theme

import (
	"maps"

	"github.com/go-drift/paper/pkg/graphics"
)

// Palette maps a semantic role ("primary", "onSurface") to a color.
// Roles outside the built-in set are kept as-is.
type Palette map[string]graphics.Color

// Semantic color roles read by the widgets in this module.
const (
	RolePrimary           = "primary"
	RoleOnPrimary         = "onPrimary"
	RoleSecondary         = "secondary"
	RoleAccent            = "accent"
	RoleBackground        = "background"
	RoleOnBackground      = "onBackground"
	RoleSurface           = "surface"
	RoleOnSurface         = "onSurface"
	RoleSurfaceVariant    = "surfaceVariant"
	RoleOnSurfaceVariant  = "onSurfaceVariant"
	RoleSurfaceDisabled   = "surfaceDisabled"
	RoleOnSurfaceDisabled = "onSurfaceDisabled"
	RoleOutline           = "outline"
	RoleError             = "error"
	RoleOnError           = "onError"
	RoleText              = "text"
	RoleDisabled          = "disabled"
	RolePlaceholder       = "placeholder"
	RoleBackdrop          = "backdrop"
	RoleNotification      = "notification"
)

// SpacingScale maps a scale key ("x2", "x16") to a size in density
// independent pixels. Sizes grow with the key index.
type SpacingScale map[string]float64

// Spacing keys used by the widgets in this module.
const (
	SpaceX2  = "x2"
	SpaceX6  = "x6"
	SpaceX9  = "x9"
	SpaceX14 = "x14"
	SpaceX16 = "x16"
)

// FontVariant names one of the theme's font slots.
type FontVariant string

// Recognized font variants.
const (
	FontRegular FontVariant = "regular"
	FontMedium  FontVariant = "medium"
	FontLight   FontVariant = "light"
	FontThin    FontVariant = "thin"
)

// FontVariants maps a variant to the font used for it.
type FontVariants map[FontVariant]graphics.FontDescriptor

// Theme is the full description of a visual theme. A Theme handed to
// [Resolve] may be partial; missing palette roles, spacing keys and font
// variants are filled from the built-in defaults of its schema.
type Theme struct {
	// Schema selects the design-language generation.
	Schema SchemaVersion
	// Dark selects the dark variant of the built-in palette.
	Dark bool
	// Roundness is the base corner radius.
	Roundness float64
	// AnimationScale multiplies every animation duration. Values <= 0 mean 1.
	AnimationScale float64

	Colors  Palette
	Spacing SpacingScale
	Fonts   FontVariants
}

// Override is a partial Theme. Nil fields are absent and inherit from the
// base theme. Colors are merged role by role; Spacing and Fonts replace the
// base's sub-tree as a whole and are then filled from the defaults.
type Override struct {
	Schema         *SchemaVersion
	Dark           *bool
	Roundness      *float64
	AnimationScale *float64

	Colors  Palette
	Spacing SpacingScale
	Fonts   FontVariants
}

// Ref returns a pointer to v, for filling Override fields inline:
//
//	theme.Override{Schema: theme.Ref(theme.SchemaLegacy)}
func Ref[T any](v T) *T {
	return &v
}

// Merge layers next over o and returns the combined override. Fields set in
// next win; palettes are merged role by role. Neither argument is modified.
func (o Override) Merge(next Override) Override {
	out := o
	if next.Schema != nil {
		out.Schema = next.Schema
	}
	if next.Dark != nil {
		out.Dark = next.Dark
	}
	if next.Roundness != nil {
		out.Roundness = next.Roundness
	}
	if next.AnimationScale != nil {
		out.AnimationScale = next.AnimationScale
	}
	if o.Colors != nil || next.Colors != nil {
		out.Colors = make(Palette, len(o.Colors)+len(next.Colors))
		maps.Copy(out.Colors, o.Colors)
		maps.Copy(out.Colors, next.Colors)
	}
	if next.Spacing != nil {
		out.Spacing = maps.Clone(next.Spacing)
	}
	if next.Fonts != nil {
		out.Fonts = maps.Clone(next.Fonts)
	}
	return out
}

// Clone returns a deep copy of the theme.
func (t Theme) Clone() Theme {
	c := t
	c.Colors = maps.Clone(t.Colors)
	c.Spacing = maps.Clone(t.Spacing)
	c.Fonts = maps.Clone(t.Fonts)
	return c
}
