package theme

import (
	"maps"
	"strconv"

	"github.com/go-drift/paper/pkg/graphics"
)

const (
	defaultRoundness      = 4
	defaultAnimationScale = 1.0
	spacingKeyCount       = 16
)

var currentLightPalette = Palette{
	RolePrimary:           graphics.Hex(0x6750A4),
	RoleOnPrimary:         graphics.Hex(0xFFFFFF),
	RoleSecondary:         graphics.Hex(0x625B71),
	RoleAccent:            graphics.Hex(0x625B71),
	RoleBackground:        graphics.Hex(0xFFFBFE),
	RoleOnBackground:      graphics.Hex(0x1C1B1F),
	RoleSurface:           graphics.Hex(0xFFFBFE),
	RoleOnSurface:         graphics.Hex(0x1C1B1F),
	RoleSurfaceVariant:    graphics.Hex(0xE7E0EC),
	RoleOnSurfaceVariant:  graphics.Hex(0x49454F),
	RoleSurfaceDisabled:   graphics.RGBA(28, 27, 31, 0.12),
	RoleOnSurfaceDisabled: graphics.RGBA(28, 27, 31, 0.38),
	RoleOutline:           graphics.Hex(0x79747E),
	RoleError:             graphics.Hex(0xB3261E),
	RoleOnError:           graphics.Hex(0xFFFFFF),
	RoleText:              graphics.Hex(0x1C1B1F),
	RoleDisabled:          graphics.RGBA(28, 27, 31, 0.38),
	RolePlaceholder:       graphics.Hex(0x49454F),
	RoleBackdrop:          graphics.RGBA(50, 47, 55, 0.4),
	RoleNotification:      graphics.Hex(0xB3261E),
}

var currentDarkPalette = Palette{
	RolePrimary:           graphics.Hex(0xD0BCFF),
	RoleOnPrimary:         graphics.Hex(0x381E72),
	RoleSecondary:         graphics.Hex(0xCCC2DC),
	RoleAccent:            graphics.Hex(0xCCC2DC),
	RoleBackground:        graphics.Hex(0x1C1B1F),
	RoleOnBackground:      graphics.Hex(0xE6E1E5),
	RoleSurface:           graphics.Hex(0x1C1B1F),
	RoleOnSurface:         graphics.Hex(0xE6E1E5),
	RoleSurfaceVariant:    graphics.Hex(0x49454F),
	RoleOnSurfaceVariant:  graphics.Hex(0xCAC4D0),
	RoleSurfaceDisabled:   graphics.RGBA(230, 225, 229, 0.12),
	RoleOnSurfaceDisabled: graphics.RGBA(230, 225, 229, 0.38),
	RoleOutline:           graphics.Hex(0x938F99),
	RoleError:             graphics.Hex(0xF2B8B5),
	RoleOnError:           graphics.Hex(0x601410),
	RoleText:              graphics.Hex(0xE6E1E5),
	RoleDisabled:          graphics.RGBA(230, 225, 229, 0.38),
	RolePlaceholder:       graphics.Hex(0xCAC4D0),
	RoleBackdrop:          graphics.RGBA(50, 47, 55, 0.4),
	RoleNotification:      graphics.Hex(0xF2B8B5),
}

var legacyLightPalette = Palette{
	RolePrimary:           graphics.Hex(0x6200EE),
	RoleOnPrimary:         graphics.Hex(0xFFFFFF),
	RoleSecondary:         graphics.Hex(0x03DAC4),
	RoleAccent:            graphics.Hex(0x03DAC4),
	RoleBackground:        graphics.Hex(0xF6F6F6),
	RoleOnBackground:      graphics.Hex(0x000000),
	RoleSurface:           graphics.Hex(0xFFFFFF),
	RoleOnSurface:         graphics.Hex(0x000000),
	RoleSurfaceVariant:    graphics.Hex(0xF6F6F6),
	RoleOnSurfaceVariant:  graphics.RGBA(0, 0, 0, 0.54),
	RoleSurfaceDisabled:   graphics.RGBA(0, 0, 0, 0.12),
	RoleOnSurfaceDisabled: graphics.RGBA(0, 0, 0, 0.26),
	RoleOutline:           graphics.RGBA(0, 0, 0, 0.26),
	RoleError:             graphics.Hex(0xB00020),
	RoleOnError:           graphics.Hex(0xFFFFFF),
	RoleText:              graphics.Hex(0x000000),
	RoleDisabled:          graphics.RGBA(0, 0, 0, 0.26),
	RolePlaceholder:       graphics.RGBA(0, 0, 0, 0.54),
	RoleBackdrop:          graphics.RGBA(0, 0, 0, 0.5),
	RoleNotification:      graphics.Hex(0xF50057),
}

var legacyDarkPalette = Palette{
	RolePrimary:           graphics.Hex(0xBB86FC),
	RoleOnPrimary:         graphics.Hex(0x000000),
	RoleSecondary:         graphics.Hex(0x03DAC6),
	RoleAccent:            graphics.Hex(0x03DAC6),
	RoleBackground:        graphics.Hex(0x121212),
	RoleOnBackground:      graphics.Hex(0xFFFFFF),
	RoleSurface:           graphics.Hex(0x121212),
	RoleOnSurface:         graphics.Hex(0xFFFFFF),
	RoleSurfaceVariant:    graphics.Hex(0x121212),
	RoleOnSurfaceVariant:  graphics.RGBA(255, 255, 255, 0.54),
	RoleSurfaceDisabled:   graphics.RGBA(255, 255, 255, 0.12),
	RoleOnSurfaceDisabled: graphics.RGBA(255, 255, 255, 0.38),
	RoleOutline:           graphics.RGBA(255, 255, 255, 0.38),
	RoleError:             graphics.Hex(0xCF6679),
	RoleOnError:           graphics.Hex(0x000000),
	RoleText:              graphics.Hex(0xFFFFFF),
	RoleDisabled:          graphics.RGBA(255, 255, 255, 0.38),
	RolePlaceholder:       graphics.RGBA(255, 255, 255, 0.54),
	RoleBackdrop:          graphics.RGBA(0, 0, 0, 0.5),
	RoleNotification:      graphics.Hex(0xFF80AB),
}

var currentFonts = FontVariants{
	FontRegular: {Family: "Roboto", Weight: graphics.FontWeightNormal},
	FontMedium:  {Family: "Roboto", Weight: graphics.FontWeightMedium},
	FontLight:   {Family: "Roboto", Weight: graphics.FontWeightLight},
	FontThin:    {Family: "Roboto", Weight: graphics.FontWeightThin},
}

var legacyFonts = FontVariants{
	FontRegular: {Family: "sans-serif", Weight: graphics.FontWeightNormal},
	FontMedium:  {Family: "sans-serif-medium", Weight: graphics.FontWeightNormal},
	FontLight:   {Family: "sans-serif-light", Weight: graphics.FontWeightNormal},
	FontThin:    {Family: "sans-serif-thin", Weight: graphics.FontWeightNormal},
}

var (
	currentSpacing = buildSpacing(func(n int) float64 { return float64(4 * n) })
	// Legacy steps by 4 up to x4 and by 8 above it.
	legacySpacing = buildSpacing(func(n int) float64 {
		if n <= 4 {
			return float64(4 * n)
		}
		return float64(8 * (n - 2))
	})
)

func buildSpacing(size func(n int) float64) SpacingScale {
	s := make(SpacingScale, spacingKeyCount)
	for n := 1; n <= spacingKeyCount; n++ {
		s["x"+strconv.Itoa(n)] = size(n)
	}
	return s
}

// builtinPalette returns a fresh copy of the palette for schema and brightness.
func builtinPalette(schema SchemaVersion, dark bool) Palette {
	switch {
	case schema == SchemaLegacy && dark:
		return maps.Clone(legacyDarkPalette)
	case schema == SchemaLegacy:
		return maps.Clone(legacyLightPalette)
	case dark:
		return maps.Clone(currentDarkPalette)
	default:
		return maps.Clone(currentLightPalette)
	}
}

func builtinSpacing(schema SchemaVersion) SpacingScale {
	if schema == SchemaLegacy {
		return maps.Clone(legacySpacing)
	}
	return maps.Clone(currentSpacing)
}

func builtinFonts(schema SchemaVersion) FontVariants {
	if schema == SchemaLegacy {
		return maps.Clone(legacyFonts)
	}
	return maps.Clone(currentFonts)
}

// Builtin returns the built-in theme for a schema and brightness, the theme
// an empty base is filled from.
func Builtin(schema SchemaVersion, dark bool) Theme {
	return Theme{
		Schema:         schema,
		Dark:           dark,
		Roundness:      defaultRoundness,
		AnimationScale: defaultAnimationScale,
		Colors:         builtinPalette(schema, dark),
		Spacing:        builtinSpacing(schema),
		Fonts:          builtinFonts(schema),
	}
}

// DefaultTheme returns the current-schema light theme. Each call returns a
// new value, so callers may modify it freely.
func DefaultTheme() Theme {
	return Builtin(SchemaCurrent, false)
}

// DefaultDarkTheme returns the current-schema dark theme.
func DefaultDarkTheme() Theme {
	return Builtin(SchemaCurrent, true)
}

// DefaultLegacyTheme returns the legacy-schema light theme.
func DefaultLegacyTheme() Theme {
	return Builtin(SchemaLegacy, false)
}
