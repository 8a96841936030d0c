package theme

import (
	"reflect"
	"strconv"
	"testing"
	"time"

	"github.com/go-drift/paper/pkg/graphics"
)

func TestResolveEmptyOverrideIsIdentity(t *testing.T) {
	for name, base := range map[string]Theme{
		"current":     DefaultTheme(),
		"dark":        DefaultDarkTheme(),
		"legacy":      DefaultLegacyTheme(),
		"legacy dark": Builtin(SchemaLegacy, true),
	} {
		t.Run(name, func(t *testing.T) {
			got := Resolve(base, Override{}).Theme()
			if !reflect.DeepEqual(got, base) {
				t.Errorf("Resolve(base, {}) = %+v, want %+v", got, base)
			}
		})
	}
}

func TestResolveMergesColorsRoleByRole(t *testing.T) {
	base := DefaultTheme()
	teal := graphics.Hex(0x00796B)
	r := Resolve(base, Override{Colors: Palette{RolePrimary: teal}})

	if got := r.Color(RolePrimary); got != teal {
		t.Errorf("primary = %v, want %v", got, teal)
	}
	if got, want := r.Color(RoleAccent), base.Colors[RoleAccent]; got != want {
		t.Errorf("accent = %v, want %v", got, want)
	}
	if got, want := r.Space(SpaceX2), base.Spacing[SpaceX2]; got != want {
		t.Errorf("x2 = %v, want %v", got, want)
	}
	if !r.IsCurrentSchema {
		t.Error("IsCurrentSchema = false")
	}
}

func TestResolveKeepsUnknownRoles(t *testing.T) {
	base := DefaultTheme()
	base.Colors["brand"] = graphics.Hex(0x123456)
	r := Resolve(base, Override{Colors: Palette{"tertiary": graphics.Hex(0x654321)}})
	if r.Color("brand") != graphics.Hex(0x123456) {
		t.Error("base-only role dropped")
	}
	if r.Color("tertiary") != graphics.Hex(0x654321) {
		t.Error("override-only role dropped")
	}
}

func TestResolveFillsPartialBase(t *testing.T) {
	r := Resolve(Theme{Schema: SchemaLegacy}, Override{})
	if len(r.Colors) != len(legacyLightPalette) {
		t.Errorf("got %d colors, want %d", len(r.Colors), len(legacyLightPalette))
	}
	if got := r.Space("x16"); got != 112 {
		t.Errorf("legacy x16 = %v, want 112", got)
	}
	if r.AnimationScale != 1 {
		t.Errorf("AnimationScale = %v, want 1", r.AnimationScale)
	}
}

func TestResolveSchemaSwitch(t *testing.T) {
	base := DefaultTheme()
	base.Spacing[SpaceX2] = 99
	base.Fonts[FontMedium] = graphics.FontDescriptor{Family: "Inter", Weight: graphics.FontWeightMedium}
	base.Colors[RolePrimary] = graphics.Hex(0x123456)

	r := Resolve(base, Override{Schema: Ref(SchemaLegacy)})
	if r.Schema != SchemaLegacy || r.IsCurrentSchema {
		t.Fatalf("schema = %v, IsCurrentSchema = %v", r.Schema, r.IsCurrentSchema)
	}
	if !reflect.DeepEqual(r.Spacing, legacySpacing) {
		t.Errorf("spacing = %v, want legacy defaults", r.Spacing)
	}
	if !reflect.DeepEqual(r.Fonts, legacyFonts) {
		t.Errorf("fonts = %v, want legacy defaults", r.Fonts)
	}
	if got, want := r.Color(RolePrimary), graphics.Hex(0x123456); got != want {
		t.Errorf("custom base colors must survive a schema switch: %v != %v", got, want)
	}
	if got, want := r.Color(RoleAccent), legacyLightPalette[RoleAccent]; got != want {
		t.Errorf("accent = %v, want legacy default %v", got, want)
	}
}

func TestResolveDarkOverrideSwapsPalette(t *testing.T) {
	tests := []struct {
		name string
		base Theme
		want Palette
	}{
		{"current", DefaultTheme(), currentDarkPalette},
		{"legacy", DefaultLegacyTheme(), legacyDarkPalette},
		{"resolved", Resolve(DefaultTheme(), Override{}).Theme(), currentDarkPalette},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Resolve(tt.base, Override{Dark: Ref(true)})
			if !r.Dark {
				t.Fatal("Dark = false")
			}
			if !reflect.DeepEqual(r.Colors, tt.want) {
				t.Errorf("colors = %v\nwant %v", r.Colors, tt.want)
			}
		})
	}
}

func TestResolveDarkOverrideKeepsCustomRoles(t *testing.T) {
	base := DefaultTheme()
	base.Colors[RolePrimary] = graphics.Hex(0x123456)
	base.Colors["brand"] = graphics.Hex(0x654321)

	r := Resolve(base, Override{Dark: Ref(true)})
	if got := r.Color(RolePrimary); got != graphics.Hex(0x123456) {
		t.Errorf("primary = %v, want custom base color", got)
	}
	if got := r.Color("brand"); got != graphics.Hex(0x654321) {
		t.Errorf("brand = %v, want custom base color", got)
	}
	if got := r.Color(RoleSurface); got != currentDarkPalette[RoleSurface] {
		t.Errorf("surface = %v, want dark default", got)
	}

	back := Resolve(r.Theme(), Override{Dark: Ref(false)})
	if got := r.Color(RoleBackground); got == back.Color(RoleBackground) {
		t.Errorf("flipping back to light kept background %v", got)
	}
	if got := back.Color(RolePrimary); got != graphics.Hex(0x123456) {
		t.Errorf("primary after flipping back = %v", got)
	}
}

func TestResolveSameSchemaKeepsBaseSubtrees(t *testing.T) {
	base := DefaultTheme()
	base.Spacing[SpaceX2] = 99
	r := Resolve(base, Override{Schema: Ref(SchemaCurrent)})
	if got := r.Space(SpaceX2); got != 99 {
		t.Errorf("x2 = %v, want 99", got)
	}
}

func TestResolveOverrideSpacingReplacesBase(t *testing.T) {
	base := DefaultTheme()
	base.Spacing[SpaceX2] = 99
	base.Spacing[SpaceX6] = 77
	r := Resolve(base, Override{Spacing: SpacingScale{SpaceX2: 10}})
	if got := r.Space(SpaceX2); got != 10 {
		t.Errorf("x2 = %v, want 10", got)
	}
	if got := r.Space(SpaceX6); got != 24 {
		t.Errorf("x6 = %v, want default 24", got)
	}
}

func TestResolveScalars(t *testing.T) {
	r := Resolve(DefaultTheme(), Override{
		Dark:           Ref(true),
		Roundness:      Ref(8.0),
		AnimationScale: Ref(0.5),
	})
	if !r.Dark || r.Roundness != 8 || r.AnimationScale != 0.5 {
		t.Errorf("scalars = %v %v %v", r.Dark, r.Roundness, r.AnimationScale)
	}
	if got := r.Color(RoleBackground); got != currentDarkPalette[RoleBackground] {
		t.Errorf("background = %v, want dark default", got)
	}
	if got := r.Duration(200 * time.Millisecond); got != 100*time.Millisecond {
		t.Errorf("Duration = %v, want 100ms", got)
	}

	if got := Resolve(DefaultTheme(), Override{AnimationScale: Ref(0.0)}).AnimationScale; got != 1 {
		t.Errorf("zero AnimationScale resolved to %v, want 1", got)
	}
}

func TestResolveDoesNotModifyInputs(t *testing.T) {
	base := DefaultTheme()
	before := base.Clone()
	o := Override{
		Colors:  Palette{RolePrimary: graphics.ColorBlack},
		Spacing: SpacingScale{SpaceX2: 1},
	}
	r := Resolve(base, o)
	r.Colors[RoleAccent] = graphics.ColorBlack
	r.Spacing[SpaceX6] = 1

	if !reflect.DeepEqual(base, before) {
		t.Error("Resolve modified the base theme")
	}
	if len(o.Colors) != 1 || len(o.Spacing) != 1 {
		t.Error("Resolve modified the override")
	}
	if DefaultTheme().Colors[RoleAccent] == graphics.ColorBlack {
		t.Error("built-in palette was modified through a resolved theme")
	}
}

func TestResolveChainingMatchesMerge(t *testing.T) {
	base := DefaultTheme()
	o1 := Override{
		Colors:    Palette{RolePrimary: graphics.Hex(0x111111), "brand": graphics.Hex(0x222222)},
		Roundness: Ref(2.0),
		Spacing:   SpacingScale{SpaceX2: 12},
	}
	o2 := Override{
		Colors: Palette{RolePrimary: graphics.Hex(0x333333)},
		Dark:   Ref(true),
	}

	chained := Resolve(Resolve(base, o1).Theme(), o2)
	combined := Resolve(base, o1.Merge(o2))
	if !reflect.DeepEqual(chained, combined) {
		t.Errorf("chained = %+v\ncombined = %+v", chained, combined)
	}
	if got := chained.Color(RoleBackground); got != currentDarkPalette[RoleBackground] {
		t.Errorf("background = %v, want dark default", got)
	}
	if got := chained.Color("brand"); got != graphics.Hex(0x222222) {
		t.Errorf("brand = %v, want it carried through the dark flip", got)
	}
}

func TestOverrideMerge(t *testing.T) {
	a := Override{Colors: Palette{"a": 1}, Roundness: Ref(1.0)}
	b := Override{Colors: Palette{"b": 2}, Schema: Ref(SchemaLegacy)}
	m := a.Merge(b)

	if len(m.Colors) != 2 {
		t.Errorf("merged colors = %v", m.Colors)
	}
	if m.Roundness == nil || *m.Roundness != 1 {
		t.Error("roundness lost")
	}
	if m.Schema == nil || *m.Schema != SchemaLegacy {
		t.Error("schema not taken from next")
	}
	if len(a.Colors) != 1 {
		t.Error("Merge modified the receiver")
	}
}

func TestSpacingScales(t *testing.T) {
	current := Resolve(DefaultTheme(), Override{})
	legacy := Resolve(DefaultLegacyTheme(), Override{})
	tests := []struct {
		key             string
		current, legacy float64
	}{
		{"x1", 4, 4},
		{"x2", 8, 8},
		{"x4", 16, 16},
		{"x6", 24, 32},
		{"x9", 36, 56},
		{"x14", 56, 96},
		{"x16", 64, 112},
	}
	for _, tt := range tests {
		if got := current.Space(tt.key); got != tt.current {
			t.Errorf("current %s = %v, want %v", tt.key, got, tt.current)
		}
		if got := legacy.Space(tt.key); got != tt.legacy {
			t.Errorf("legacy %s = %v, want %v", tt.key, got, tt.legacy)
		}
	}
}

func TestSpacingGrowsWithKey(t *testing.T) {
	for _, s := range []SpacingScale{currentSpacing, legacySpacing} {
		prev := 0.0
		for n := 1; n <= spacingKeyCount; n++ {
			v := s["x"+strconv.Itoa(n)]
			if v <= prev {
				t.Errorf("x%d = %v, not greater than %v", n, v, prev)
			}
			prev = v
		}
	}
}
