package theme_test

import (
	"fmt"

	"github.com/go-drift/paper/pkg/graphics"
	"github.com/go-drift/paper/pkg/theme"
)

func ExampleResolve() {
	r := theme.Resolve(theme.DefaultTheme(), theme.Override{
		Schema: theme.Ref(theme.SchemaLegacy),
		Colors: theme.Palette{theme.RolePrimary: graphics.Hex(0x00796B)},
	})
	fmt.Println(r.Schema, r.IsCurrentSchema)
	fmt.Println(r.Color(theme.RolePrimary))
	fmt.Println(r.Space("x6"), r.Font(theme.FontMedium).Family)
	// Output:
	// legacy false
	// #00796b
	// 32 sans-serif-medium
}

func ExampleSelectForegroundColor() {
	fmt.Println(theme.SelectForegroundColor(graphics.ColorWhite, nil))
	fmt.Println(theme.SelectForegroundColor(graphics.Hex(0x6200EE), nil))
	// Output:
	// rgba(0, 0, 0, 0.54)
	// #ffffff
}
