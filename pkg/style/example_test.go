package style_test

import (
	"fmt"

	"github.com/go-drift/paper/pkg/style"
)

func ExampleFlatten() {
	s := style.List(
		style.Of(style.Map{"color": "red"}),
		style.None(),
		style.Of(style.Map{"fontSize": 12}),
		style.Of(style.Map{"color": "blue"}),
	)
	flat := style.Flatten(s)
	fmt.Println(flat["color"], flat["fontSize"])
	// Output: blue 12
}
