// Package widgets provides the themed components: avatars, card actions,
// list images, styled text and the Android checkbox.
//
// Widgets are struct literals with a Build method that returns a
// [core.Node] tree for the rendering engine:
//
//	env := widgets.NewEnv(theme.Resolve(theme.DefaultTheme(), theme.Override{}))
//	node := widgets.AvatarText{Label: "XD", Size: 24}.Build(env)
//
// Every widget reads its colors, spacing and fonts from Env.Theme. There is
// no package-level theme; build one Env per provider and pass it down.
//
// # Styling
//
// Caller styles are [style.Fragment] values layered after the widget's own
// defaults, so a caller key wins. The exceptions are keys a widget must
// control: the size of a ListImage and the justifyContent of CardActions.
// Widgets that derive a foreground
// color (AvatarText, AvatarIcon) read backgroundColor out of the flattened
// caller style and pick the foreground with [theme.ForegroundFor].
//
// # WithX Chaining
//
// WithX methods return a modified copy:
//
//	widgets.AvatarIcon{Icon: "folder"}.WithColor(graphics.ColorWhite)
package widgets
