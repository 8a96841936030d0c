// Package testing provides helpers for testing widget node trees.
//
// Finders locate nodes in a built tree:
//
//	node := widgets.AvatarText{Label: "XD"}.Build(env)
//	label := papertest.Find(node, papertest.ByKind(core.KindText)).First()
//
// Snapshots capture a tree, with styles flattened, as JSON and compare it
// with a golden file:
//
//	papertest.Capture(node).MatchesFile(t, "testdata/avatar.snapshot.json")
//
// To create or refresh golden files:
//
//	PAPER_UPDATE_SNAPSHOTS=1 go test ./...
package testing
