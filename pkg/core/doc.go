// Package core defines the node descriptors widgets produce.
//
// A widget in this module does not draw. It returns a [Node]: an immutable
// description of one view primitive (View, Text, Image, Icon) or of an
// actionable child (a button), with props, a style fragment and children.
// The rendering engine consumes the tree.
//
// # Node Kinds
//
// Kind is a closed set. Composite widgets dispatch on it instead of probing
// a child for the props it might accept:
//
//	switch child.Kind {
//	case core.KindAction:
//	    // inject mode, spacing, compaction
//	default:
//	    // leave untouched
//	}
//
// # Immutability
//
// Nodes are values. Helpers such as [Node.WithProps] return a new node and
// never write to the receiver's Props map or Children slice, so a tree can
// be shared between render passes.
package core
