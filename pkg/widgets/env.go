package widgets

import (
	"github.com/go-drift/paper/pkg/core"
	"github.com/go-drift/paper/pkg/layout"
	"github.com/go-drift/paper/pkg/theme"
)

// Env carries what a widget needs to build: the resolved theme of the
// provider above it and the device scaler.
type Env struct {
	Theme  *theme.Resolved
	Scaler layout.Scaler
}

// NewEnv returns an Env for th with no size scaling.
func NewEnv(th *theme.Resolved) Env {
	return Env{Theme: th}
}

// theme returns the env's theme. A missing theme resolves the default
// theme; it is built fresh, nothing global is read.
func (e Env) theme() *theme.Resolved {
	if e.Theme == nil {
		return theme.Resolve(theme.DefaultTheme(), theme.Override{})
	}
	return e.Theme
}

// Widget builds a node tree.
type Widget interface {
	Build(env Env) core.Node
}

// BuildAll builds each widget in order.
func BuildAll(env Env, ws ...Widget) []core.Node {
	nodes := make([]core.Node, 0, len(ws))
	for _, w := range ws {
		nodes = append(nodes, w.Build(env))
	}
	return nodes
}
