// Package view bridges the two component libraries used by the pages:
// sections are gomponents nodes and layouts are templ components.
package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// AdaptGomponentToTempl wraps a gomponents node so it can be rendered as
// the body of a templ layout.
func AdaptGomponentToTempl(node gomponents.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if node == nil {
			return nil
		}
		return node.Render(w)
	})
}

// AdaptTemplToGomponent wraps a templ component so it can be placed inside
// a gomponents tree. gomponents does not carry a context, so ctx is bound
// when the node is built.
func AdaptTemplToGomponent(ctx context.Context, component templ.Component) gomponents.Node {
	return gomponents.NodeFunc(func(w io.Writer) error {
		return component.Render(ctx, w)
	})
}
