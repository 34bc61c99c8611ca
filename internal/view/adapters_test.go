package view

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type ctxKey struct{}

func TestAdaptGomponentToTempl(t *testing.T) {
	var buf bytes.Buffer
	c := AdaptGomponentToTempl(Div(ID("x"), g.Text("hi")))
	require.NoError(t, c.Render(context.Background(), &buf))
	assert.Equal(t, `<div id="x">hi</div>`, buf.String())

	buf.Reset()
	require.NoError(t, AdaptGomponentToTempl(nil).Render(context.Background(), &buf))
	assert.Empty(t, buf.String())
}

func TestAdaptTemplToGomponentKeepsContext(t *testing.T) {
	component := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, ctx.Value(ctxKey{}).(string))
		return err
	})
	ctx := context.WithValue(context.Background(), ctxKey{}, "from ctx")

	var buf bytes.Buffer
	require.NoError(t, Section(AdaptTemplToGomponent(ctx, component)).Render(&buf))
	assert.Equal(t, "<section>from ctx</section>", buf.String())
}
