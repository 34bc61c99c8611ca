// Package layouts holds the document shells pages are rendered into.
package layouts

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Page describes the document around a page body.
type Page struct {
	Title     string
	Lang      string
	SessionID string
}

const head = `<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<link rel="stylesheet" href="/static/css/gogoz.css">
<script src="https://cdn.tailwindcss.com"></script>
<script src="https://unpkg.com/htmx.org@2.0.4"></script>
<script src="https://unpkg.com/htmx-ext-ws@2.0.2/ws.js"></script>
<script src="/static/js/gogoz.js" defer></script>
</head>`

// Base wraps body in the html document. The live session id is exposed on
// the body so the browser script can unmount the session when the page goes away.
func Base(p Page, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := p.Lang
		if lang == "" {
			lang = "es"
		}
		if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html lang=\"%s\">\n", templ.EscapeString(lang)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, head, templ.EscapeString(CalculateTitle(p.Title))); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "\n<body class=\"font-sans bg-gray-100\" data-live-session=\"%s\">\n", templ.EscapeString(p.SessionID)); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n</body>\n</html>\n")
		return err
	})
}
