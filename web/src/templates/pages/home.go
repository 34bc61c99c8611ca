// Package pages composes sections into full page bodies.
package pages

import (
	"github.com/nfrund/gogoz/internal/content"
	"github.com/nfrund/gogoz/internal/nav"
	"github.com/nfrund/gogoz/web/src/templates/sections"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// HomeView is the state of one mounted home page.
type HomeView struct {
	SessionID     string
	Site          *content.Site
	Assets        content.Assets
	Nav           nav.State
	Index         int
	AutoAdvancing bool
}

// NavView builds the navigation fragment's view.
func (v HomeView) NavView() sections.NavView {
	return sections.NavView{
		SessionID: v.SessionID,
		Brand:     v.Site.Brand,
		Tagline:   v.Site.Tagline,
		Entries:   v.Site.NavEntries(),
		State:     v.Nav,
	}
}

// CarouselView builds the testimonial carousel's view.
func (v HomeView) CarouselView() sections.CarouselView {
	return sections.CarouselView{
		SessionID:     v.SessionID,
		Items:         v.Site.Testimonials.Items,
		Index:         v.Index,
		Previous:      v.Index,
		AutoAdvancing: v.AutoAdvancing,
		Assets:        v.Assets,
	}
}

// Home renders the single page body.
func Home(v HomeView) g.Node {
	return Div(
		Class("flex flex-col md:flex-row min-h-screen"),
		ViewportProbe(v.SessionID),
		sections.Navigation(v.NavView()),
		Main(
			Class("flex-1"),
			sections.Hero(v.Site.Hero, v.Assets.URL(v.Site.Hero.Video)),
			sections.About(v.Site.About),
			sections.Services(v.Site.Services),
			sections.Testimonials(v.Site.Testimonials.Title, v.CarouselView()),
			sections.Contact(v.Site.Contact),
		),
		sections.SiteFooter(v.Site.Footer),
	)
}

// ViewportProbe reports the window width on load and on every (debounced)
// resize. It lives outside the navigation so swaps never remove it.
func ViewportProbe(sessionID string) g.Node {
	return Div(
		ID("viewport-probe"),
		Class("hidden"),
		hx.Post(sections.LiveURL(sessionID, "nav/resize")),
		hx.Trigger("load, resize from:window delay:150ms"),
		hx.Vals("js:{width: window.innerWidth}"),
		hx.Target("#"+sections.NavigationID),
		hx.Swap("outerHTML"),
	)
}
