// Package sections holds the gomponents views of every page section.
package sections

import (
	"fmt"

	"github.com/nfrund/gogoz/internal/nav"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// NavigationID is the element id replaced by every navigation action.
const NavigationID = "site-nav"

// LiveURL builds the URL of a live session action.
func LiveURL(sessionID, action string) string {
	return "/live/" + sessionID + "/" + action
}

// NavView is what the navigation fragment needs to render.
type NavView struct {
	SessionID string
	Brand     string
	Tagline   string
	Entries   []nav.Entry
	State     nav.State
}

// Navigation renders the sidebar (wide) or the collapsible overlay (compact).
func Navigation(v NavView) g.Node {
	st := v.State
	mode := "wide"
	if st.Compact {
		mode = "compact"
	}

	return Header(
		ID(NavigationID),
		g.Attr("data-mode", mode),
		g.Attr("data-overlay", fmt.Sprint(st.OverlayOpen)),
		Class(navClasses(st)),

		Div(
			Class("flex items-center justify-between w-full"),
			Span(Class("text-2xl font-bold tracking-wider font-cherry-bomb-one"), g.Text(v.Brand)),
			g.If(st.Compact, toggleButton(v.SessionID, st.OverlayOpen)),
		),

		g.If(st.PanelVisible(),
			Nav(
				Class("w-full mt-6"),
				Ul(
					Class("w-full flex flex-col space-y-2"),
					g.Group(entryItems(v)),
				),
			),
		),

		g.If(st.PanelVisible() && v.Tagline != "",
			Div(
				Class("mt-auto pt-4 border-t border-gray-700/50 text-sm text-gray-400 text-center font-bold tracking-wider"),
				g.Text(v.Tagline),
			),
		),

		// The listener only exists while the overlay is open; clicks inside
		// the navigation are filtered out here, in the presentation layer.
		g.If(st.Compact && st.OverlayOpen,
			Div(
				Class("hidden"),
				hx.Post(LiveURL(v.SessionID, "nav/outside")),
				hx.Trigger("click[!event.target.closest('#"+NavigationID+"')] from:document"),
				hx.Target("#"+NavigationID),
				hx.Swap("outerHTML"),
			),
		),
	)
}

func navClasses(st nav.State) string {
	base := "text-white flex flex-col p-6 bg-gradient-to-b from-purple-600 to-blue-500 "
	switch {
	case !st.Compact:
		return base + "sticky top-0 h-screen w-64"
	case st.OverlayOpen:
		return base + "fixed inset-0 z-40 w-full h-full overflow-y-auto"
	default:
		return base + "fixed top-0 left-0 right-0 z-30 w-full"
	}
}

func toggleButton(sessionID string, open bool) g.Node {
	icon, label := "menu", "Abrir menú"
	if open {
		icon, label = "close", "Cerrar menú"
	}
	return Button(
		Type("button"),
		Class("p-2 rounded-full bg-purple-500"),
		g.Attr("aria-label", label),
		g.Attr("aria-expanded", fmt.Sprint(open)),
		hx.Post(LiveURL(sessionID, "nav/toggle")),
		hx.Target("#"+NavigationID),
		hx.Swap("outerHTML"),
		Icon(icon, "w-6 h-6"),
	)
}

func entryItems(v NavView) []g.Node {
	items := make([]g.Node, 0, len(v.Entries))
	for i, e := range v.Entries {
		selected := v.State.Selected == i
		class := "flex items-center gap-3 px-4 py-3 rounded-lg border border-gray-700 hover:bg-gray-800 hover:border-[#6D8EFB]"
		if selected {
			class = "flex items-center gap-3 px-4 py-3 rounded-lg bg-gradient-to-r from-[#FF2A6D]/20 to-[#B36BE3]/20 border border-[#FF2A6D] shadow-lg"
		}
		items = append(items, Li(
			A(
				Href(e.Anchor),
				Class(class),
				g.If(selected, g.Attr("aria-current", "true")),
				hx.Post(LiveURL(v.SessionID, "nav/select")),
				hx.Vals(fmt.Sprintf(`{"index": %d, "anchor": %q}`, i, e.Anchor)),
				hx.Target("#"+NavigationID),
				hx.Swap("outerHTML"),
				Icon(e.Icon, "w-5 h-5"),
				Span(Class("text-base"), g.Text(e.Label)),
				g.If(selected, Span(Class("ml-auto text-[#FF2A6D]"), Icon("check", "w-5 h-5"))),
			),
		))
	}
	return items
}
