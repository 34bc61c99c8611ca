package sections

import (
	"fmt"

	"github.com/nfrund/gogoz/internal/carousel"
	"github.com/nfrund/gogoz/internal/content"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// CarouselID is the element id replaced by carousel actions and pushes.
const CarouselID = "testimonial-carousel"

// CarouselView is what the testimonial carousel needs to render.
type CarouselView struct {
	SessionID     string
	Items         []content.Testimonial
	Index         int
	Previous      int
	AutoAdvancing bool
	Assets        content.Assets
	// OOB marks the fragment for an out-of-band swap, used for websocket pushes.
	OOB bool
}

// Direction is the slide direction of the last move, derived from the
// previous and current index.
func (v CarouselView) Direction() string {
	switch carousel.Direction(v.Previous, v.Index, len(v.Items)) {
	case 1:
		return "forward"
	case -1:
		return "backward"
	default:
		return "none"
	}
}

// Testimonials renders the whole section, including the websocket
// connection that delivers automatic advances.
func Testimonials(title string, v CarouselView) g.Node {
	return Section(
		ID("testimonials"),
		Class("relative px-8 py-16 bg-gradient-to-b from-pink-200 to-purple-300 text-center"),
		hx.Ext("ws"),
		g.Attr("ws-connect", LiveURL(v.SessionID, "ws")),
		H2(Class("text-4xl mb-4 text-violet-500 font-cherry-bomb-one"), g.Text(title)),
		Carousel(v),
	)
}

// Carousel renders the current testimonial and its controls.
func Carousel(v CarouselView) g.Node {
	if len(v.Items) == 0 {
		return Div(ID(CarouselID))
	}
	current := v.Items[v.Index]

	return Div(
		ID(CarouselID),
		g.If(v.OOB, hx.SwapOOB("true")),
		g.Attr("data-index", fmt.Sprint(v.Index)),
		g.Attr("data-direction", v.Direction()),
		g.Attr("data-playing", fmt.Sprint(v.AutoAdvancing)),

		Div(
			Class("testimonial max-w-2xl mx-auto mb-8 p-6 bg-white rounded-lg shadow-lg text-left slide-"+v.Direction()),
			g.If(current.Image != "",
				Img(Src(v.Assets.URL(current.Image)), Alt(current.Author), Class("w-24 h-24 mx-auto mb-4 rounded-full")),
			),
			P(Class("italic text-lg text-gray-700 font-estonia"), g.Text(current.Quote)),
			P(
				Class("mt-4 text-right text-gray-500"),
				g.Text("- "+current.Author),
				g.If(current.Role != "", Span(Class("block text-xs"), g.Text(current.Role))),
			),
		),

		Div(
			Class("flex justify-center items-center space-x-4"),
			carouselButton(v.SessionID, "testimonials/prev", "prev", "Anterior", "bg-pink-400"),
			carouselButton(v.SessionID, "testimonials/toggle", playIcon(v.AutoAdvancing), playLabel(v.AutoAdvancing), "bg-violet-400"),
			carouselButton(v.SessionID, "testimonials/next", "next", "Siguiente", "bg-purple-400"),
		),

		Div(
			Class("flex justify-center space-x-2 mt-4"),
			g.Group(dots(v)),
		),
	)
}

func carouselButton(sessionID, action, icon, label, color string) g.Node {
	return Button(
		Type("button"),
		Class("p-2 text-white rounded-full "+color),
		g.Attr("aria-label", label),
		hx.Post(LiveURL(sessionID, action)),
		hx.Target("#"+CarouselID),
		hx.Swap("outerHTML"),
		Icon(icon, "w-5 h-5"),
	)
}

func dots(v CarouselView) []g.Node {
	nodes := make([]g.Node, 0, len(v.Items))
	for i := range v.Items {
		class := "w-3 h-3 rounded-full bg-white/60"
		if i == v.Index {
			class = "w-3 h-3 rounded-full bg-violet-500"
		}
		nodes = append(nodes, Button(
			Type("button"),
			Class(class),
			g.Attr("aria-label", fmt.Sprintf("Testimonio %d", i+1)),
			hx.Post(LiveURL(v.SessionID, "testimonials/goto")),
			hx.Vals(fmt.Sprintf(`{"index": %d}`, i)),
			hx.Target("#"+CarouselID),
			hx.Swap("outerHTML"),
		))
	}
	return nodes
}

func playIcon(playing bool) string {
	if playing {
		return "pause"
	}
	return "play"
}

func playLabel(playing bool) string {
	if playing {
		return "Pausar"
	}
	return "Reproducir"
}
