package sections

import (
	"github.com/nfrund/gogoz/internal/content"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Hero(h content.Hero, videoURL string) g.Node {
	return Section(
		Class("relative text-center text-white h-screen bg-gradient-to-b from-purple-600 to-blue-500 overflow-hidden"),
		g.If(videoURL != "",
			Video(
				Class("absolute inset-0 w-full h-full object-cover opacity-50"),
				g.Attr("autoplay"), g.Attr("loop"), g.Attr("muted"), g.Attr("playsinline"),
				Src(videoURL),
			),
		),
		Div(
			Class("relative z-10 flex flex-col items-center justify-center h-full"),
			H1(Class("text-5xl mb-4 font-bold font-cherry-bomb-one"), g.Text(h.Title)),
			g.If(h.Subtitle != "", P(Class("text-[25px] font-estonia"), g.Text(h.Subtitle))),
		),
	)
}

// About renders the pre-sanitised markdown paragraphs.
func About(a content.About) g.Node {
	paragraphs := make([]g.Node, 0, len(a.HTML))
	for _, html := range a.HTML {
		paragraphs = append(paragraphs, Div(Class("max-w-3xl mb-4 text-lg"), g.Raw(html)))
	}
	return Section(
		ID("about"),
		Class("w-full px-8 py-16 text-justify bg-gradient-to-t from-pink-200 to-purple-300 flex flex-col items-center justify-center"),
		H2(Class("text-4xl mb-4 text-violet-500 font-cherry-bomb-one"), g.Text(a.Title)),
		g.Group(paragraphs),
	)
}

func Services(s content.Services) g.Node {
	cards := make([]g.Node, 0, len(s.Items))
	for _, item := range s.Items {
		cards = append(cards, Div(
			Class("p-6 w-64 bg-gradient-to-b from-purple-300 to-blue-300 rounded-lg shadow-lg"),
			Div(Class("flex justify-center mb-2 text-violet-600"), Icon(item.Icon, "w-8 h-8")),
			H3(Class("text-2xl"), g.Text(item.Title)),
			P(g.Text(item.Description)),
		))
	}
	return Section(
		ID("services"),
		Class("py-16 bg-white text-center"),
		H2(Class("text-4xl mb-8 text-violet-500 font-cherry-bomb-one"), g.Text(s.Title)),
		Div(Class("flex flex-wrap justify-center gap-4"), g.Group(cards)),
	)
}

// Contact renders the static contact form. It has no submission handler.
func Contact(c content.Contact) g.Node {
	return Section(
		ID("contact"),
		Class("px-6 py-16 bg-white text-center mb-20 md:mb-8"),
		H2(Class("text-4xl mb-4 text-violet-500 font-cherry-bomb-one"), g.Text(c.Title)),
		Div(
			Class("max-w-3xl mx-auto bg-gradient-to-b from-purple-300 to-blue-300 p-8 rounded-lg shadow-lg text-left"),
			g.El("form",
				g.Attr("onsubmit", "return false"),
				field("contact-name", c.NameLabel, Input(ID("contact-name"), Type("text"), Name("name"), Class(inputClass))),
				field("contact-email", c.EmailLabel, Input(ID("contact-email"), Type("email"), Name("email"), Placeholder(c.EmailPlaceholder), Class(inputClass))),
				field("contact-message", c.MessageLabel, Textarea(ID("contact-message"), Name("message"), g.Attr("rows", "4"), Placeholder(c.MessagePlaceholder), Class(inputClass))),
				Button(Type("submit"), Class("px-6 py-2 bg-violet-500 text-white rounded-full"), g.Text(c.SubmitLabel)),
			),
			Div(
				Class("mt-8"),
				H3(Class("text-2xl mb-2 text-green-600 font-cherry-bomb-one"), g.Text(c.InfoTitle)),
				g.If(c.Address != "", P(g.Text("Dirección: "+c.Address))),
				g.If(c.Phone != "", P(g.Text("Teléfono: "+c.Phone))),
				g.If(c.Email != "", P(g.Text("Email: "+c.Email))),
			),
		),
	)
}

const inputClass = "w-full p-2 mt-1 rounded border border-gray-300"

func field(id, label string, input g.Node) g.Node {
	return Div(
		Class("mb-4"),
		g.El("label", g.Attr("for", id), Class("block text-gray-700 font-estonia"), g.Text(label)),
		input,
	)
}

// SiteFooter renders the fixed footer with the social links.
func SiteFooter(f content.Footer) g.Node {
	links := make([]g.Node, 0, len(f.Social))
	for _, l := range f.Social {
		links = append(links, A(
			Href(l.URL), g.Attr("target", "_blank"), Rel("noopener noreferrer"),
			Class("text-white hover:text-yellow-300"),
			g.Text(l.Label),
		))
	}
	return g.El("footer",
		Class("z-30 bg-gradient-to-r from-fuchsia-500 to-purple-600 px-6 py-2 text-center text-white shadow-lg fixed bottom-0 w-full"),
		Div(
			Class("flex md:flex-row flex-col items-center justify-between space-y-4 md:space-y-0"),
			P(Class("text-sm font-estonia"), g.Text(f.Copyright)),
			Div(Class("flex space-x-4"), g.Group(links)),
		),
	)
}
