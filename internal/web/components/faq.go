package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/fernlight-labs/fernsite/internal/content"
)

const faqPreviewCount = 3

// FAQPreviewSection shows the first few questions on the landing page with a
// link through to the full page.
func FAQPreviewSection(entries []content.FAQEntry) g.Node {
	if len(entries) > faqPreviewCount {
		entries = entries[:faqPreviewCount]
	}
	return Section(ID("faq"),
		Div(Class("container"),
			H2(Class("section-heading"), g.Text("Common questions")),
			Div(Class("faq-list"), faqItems(entries)),
			P(Class("faq-more"), A(Href("/faq"), g.Text("See all questions"))),
		),
	)
}

// FAQPageView is the /faq page body. Typing in the search box posts the query
// signal back to the server, which patches the list fragment in place. When
// not live (static export) the search box is left out entirely.
func FAQPageView(entries []content.FAQEntry, live bool) g.Node {
	return Section(Class("faq-page"),
		g.Attr("data-signals", "{query: ''}"),
		Div(Class("container"),
			H1(Class("section-heading"), g.Text("Questions and answers")),
			g.If(live,
				Input(Type("search"), Class("faq-search"),
					Placeholder("Filter questions"),
					g.Attr("aria-label", "Filter questions"),
					g.Attr("data-bind", "query"),
					g.Attr("data-on-input__debounce.250ms", post(FAQFilterEndpoint)),
				),
			),
			FAQList(entries),
		),
	)
}

// FAQList is the fragment the filter endpoint re-renders.
func FAQList(entries []content.FAQEntry) g.Node {
	if len(entries) == 0 {
		return Div(ID(FAQListID), Class("faq-list"),
			P(Class("faq-empty"), g.Text("Nothing matches that search.")),
		)
	}
	return Div(ID(FAQListID), Class("faq-list"), faqItems(entries))
}

func faqItems(entries []content.FAQEntry) g.Node {
	return g.Map(entries, func(e content.FAQEntry) g.Node {
		return Details(Class("faq-item"), ID("faq-"+e.ID),
			Summary(g.Text(e.Question)),
			P(g.Text(e.Answer)),
		)
	})
}
