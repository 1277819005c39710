package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/fernlight-labs/fernsite/internal/content"
)

// Hero renders the above-the-fold section.
func Hero(h content.Hero, site content.Site) g.Node {
	return Section(ID("top"), Class("hero"),
		Div(Class("container"),
			g.If(h.Eyebrow != "", Span(Class("eyebrow"), g.Text(h.Eyebrow))),
			H1(Class("hero-headline"), g.Text(h.Headline)),
			P(Class("hero-sub"), g.Text(h.Subheadline)),
			A(Class("btn btn-primary"), Href(site.SignupURL), g.Text(h.CTALabel)),
			g.If(len(h.Highlights) > 0,
				Ul(Class("hero-highlights"),
					g.Map(h.Highlights, func(s string) g.Node { return Li(g.Text(s)) }),
				),
			),
		),
	)
}

// FeatureGrid renders the feature cards.
func FeatureGrid(features []content.Feature) g.Node {
	return Section(ID("features"),
		Div(Class("container"),
			H2(Class("section-heading"), g.Text("Built for winding down")),
			Div(Class("feature-grid"),
				g.Map(features, func(f content.Feature) g.Node {
					return Div(Class("feature-card"),
						g.If(f.Icon != "", Span(Class("feature-icon"), g.Attr("aria-hidden", "true"), g.Text(iconGlyph(f.Icon)))),
						H3(g.Text(f.Title)),
						P(g.Text(f.Body)),
					)
				}),
			),
		),
	)
}

// iconGlyph maps content icon names to glyphs so content files stay free of
// markup.
func iconGlyph(name string) string {
	switch name {
	case "sunset":
		return "☼"
	case "shield":
		return "▣"
	case "moon":
		return "☾"
	case "users":
		return "❧"
	default:
		return "✺"
	}
}
