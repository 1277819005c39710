package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/fernlight-labs/fernsite/internal/content"
	"github.com/fernlight-labs/fernsite/pkg/banner"
)

// CTABanner renders the sticky call-to-action strip. The same markup is used
// for the initial page render and for every server patch; only the class and
// aria-hidden flip between states.
func CTABanner(b content.BannerCopy, site content.Site, st banner.State) g.Node {
	class := "cta-banner is-hidden"
	if st.Visible {
		class = "cta-banner is-visible"
	}
	return Aside(ID(BannerID), Class(class),
		g.Attr("aria-hidden", strconv.FormatBool(!st.Visible)),
		Div(Class("banner-inner"),
			P(Class("banner-copy"), g.Text(b.Message)),
			A(Class("btn btn-primary banner-cta"), Href(site.SignupURL), g.Text(b.CTALabel)),
			Button(Type("button"), Class("banner-dismiss"),
				g.Attr("aria-label", "Dismiss banner"),
				g.Attr("data-on-click", post(DismissEndpoint)),
				g.Raw("&times;"),
			),
		),
	)
}

// ScrollFeed returns the body attributes that stream window scroll geometry
// to the server. Signals are declared with ifmissing so server patches never
// reset them mid-scroll.
func ScrollFeed() g.Node {
	return g.Group([]g.Node{
		g.Attr("data-signals__ifmissing", "{scrollY: 0, pageHeight: 0, viewportHeight: 0}"),
		g.Attr("data-on-scroll__window__throttle.150ms",
			"$scrollY = window.scrollY; "+
				"$pageHeight = document.documentElement.scrollHeight; "+
				"$viewportHeight = window.innerHeight; "+
				post(ScrollEndpoint)),
	})
}

func post(endpoint string) string {
	return "@post('" + endpoint + "')"
}
