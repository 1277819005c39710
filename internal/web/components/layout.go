// Package components is the site's view layer. Every page and fragment is a
// gomponents tree rendered on the server; interactive behavior is declared
// through datastar attributes, with purely cosmetic toggles staying in the
// browser and everything stateful round-tripping to the server.
package components

import (
	"strings"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/fernlight-labs/fernsite/internal/content"
	"github.com/fernlight-labs/fernsite/internal/web/resources"
)

// datastarCDN is the pinned browser runtime loaded by every page.
const datastarCDN = "https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"

// Stable DOM ids for fragments the server patches over SSE.
const (
	// BannerID identifies the sticky call-to-action bar.
	BannerID = "cta-banner"

	// FAQListID identifies the filterable FAQ results fragment.
	FAQListID = "faq-list"
)

// Endpoints shared between page bindings and route registration.
const (
	ScrollEndpoint    = "/banner/scroll"
	DismissEndpoint   = "/banner/dismiss"
	FAQFilterEndpoint = "/faq/filter"
	UpdatesEndpoint   = "/updates"
)

// UpdatesFeed opens the live-update stream. When content changes server-side
// the page reloads itself; exported pages leave it off.
func UpdatesFeed() g.Node {
	return g.Attr("data-init", "@get('"+UpdatesEndpoint+"')")
}

// RenderString renders a node to a string, for SSE patches and the static
// exporter.
func RenderString(n g.Node) (string, error) {
	var sb strings.Builder
	if err := n.Render(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Page wraps body content in the document shell: meta, stylesheet, datastar
// runtime. Attribute nodes passed in body attach to the <body> element, which
// is how pages opt into window-level bindings like the scroll feed.
func Page(title string, site content.Site, body ...g.Node) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(title)),
				Meta(Name("description"), Content(site.Tagline)),
				Link(Rel("icon"), Type("image/svg+xml"), Href(resources.StaticPath("favicon.svg"))),
				Link(Rel("stylesheet"), Href(resources.StaticPath("site.css"))),
				Script(Type("module"), Src(datastarCDN)),
			),
			Body(g.Group(body)),
		),
	})
}

// SiteNav renders the header with section links and a mobile menu toggle.
// The open/closed state is a client-local signal and never leaves the
// browser.
func SiteNav(site content.Site) g.Node {
	links := []g.Node{
		A(Href("/#features"), g.Text("Features")),
		A(Href("/#pricing"), g.Text("Pricing")),
		A(Href("/faq"), g.Text("FAQ")),
	}

	return Header(Class("site-header"),
		g.Attr("data-signals", "{menuOpen: false}"),
		Div(Class("nav-inner"),
			A(Class("brand"), Href("/"), g.Text(site.Name)),
			Nav(Class("nav-links"),
				g.Group(links),
				A(Class("btn btn-primary nav-cta"), Href(site.SignupURL), g.Text("Get started")),
			),
			Button(Class("menu-toggle"), Type("button"),
				g.Attr("aria-label", "Toggle menu"),
				g.Attr("aria-expanded", "false"),
				g.Attr("data-on-click", "$menuOpen = !$menuOpen"),
				g.Attr("data-attr", "{'aria-expanded': $menuOpen}"),
				g.Text("☰"),
			),
		),
		Div(Class("mobile-menu"),
			Style("display: none"),
			g.Attr("data-show", "$menuOpen"),
			g.Attr("data-on-click", "$menuOpen = false"),
			g.Group(links),
			A(Class("btn btn-primary"), Href(site.SignupURL), g.Text("Get started")),
		),
	)
}

// SiteFooter renders the footer. Its height is what the banner's exclusion
// zone keeps clear.
func SiteFooter(site content.Site) g.Node {
	return Footer(Class("site-footer"),
		Div(Class("container footer-inner"),
			P(g.Textf("© %d %s Labs", time.Now().Year(), site.Name)),
			Nav(
				A(Href("/#features"), g.Text("Features")),
				g.Text(" · "),
				A(Href("/#pricing"), g.Text("Pricing")),
				g.Text(" · "),
				A(Href("/faq"), g.Text("FAQ")),
				g.Text(" · "),
				A(Href("mailto:hello@"+hostOf(site)), g.Text("Contact")),
			),
		),
	)
}

// NotFoundPage is the 404 page, also written to 404.html on export.
func NotFoundPage(site content.Site) g.Node {
	return Page("Page not found | "+site.Name, site,
		SiteNav(site),
		Main(
			Div(Class("container not-found"),
				H1(g.Text("There is nothing here.")),
				P(g.Text("The page you followed does not exist anymore, if it ever did.")),
				A(Class("btn btn-primary"), Href("/"), g.Text("Back to the start")),
			),
		),
		SiteFooter(site),
	)
}

func hostOf(site content.Site) string {
	host := strings.TrimPrefix(site.BaseURL, "https://")
	host = strings.TrimPrefix(host, "http://")
	host = strings.TrimSuffix(host, "/")
	if host == "" {
		host = "example.com"
	}
	return host
}
