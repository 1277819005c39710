package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/fernlight-labs/fernsite/internal/content"
	"github.com/fernlight-labs/fernsite/pkg/banner"
)

// PageOptions selects per-render page behavior.
type PageOptions struct {
	// BannerState is the viewer's current banner state.
	BannerState banner.State

	// Live attaches the scroll feed and the FAQ search. The static exporter
	// leaves it off; without a server there is nothing to stream to.
	Live bool

	// Watch additionally attaches the dev-reload feed.
	Watch bool
}

// LandingPage composes the full landing page.
func LandingPage(b *content.Bundle, opts PageOptions) g.Node {
	body := []g.Node{
		SiteNav(b.Site),
		Main(
			Hero(b.Hero, b.Site),
			FeatureGrid(b.Features),
			PricingSection(b.Plans, b.Site),
			TestimonialCarousel(b.Testimonials),
			FAQPreviewSection(b.FAQ),
		),
		SiteFooter(b.Site),
		CTABanner(b.Banner, b.Site, opts.BannerState),
	}
	if opts.Live {
		body = append(body, ScrollFeed())
	}
	if opts.Watch {
		body = append(body, UpdatesFeed())
	}
	return Page(b.Site.Name+" | "+b.Site.Tagline, b.Site, body...)
}

// FAQPage composes the /faq page.
func FAQPage(b *content.Bundle, opts PageOptions) g.Node {
	body := []g.Node{
		SiteNav(b.Site),
		Main(FAQPageView(b.FAQ, opts.Live)),
		SiteFooter(b.Site),
		CTABanner(b.Banner, b.Site, opts.BannerState),
	}
	if opts.Live {
		body = append(body, ScrollFeed())
	}
	if opts.Watch {
		body = append(body, UpdatesFeed())
	}
	return Page("FAQ | "+b.Site.Name, b.Site, body...)
}
