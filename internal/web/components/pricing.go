package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/fernlight-labs/fernsite/internal/content"
)

// PricingSection renders the plan cards with a billing-cycle toggle. The
// cycle is a client-local signal; both prices are rendered and the inactive
// one stays hidden.
func PricingSection(plans []content.Plan, site content.Site) g.Node {
	return Section(ID("pricing"),
		g.Attr("data-signals", "{cycle: 'monthly'}"),
		Div(Class("container"),
			H2(Class("section-heading"), g.Text("Simple pricing")),
			Div(Class("pricing-toggle"),
				g.Attr("role", "group"),
				g.Attr("aria-label", "Billing cycle"),
				cycleButton("monthly", "Monthly", true),
				cycleButton("yearly", "Yearly", false),
			),
			Div(Class("plan-grid"),
				g.Map(plans, func(p content.Plan) g.Node { return planCard(p, site) }),
			),
		),
	)
}

func cycleButton(cycle, label string, initial bool) g.Node {
	class := "toggle-btn"
	if initial {
		class += " active"
	}
	return Button(Type("button"), Class(class),
		g.Attr("data-on-click", fmt.Sprintf("$cycle = '%s'", cycle)),
		g.Attr("data-class", fmt.Sprintf("{active: $cycle === '%s'}", cycle)),
		g.Text(label),
	)
}

func planCard(p content.Plan, site content.Site) g.Node {
	class := "plan-card"
	if p.Featured {
		class += " plan-featured"
	}

	cta := "Choose " + p.Name
	if p.Monthly.Free() && p.Yearly.Free() {
		cta = "Get started free"
	}

	return Div(Class(class),
		H3(Class("plan-name"), g.Text(p.Name)),
		P(Class("plan-blurb"), g.Text(p.Blurb)),
		planPrice(p),
		Ul(Class("plan-perks"),
			g.Map(p.Perks, func(perk string) g.Node { return Li(g.Text(perk)) }),
		),
		A(Class("btn btn-primary"), Href(site.SignupURL), g.Text(cta)),
	)
}

func planPrice(p content.Plan) g.Node {
	if p.Monthly.Free() && p.Yearly.Free() {
		return Div(Class("plan-price"), g.Text("Free"))
	}
	return Div(Class("plan-price"),
		Div(
			g.Attr("data-show", "$cycle === 'monthly'"),
			g.Text(p.Monthly.Format()),
			Span(g.Text(" / month")),
		),
		Div(
			Style("display: none"),
			g.Attr("data-show", "$cycle === 'yearly'"),
			g.Text(p.Yearly.Format()),
			Span(g.Text(" / year")),
		),
	)
}
