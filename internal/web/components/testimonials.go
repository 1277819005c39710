package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/fernlight-labs/fernsite/internal/content"
)

// TestimonialCarousel cycles through quotes with a client-local slide index.
// Every slide is in the markup; data-show picks the active one.
func TestimonialCarousel(items []content.Testimonial) g.Node {
	if len(items) == 0 {
		return nil
	}
	n := len(items)

	return Section(ID("testimonials"),
		g.Attr("data-signals", "{slide: 0}"),
		Div(Class("container"),
			H2(Class("section-heading"), g.Text("From people winding down")),
			Div(Class("carousel"),
				g.Map(indices(n), func(i int) g.Node { return slide(items[i], i) }),
			),
			carouselNav(n),
		),
	)
}

func slide(item content.Testimonial, i int) g.Node {
	nodes := []g.Node{
		Class("slide"),
		g.Attr("data-show", fmt.Sprintf("$slide === %d", i)),
	}
	if i > 0 {
		nodes = append(nodes, Style("display: none"))
	}
	nodes = append(nodes,
		P(Class("slide-quote"), g.Text(item.Quote)),
		Div(Class("slide-meta"),
			Span(Class("author"), g.Text(item.Author)),
			g.If(item.Role != "", Span(Class("role"), g.Text(item.Role))),
		),
	)
	return Div(nodes...)
}

func carouselNav(n int) g.Node {
	return Div(Class("carousel-nav"),
		Button(Type("button"), Class("carousel-btn"),
			g.Attr("aria-label", "Previous quote"),
			g.Attr("data-on-click", fmt.Sprintf("$slide = ($slide + %d) %% %d", n-1, n)),
			g.Raw("&larr;"),
		),
		g.Map(indices(n), func(i int) g.Node {
			return Button(Type("button"), Class("carousel-dot"),
				g.Attr("aria-label", fmt.Sprintf("Quote %d", i+1)),
				g.Attr("data-on-click", fmt.Sprintf("$slide = %d", i)),
				g.Attr("data-class", fmt.Sprintf("{active: $slide === %d}", i)),
			)
		}),
		Button(Type("button"), Class("carousel-btn"),
			g.Attr("aria-label", "Next quote"),
			g.Attr("data-on-click", fmt.Sprintf("$slide = ($slide + 1) %% %d", n)),
			g.Raw("&rarr;"),
		),
	)
}

func indices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
