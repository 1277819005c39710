// Package content holds the marketing copy for the site: hero, feature grid,
// pricing plans, testimonials, and FAQ entries. Copy is loaded from YAML
// files, either the embedded defaults shipped with the binary or an override
// directory, and served read-only to the rendering layer.
package content

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
)

// Site is the global metadata rendered into every page.
type Site struct {
	Name      string `yaml:"name"`
	Tagline   string `yaml:"tagline"`
	BaseURL   string `yaml:"base_url"`
	SignupURL string `yaml:"signup_url"`
}

// Hero is the above-the-fold section of the landing page.
type Hero struct {
	Eyebrow     string   `yaml:"eyebrow"`
	Headline    string   `yaml:"headline"`
	Subheadline string   `yaml:"subheadline"`
	CTALabel    string   `yaml:"cta_label"`
	Highlights  []string `yaml:"highlights"`
}

// Feature is one cell of the feature grid.
type Feature struct {
	Title string `yaml:"title"`
	Icon  string `yaml:"icon"`
	Body  string `yaml:"body"`
}

// BannerCopy is the copy in the sticky call-to-action bar.
type BannerCopy struct {
	Message  string `yaml:"message"`
	CTALabel string `yaml:"cta_label"`
}

// Price is an amount in minor units of an ISO 4217 currency.
type Price struct {
	Cents    int    `yaml:"cents"`
	Currency string `yaml:"currency"`
}

// Plan is one pricing tier.
type Plan struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Blurb    string   `yaml:"blurb"`
	Monthly  Price    `yaml:"monthly"`
	Yearly   Price    `yaml:"yearly"`
	Featured bool     `yaml:"featured"`
	Perks    []string `yaml:"perks"`
}

// Testimonial is one carousel slide.
type Testimonial struct {
	Quote  string `yaml:"quote"`
	Author string `yaml:"author"`
	Role   string `yaml:"role"`
}

// FAQEntry is one question in the FAQ accordion.
type FAQEntry struct {
	ID       string   `yaml:"id"`
	Question string   `yaml:"question"`
	Answer   string   `yaml:"answer"`
	Tags     []string `yaml:"tags"`
}

// Bundle is a complete content snapshot. Bundles are immutable once loaded;
// reloading builds a new one.
type Bundle struct {
	Site         Site
	Hero         Hero
	Banner       BannerCopy
	Features     []Feature
	Plans        []Plan
	Testimonials []Testimonial
	FAQ          []FAQEntry
}

// Problems returns every validation issue in the bundle, empty when valid.
func (b *Bundle) Problems() []string {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if b.Site.Name == "" {
		add("site: name is required")
	}
	if b.Site.SignupURL == "" {
		add("site: signup_url is required")
	}
	if b.Hero.Headline == "" {
		add("hero: headline is required")
	}
	if b.Hero.CTALabel == "" {
		add("hero: cta_label is required")
	}
	if b.Banner.Message == "" {
		add("banner: message is required")
	}
	if b.Banner.CTALabel == "" {
		add("banner: cta_label is required")
	}

	if len(b.Plans) == 0 {
		add("plans: at least one plan is required")
	}
	planIDs := make(map[string]bool, len(b.Plans))
	for i, p := range b.Plans {
		switch {
		case p.ID == "":
			add("plans[%d]: id is required", i)
		case planIDs[p.ID]:
			add("plans[%d]: duplicate id %q", i, p.ID)
		default:
			planIDs[p.ID] = true
		}
		if p.Name == "" {
			add("plans[%d]: name is required", i)
		}
		for _, price := range []struct {
			field string
			p     Price
		}{{"monthly", p.Monthly}, {"yearly", p.Yearly}} {
			if price.p.Cents < 0 {
				add("plans[%d]: %s price cannot be negative", i, price.field)
			}
			if _, err := currency.ParseISO(price.p.Currency); err != nil {
				add("plans[%d]: %s currency %q is not a valid ISO 4217 code", i, price.field, price.p.Currency)
			}
		}
	}

	faqIDs := make(map[string]bool, len(b.FAQ))
	for i, e := range b.FAQ {
		switch {
		case e.ID == "":
			add("faq[%d]: id is required", i)
		case faqIDs[e.ID]:
			add("faq[%d]: duplicate id %q", i, e.ID)
		default:
			faqIDs[e.ID] = true
		}
		if e.Question == "" {
			add("faq[%d]: question is required", i)
		}
		if e.Answer == "" {
			add("faq[%d]: answer is required", i)
		}
	}

	for i, tm := range b.Testimonials {
		if tm.Quote == "" {
			add("testimonials[%d]: quote is required", i)
		}
		if tm.Author == "" {
			add("testimonials[%d]: author is required", i)
		}
	}

	return problems
}

// Validate returns an error describing every problem in the bundle, or nil.
func (b *Bundle) Validate() error {
	if problems := b.Problems(); len(problems) > 0 {
		return fmt.Errorf("invalid content: %s", strings.Join(problems, "; "))
	}
	return nil
}

// PlanByID returns the plan with the given id.
func (b *Bundle) PlanByID(id string) (Plan, bool) {
	for _, p := range b.Plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}
