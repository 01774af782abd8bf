// Package draft renders the outreach subject line and message body
// from a FormInput. Every function here is pure and safe for concurrent use.
package draft

import (
	"strings"

	"github.com/Makepad-fr/coldpitch/internal/model"
)

// Fallbacks for empty fields.
const (
	DefaultBusiness = "your business"
	DefaultSender   = "?"
)

const (
	greetingAnonymous   = "Hi there,"
	observationFallback = "I took a look at a few public touchpoints (site, social, and booking)."
)

var valueProposition = strings.Join([]string{
	"I'm helping local operators focus on reactivation and client retention by re-engaging past inquiries who never purchased.",
	"It's a low-lift optimization using the list you already have—no ad spend.",
	"We're seeing strong reply rates and quick wins within days.",
}, " ")

func orDefault(s, def string) string {
	if s = Sanitize(s); s == "" {
		return def
	}
	return s
}

// Subject builds the one-line subject/opening.
func Subject(ownerName, businessName string) string {
	name := Sanitize(ownerName)
	biz := orDefault(businessName, DefaultBusiness)
	if name != "" {
		return "Hi " + TitleCase(name) + ", quick question about " + biz
	}
	return "Quick question about " + biz
}

// Message builds the multi-paragraph body.
func Message(in model.FormInput) string {
	owner := Sanitize(in.OwnerName)
	business := orDefault(in.BusinessName, DefaultBusiness)
	niche := Sanitize(in.Niche)
	city := Sanitize(in.City)
	obs := Sanitize(in.Observations)
	sender := orDefault(in.YourName, DefaultSender)

	greeting := greetingAnonymous
	if owner != "" {
		greeting = "Hi " + TitleCase(owner) + ","
	}
	var place, nichePart string
	if city != "" {
		place = " in " + TitleCase(city)
	}
	if niche != "" {
		nichePart = " in the " + strings.ToLower(niche) + " space"
	}
	opening := greeting + " I've been following the work you're doing at " + business + place + nichePart + "—impressive."

	observation := observationFallback
	if obs != "" {
		observation = "I noticed " + obs + "."
	}

	closing := "Open to a brief overview of how the reactivation flow works for " + business + "? Best, " + sender

	return strings.Join([]string{opening, "", observation, "", valueProposition, "", closing}, "\n")
}

// Render produces both outputs for one form.
func Render(in model.FormInput) model.Rendered {
	return model.Rendered{
		Subject: Subject(in.OwnerName, in.BusinessName),
		Body:    Message(in),
	}
}
