// Package prompt asks for the form fields one line at a time, for terminals
// where the full-screen form is unwanted (pipes, screen readers, ssh sessions).
package prompt

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/Makepad-fr/coldpitch/internal/model"
)

// ErrAborted signals the user aborted input (e.g., Ctrl+C).
var ErrAborted = errors.New("aborted")

// AskFunc matches survey.Ask so tests can answer without a terminal.
type AskFunc func(qs []*survey.Question, response interface{}, opts ...survey.AskOpt) error

type Prompter struct {
	ask  AskFunc
	opts []survey.AskOpt
}

func New(opts ...survey.AskOpt) *Prompter {
	return &Prompter{ask: survey.Ask, opts: opts}
}

// WithAsk swaps the survey backend.
func (p *Prompter) WithAsk(fn AskFunc) *Prompter {
	p.ask = fn
	return p
}

type answers struct {
	BusinessName string `survey:"businessName"`
	Niche        string `survey:"niche"`
	City         string `survey:"city"`
	OwnerName    string `survey:"ownerName"`
	YourName     string `survey:"yourName"`
	Observations string `survey:"observations"`
}

// Form asks every field, offering initial values as defaults.
func (p *Prompter) Form(ctx context.Context, initial model.FormInput) (model.FormInput, error) {
	if err := ctx.Err(); err != nil {
		return model.FormInput{}, err
	}
	qs := []*survey.Question{
		{Name: "businessName", Prompt: &survey.Input{Message: "Business Name", Default: initial.BusinessName, Help: "e.g., Reform Fitness"}},
		{Name: "niche", Prompt: &survey.Input{Message: "Niche", Default: initial.Niche, Help: "e.g., Spa, Gym, Dental, Home Services"}},
		{Name: "city", Prompt: &survey.Input{Message: "City (optional)", Default: initial.City, Help: "e.g., Austin"}},
		{Name: "ownerName", Prompt: &survey.Input{Message: "Owner's Name (optional)", Default: initial.OwnerName, Help: "e.g., Mike"}},
		{Name: "yourName", Prompt: &survey.Input{Message: "Your Name", Default: initial.YourName, Help: "e.g., Alex"}},
		{Name: "observations", Prompt: &survey.Multiline{Message: "Key Observations", Default: initial.Observations, Help: "Keep it gentle and specific. One clear observation is enough."}},
	}

	var a answers
	if err := p.ask(qs, &a, p.opts...); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return model.FormInput{}, ErrAborted
		}
		return model.FormInput{}, err
	}
	return model.FormInput{
		BusinessName: a.BusinessName,
		Niche:        a.Niche,
		City:         a.City,
		OwnerName:    a.OwnerName,
		YourName:     a.YourName,
		Observations: a.Observations,
	}, nil
}
