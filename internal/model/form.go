package model

// FormInput is one outreach draft request.
// Every field is optional; the empty string means "not provided".
type FormInput struct {
	BusinessName string `json:"businessName" yaml:"businessName"`
	Niche        string `json:"niche" yaml:"niche"`
	OwnerName    string `json:"ownerName" yaml:"ownerName"`
	City         string `json:"city" yaml:"city"`
	Observations string `json:"observations" yaml:"observations"`
	YourName     string `json:"yourName" yaml:"yourName"`
}

// Empty is the all-blank form produced by a reset.
func Empty() FormInput { return FormInput{} }

// Example is the fixed sample used by "fill example".
func Example() FormInput {
	return FormInput{
		BusinessName: "Reform Fitness",
		Niche:        "Gym / Fitness",
		OwnerName:    "Mike",
		City:         "Rancho Santa Margarita",
		Observations: "things have been quiet on social lately—which often means you're busy with clients",
		YourName:     "Alex",
	}
}

// Merge returns f with every non-empty field of o written over it.
func (f FormInput) Merge(o FormInput) FormInput {
	pick := func(base, over string) string {
		if over != "" {
			return over
		}
		return base
	}
	return FormInput{
		BusinessName: pick(f.BusinessName, o.BusinessName),
		Niche:        pick(f.Niche, o.Niche),
		OwnerName:    pick(f.OwnerName, o.OwnerName),
		City:         pick(f.City, o.City),
		Observations: pick(f.Observations, o.Observations),
		YourName:     pick(f.YourName, o.YourName),
	}
}

// Rendered is the derived subject/body pair.
type Rendered struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Payload is the text handed to the clipboard: subject, blank line, body.
func (r Rendered) Payload() string {
	return r.Subject + "\n\n" + r.Body
}
