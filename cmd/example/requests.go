package main

import (
	"context"

	"github.com/dmitrymomot/formrequest"
	"github.com/dmitrymomot/formrequest/pkg/input"
	"github.com/dmitrymomot/formrequest/pkg/sanitizer"
	"github.com/dmitrymomot/formrequest/pkg/values"
)

var plans = []string{"free", "team", "enterprise"}

type signupRequest struct {
	formrequest.Base

	Name  string
	Email string
	Plan  string
}

func (r *signupRequest) Inputs() []*input.Input {
	return []*input.Input{
		input.Field("name").Required().IsString().Max(100),
		input.Field("email").Required().Email().Unique("users", "email").SetAttributeName("email address"),
		input.Field("plan").Nullable().In(plans, "Pick one of the available plans."),
		input.Field("password").Required().Min(8).Confirmed(),
	}
}

func (r *signupRequest) PrepareForValidation(_ context.Context, p *formrequest.Payload) error {
	sanitizer.Values(p.Data, sanitizer.EmptyToNil)
	sanitizer.Data(p.Data, sanitizer.Fields{
		"name":  sanitizer.Compose(sanitizer.StripControl, sanitizer.NormalizeWhitespace),
		"email": sanitizer.NormalizeEmail,
		"plan":  sanitizer.Compose(sanitizer.Trim, sanitizer.ToLower),
	})
	return nil
}

func (r *signupRequest) Bind(data *values.Map) error {
	r.Name = data.String("name", "")
	r.Email = data.String("email", "")
	r.Plan = data.String("plan", "free")
	return nil
}

// LogParameters always records signups; passwords are masked by config.
func (r *signupRequest) LogParameters() bool { return true }

type listMembersRequest struct {
	formrequest.Base
	formrequest.Pagination

	Plan string
}

func (r *listMembersRequest) Inputs() []*input.Input {
	return []*input.Input{
		input.Field("plan").Nullable().In(plans),
	}
}

func (r *listMembersRequest) Bind(data *values.Map) error {
	r.Plan = data.String("plan", "")
	return nil
}

func (r *listMembersRequest) DefaultPageItemLimit() int { return 20 }
