package formrequest_test

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/formrequest"
	"github.com/dmitrymomot/formrequest/pkg/config"
	"github.com/dmitrymomot/formrequest/pkg/input"
	"github.com/dmitrymomot/formrequest/pkg/logger"
	"github.com/dmitrymomot/formrequest/pkg/values"
)

type signupRequest struct {
	formrequest.Base

	Email string
	Plan  string
}

func (r *signupRequest) Inputs() []*input.Input {
	return []*input.Input{
		input.Field("email").Required().Email().SetAttributeName("email address"),
		input.Field("plan").Nullable().In([]string{"free", "pro"}, "Pick a known plan."),
	}
}

func (r *signupRequest) Bind(data *values.Map) error {
	r.Email = data.String("email", "")
	r.Plan = data.String("plan", "free")
	return nil
}

func ExampleLifecycle_Handle() {
	lc := formrequest.New(config.DefaultRequest(), nil, formrequest.WithLogger(logger.Discard()))

	req := &signupRequest{}
	err := lc.Handle(context.Background(), req, &formrequest.Payload{
		Data: map[string]any{"email": "ann@example.com"},
	})
	fmt.Println(err, req.Email, req.Plan)

	err = lc.Handle(context.Background(), &signupRequest{}, &formrequest.Payload{
		Data: map[string]any{"email": "ann", "plan": "gold"},
	})
	fmt.Println(err)
	// Output:
	// <nil> ann@example.com free
	// validation failed: email: The email address field must be a valid email address., plan: Pick a known plan.
}
